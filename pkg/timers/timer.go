// Package timers 提供基于调用方传入时间戳的计时原语
//
// 时间单位说明：
// 所有时间均为毫秒（float64），由调用方每帧传入单调递增的 now。
// 计时器本身不读取系统时钟，也不会阻塞或休眠。
package timers

// Timer 倒计时/已用时间计时器
// 用于所有带时间门控的行为（攻击冷却、延迟变更、定时回调等）
type Timer struct {
	duration  float64 // 计时目标时长（毫秒）
	elapsed   float64 // 停止时冻结的已用时间（毫秒）
	startTime float64 // 开始时间戳
	running   bool
}

// NewTimer 创建指定时长的计时器（未启动）
// 未启动时 Elapsed 返回 duration
func NewTimer(duration float64) *Timer {
	return &Timer{
		duration: duration,
		elapsed:  duration,
	}
}

// Start 记录开始时间并进入运行状态
func (t *Timer) Start(now float64) {
	t.running = true
	t.startTime = now
}

// Stop 冻结已用时间并停止计时
func (t *Timer) Stop(now float64) {
	if t.running {
		t.elapsed = now - t.startTime
	}
	t.running = false
}

// Reset 将开始时间重置为 now，不改变运行状态
func (t *Timer) Reset(now float64) {
	t.startTime = now
}

// Elapsed 运行中返回 now - start，否则返回最后一次冻结的值
func (t *Timer) Elapsed(now float64) float64 {
	if t.running {
		return now - t.startTime
	}
	return t.elapsed
}

// Expired 仅在运行中且已用时间 >= 目标时长时返回 true
func (t *Timer) Expired(now float64) bool {
	if !t.running {
		return false
	}
	return t.Elapsed(now) >= t.duration
}

// IsRunning 返回计时器是否在运行
func (t *Timer) IsRunning() bool {
	return t.running
}

// Duration 返回目标时长
func (t *Timer) Duration() float64 {
	return t.duration
}

// SetDuration 修改目标时长（对运行中的计时器立即生效）
func (t *Timer) SetDuration(duration float64) {
	t.duration = duration
	if !t.running {
		t.elapsed = duration
	}
}
