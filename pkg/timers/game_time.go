package timers

// GameTime 游戏时钟
// 每帧由驱动方推进，记录当前帧与上一帧的时间戳（毫秒）
type GameTime struct {
	Time          float64 // 当前帧时间戳
	LastTimestamp float64 // 上一帧时间戳
}

// NewGameTime 创建从 0 开始的游戏时钟
func NewGameTime() *GameTime {
	return &GameTime{}
}

// Advance 推进时钟 deltaMs 毫秒，返回新的当前时间
// 负的增量会被忽略，保证时间单调递增
func (g *GameTime) Advance(deltaMs float64) float64 {
	if deltaMs < 0 {
		deltaMs = 0
	}
	g.LastTimestamp = g.Time
	g.Time += deltaMs
	return g.Time
}

// Delta 返回最近一帧的时间增量（毫秒）
func (g *GameTime) Delta() float64 {
	return g.Time - g.LastTimestamp
}
