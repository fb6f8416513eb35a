package behavior

import (
	"github.com/gonewx/pvzsim/pkg/config"
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

// Animate 以固定间隔循环实体的视觉帧
//
// 完整走完一遍帧集合记为一个循环。MaxCycles 为 0 时无限循环；
// 否则达到循环次数后，再等待 callbackDelay 毫秒，停止、隐藏实体并排队回调。
type Animate struct {
	BaseBehavior
	rate           float64 // 每帧间隔（毫秒）
	callback       types.Callback
	callbackDelay  float64
	maxCycles      int
	finishedCycles int
	lastTick       float64
}

// NewAnimate 创建动画行为
// callbackDelay 与 maxCycles 为 nil 时分别使用默认值 1000ms 和 1 个循环
func NewAnimate(rate float64, callback types.Callback, callbackDelay *float64, maxCycles *int) *Animate {
	a := &Animate{
		rate:          rate,
		callback:      callback,
		callbackDelay: config.DefaultAnimateCallbackDelay,
		maxCycles:     config.DefaultAnimateMaxCycles,
	}
	if callbackDelay != nil {
		a.callbackDelay = *callbackDelay
	}
	if maxCycles != nil {
		a.maxCycles = *maxCycles
	}
	return a
}

func (a *Animate) Type() types.BehaviorType {
	return types.BehaviorAnimate
}

func (a *Animate) Start(now float64) {
	a.lastTick = now
	a.BaseBehavior.Start(now)
}

// SetMaxCycles 重新设定循环次数并清零已完成的循环
func (a *Animate) SetMaxCycles(n int) {
	a.finishedCycles = 0
	a.maxCycles = n
}

// MaxCycles 返回循环次数上限
func (a *Animate) MaxCycles() int {
	return a.maxCycles
}

// FinishedCycles 返回已完成的循环数
func (a *Animate) FinishedCycles() int {
	return a.finishedCycles
}

func (a *Animate) Execute(s *sprite.Sprite, f sprite.Frame) (*sprite.Mutation, error) {
	infinite := a.maxCycles == 0
	finished := !infinite && a.finishedCycles >= a.maxCycles

	if finished {
		if f.Now-a.lastTick > a.callbackDelay {
			a.Stop(f.Now)
			a.Raise(a.callback)
			return sprite.NewMutation().Hide(true), nil
		}
		return nil, nil
	}

	if f.Now-a.lastTick < a.rate {
		return nil, nil
	}

	if s.DrawingState.InLastCell() {
		a.finishedCycles++
	}
	if infinite || a.finishedCycles < a.maxCycles {
		a.lastTick = f.Now
		return sprite.NewMutation().WithCycle(), nil
	}
	return nil, nil
}
