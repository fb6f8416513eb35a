package behavior

import (
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/timers"
	"github.com/gonewx/pvzsim/pkg/types"
)

// Interval 重复定时器
// 到期时（绑定了回调才）排队一次回调，并重置计时
type Interval struct {
	BaseBehavior
	interval float64
	callback types.Callback
	timer    *timers.Timer
}

func NewInterval(interval float64, callback types.Callback) *Interval {
	return &Interval{
		interval: interval,
		callback: callback,
		timer:    timers.NewTimer(interval),
	}
}

func (i *Interval) Type() types.BehaviorType {
	return types.BehaviorInterval
}

func (i *Interval) Start(now float64) {
	i.timer.Start(now)
	i.BaseBehavior.Start(now)
}

func (i *Interval) Stop(now float64) {
	i.timer.Reset(now)
	i.BaseBehavior.Stop(now)
}

func (i *Interval) Execute(s *sprite.Sprite, f sprite.Frame) (*sprite.Mutation, error) {
	if i.timer.Expired(f.Now) {
		i.Raise(i.callback)
		i.timer.Reset(f.Now)
	}
	return nil, nil
}
