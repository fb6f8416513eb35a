package behavior

import (
	"log"
	"math"

	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

// Scroll 按速度推进图像裁剪偏移，直到走完目标距离
// 完成时自行停止并排队回调；Reverse 用于反向播放（例如背景滚入后再滚出）
type Scroll struct {
	BaseBehavior
	callback  types.Callback
	distance  float64 // 目标距离（绝对值）
	rate      float64 // 像素/秒
	direction float64 // +1 / -1
	scrolled  float64 // 已滚动距离（带方向）
}

func NewScroll(distance, rate float64, callback types.Callback) *Scroll {
	return &Scroll{
		callback:  callback,
		distance:  math.Abs(distance),
		rate:      rate,
		direction: 1,
	}
}

func (sc *Scroll) Type() types.BehaviorType {
	return types.BehaviorScroll
}

// Direction 当前方向（+1 或 -1）
func (sc *Scroll) Direction() float64 {
	return sc.direction
}

// Finished 是否已走完目标距离
func (sc *Scroll) Finished() bool {
	return math.Abs(sc.scrolled) >= sc.distance
}

// Reverse 反转方向、清零已滚动距离、换绑完成回调，未运行时重新启动
func (sc *Scroll) Reverse(now float64, callback types.Callback) {
	sc.direction = -sc.direction
	sc.scrolled = 0
	sc.callback = callback
	if !sc.IsRunning() {
		sc.Start(now)
	}
}

func (sc *Scroll) Execute(s *sprite.Sprite, f sprite.Frame) (*sprite.Mutation, error) {
	if sc.Finished() {
		sc.complete(f.Now)
		return nil, nil
	}

	step := sc.rate * f.Rate()
	if remaining := sc.distance - math.Abs(sc.scrolled); step > remaining {
		step = remaining
	}
	step *= sc.direction
	sc.scrolled += step

	offset := s.DrawingState.Offset
	m := sprite.NewMutation().WithOffset(types.NewPosition(offset.Top, offset.Left+step))

	if sc.Finished() {
		sc.complete(f.Now)
	}
	return m, nil
}

func (sc *Scroll) complete(now float64) {
	sc.Stop(now)
	sc.Raise(sc.callback)
	log.Printf("[Scroll] Sprite %s finished scrolling %.0fpx (direction %+.0f)", sc.SpriteID(), sc.distance, sc.direction)
}
