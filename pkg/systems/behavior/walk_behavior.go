package behavior

import (
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
	"github.com/gonewx/pvzsim/pkg/utils"
)

// Walk 按速度移动实体
// 达到最大距离时停止；将要离开画布时停止并隐藏实体。两种情况都会排队回调（如果有）
type Walk struct {
	BaseBehavior
	velocity    types.Velocity // 像素/秒
	maxDistance float64        // 0 表示不限
	walked      float64
	callback    types.Callback
}

func NewWalk(maxDistance float64, velocity types.Velocity, callback types.Callback) *Walk {
	return &Walk{
		velocity:    velocity,
		maxDistance: maxDistance,
		callback:    callback,
	}
}

func (w *Walk) Type() types.BehaviorType {
	return types.BehaviorWalk
}

// Velocity 返回当前速度
func (w *Walk) Velocity() types.Velocity {
	return w.velocity
}

// SetVelocity 修改速度
func (w *Walk) SetVelocity(v types.Velocity) {
	w.velocity = v
}

// SetMaxDistance 修改最大距离（0 表示不限）
func (w *Walk) SetMaxDistance(d float64) {
	w.maxDistance = d
}

// Walked 返回累计行走距离
func (w *Walk) Walked() float64 {
	return w.walked
}

// ResetDistance 清零累计行走距离
func (w *Walk) ResetDistance() {
	w.walked = 0
}

func (w *Walk) Execute(s *sprite.Sprite, f sprite.Frame) (*sprite.Mutation, error) {
	if w.maxDistance > 0 && w.walked >= w.maxDistance {
		w.Stop(f.Now)
		w.Raise(w.callback)
		return nil, nil
	}

	rate := f.Rate()
	offset := types.NewPosition(rate*w.velocity.Y, rate*w.velocity.X)
	next := s.Position.Add(offset)

	cell, err := s.ActiveCell()
	if err != nil {
		return nil, err
	}
	size := cell.Size()
	size.Width *= s.DrawingState.Scale
	size.Height *= s.DrawingState.Scale

	if utils.IsOutOfBoard(size, next) {
		w.Stop(f.Now)
		w.Raise(w.callback)
		return sprite.NewMutation().Hide(true), nil
	}

	w.walked += offset.Distance()
	return sprite.NewMutation().WithPosition(next), nil
}
