package behavior

import (
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

// Drag 拖拽
// 指针第一次落在轮廓内时建立锚点，之后每帧按指针位移移动实体；
// 停止时（指针释放）若正在拖拽则排队拖拽结束回调
type Drag struct {
	BaseBehavior
	callback types.Callback
	anchor   *types.Position
}

func NewDrag(callback types.Callback) *Drag {
	return &Drag{callback: callback}
}

func (d *Drag) Type() types.BehaviorType {
	return types.BehaviorDrag
}

// IsDragging 是否已经建立锚点
func (d *Drag) IsDragging() bool {
	return d.anchor != nil
}

func (d *Drag) Stop(now float64) {
	if d.anchor != nil {
		d.Raise(d.callback)
		d.anchor = nil
	}
	d.BaseBehavior.Stop(now)
}

func (d *Drag) Execute(s *sprite.Sprite, f sprite.Frame) (*sprite.Mutation, error) {
	if d.anchor == nil {
		if f.Painter == nil || !f.Painter.InPath(s.Outline, f.Pointer) {
			return nil, nil
		}
		anchor := f.Pointer
		d.anchor = &anchor
		return nil, nil
	}

	delta := types.NewPosition(f.Pointer.Top-d.anchor.Top, f.Pointer.Left-d.anchor.Left)
	*d.anchor = f.Pointer
	if delta == (types.Position{}) {
		return nil, nil
	}
	return sprite.NewMutation().WithPosition(s.Position.Add(delta)), nil
}
