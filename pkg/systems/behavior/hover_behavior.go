package behavior

import (
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

// Hover 指针悬停检测
// 每次执行后自行停止，由指针移动事件重新启动
type Hover struct {
	BaseBehavior
}

func NewHover() *Hover {
	return &Hover{}
}

func (h *Hover) Type() types.BehaviorType {
	return types.BehaviorHover
}

func (h *Hover) Execute(s *sprite.Sprite, f sprite.Frame) (*sprite.Mutation, error) {
	h.Stop(f.Now)
	hovered := f.Painter != nil && f.Painter.InPath(s.Outline, f.Pointer)
	return sprite.NewMutation().WithHovered(hovered), nil
}
