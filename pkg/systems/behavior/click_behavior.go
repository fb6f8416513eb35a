package behavior

import (
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

// Click 指针点击检测
// 命中时排队回调，回调的含义由交互接收方决定
type Click struct {
	BaseBehavior
	callback types.Callback
}

func NewClick(callback types.Callback) *Click {
	return &Click{callback: callback}
}

func (c *Click) Type() types.BehaviorType {
	return types.BehaviorClick
}

// Callback 返回绑定的回调
func (c *Click) Callback() types.Callback {
	return c.callback
}

func (c *Click) Execute(s *sprite.Sprite, f sprite.Frame) (*sprite.Mutation, error) {
	c.Stop(f.Now)
	if f.Painter != nil && f.Painter.InPath(s.Outline, f.Pointer) {
		c.Raise(c.callback)
	}
	return nil, nil
}
