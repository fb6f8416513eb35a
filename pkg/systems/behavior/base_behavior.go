// Package behavior 实现实体的逐帧行为（悬停、点击、拖拽、滚动、动画、行走、定时、碰撞），
// 以及按实体种类绑定的碰撞处理器和行为管理函数
package behavior

import (
	"github.com/gonewx/pvzsim/pkg/types"
)

// BaseBehavior 所有行为共享的运行状态
// 具体行为嵌入它，并按需覆盖 Start/Stop
type BaseBehavior struct {
	running  bool
	spriteID string
	pending  []types.Interaction
}

// IsRunning 行为是否在运行
func (b *BaseBehavior) IsRunning() bool {
	return b.running
}

// Start 启动行为
func (b *BaseBehavior) Start(now float64) {
	b.running = true
}

// Stop 停止行为，下一次执行时生效
func (b *BaseBehavior) Stop(now float64) {
	b.running = false
}

// SpriteID 返回所属实体 ID
func (b *BaseBehavior) SpriteID() string {
	return b.spriteID
}

// SetSpriteID 绑定所属实体
func (b *BaseBehavior) SetSpriteID(id string) {
	b.spriteID = id
}

// Raise 排队一个交互事件，空回调会被忽略
func (b *BaseBehavior) Raise(cb types.Callback) {
	if cb == types.CallbackNone {
		return
	}
	b.pending = append(b.pending, types.Interaction{Callback: cb, SpriteID: b.spriteID})
}

// DrainInteractions 取出并清空待处理的交互事件
func (b *BaseBehavior) DrainInteractions() []types.Interaction {
	out := b.pending
	b.pending = nil
	return out
}
