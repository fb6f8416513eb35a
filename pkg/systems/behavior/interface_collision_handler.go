package behavior

import "github.com/gonewx/pvzsim/pkg/sprite"

// InterfaceCollisionHandler 界面道具在刚被碰撞时开始行走
type InterfaceCollisionHandler struct {
	baseCollisionHandler
}

func (h *InterfaceCollisionHandler) OnCollisionStateChange(s *sprite.Sprite, state, prev CollisionState) *sprite.Mutation {
	if state.Reaction != ReactionNone && prev.Reaction == ReactionNone {
		return sprite.NewMutation().WithWalking(true)
	}
	return nil
}
