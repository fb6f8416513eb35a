package behavior

import (
	"log"

	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

// LawnCleanerCollisionHandler 除草车在所在行被突破时启动，并只通知一次"已用掉"
type LawnCleanerCollisionHandler struct {
	baseCollisionHandler
	triggered bool
	reported  bool
}

func (h *LawnCleanerCollisionHandler) OnCollisionStateChange(s *sprite.Sprite, state, prev CollisionState) *sprite.Mutation {
	if state.Reaction == ReactionNone || prev.Reaction != ReactionNone {
		return nil
	}
	if !h.triggered {
		h.triggered = true
		log.Printf("[LawnCleaner] %s triggered in row %d", s.ID, s.BoardLocation.Row)
	}
	return sprite.NewMutation().WithWalking(true)
}

func (h *LawnCleanerCollisionHandler) InteractionCallback() types.Callback {
	if h.triggered && !h.reported {
		h.reported = true
		return types.CallbackLawnCleanerLost
	}
	return types.CallbackNone
}
