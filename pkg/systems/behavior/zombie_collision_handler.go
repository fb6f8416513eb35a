package behavior

import (
	"github.com/gonewx/pvzsim/pkg/config"
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/timers"
	"github.com/gonewx/pvzsim/pkg/types"
)

// ZombieState 僵尸的内部子状态，由 (反应状态, 生命值) 推导
// 换装集合索引 = 子状态 - 1
type ZombieState int

const (
	ZombieStale ZombieState = iota
	ZombieArmoredWalk
	ZombieArmoredAttack
	ZombieWalk
	ZombieAttack
	ZombieDie
)

// SwapIndex 子状态对应的换装集合
func (z ZombieState) SwapIndex() int {
	return int(z) - 1
}

func (z ZombieState) String() string {
	switch z {
	case ZombieArmoredWalk:
		return "ArmoredWalk"
	case ZombieArmoredAttack:
		return "ArmoredAttack"
	case ZombieWalk:
		return "Walk"
	case ZombieAttack:
		return "Attack"
	case ZombieDie:
		return "Die"
	default:
		return "Stale"
	}
}

// ZombieCollisionHandler 僵尸的碰撞反应
//
// 攻击时启动冷却计时并静音，冷却期间重复的攻击反应不产生变更；冷却到期后解除静音。
// 死亡只发生一次，并且只通知一次。
type ZombieCollisionHandler struct {
	baseCollisionHandler
	attackTimer *timers.Timer
	state       ZombieState
	lostHead    bool
	now         float64 // 最近一次 Tick 的时间
}

func NewZombieCollisionHandler() *ZombieCollisionHandler {
	return &ZombieCollisionHandler{
		attackTimer: timers.NewTimer(config.ZombieAttackCooldown),
		state:       ZombieArmoredWalk,
	}
}

// State 返回当前子状态
func (h *ZombieCollisionHandler) State() ZombieState {
	return h.state
}

func (h *ZombieCollisionHandler) deriveState(state CollisionState, life float64) ZombieState {
	if h.state == ZombieDie {
		return ZombieDie
	}
	armored := life > config.ZombieArmoredLifeThreshold

	switch state.Reaction {
	case ReactionAttacking:
		if armored {
			return ZombieArmoredAttack
		}
		return ZombieAttack
	case ReactionTakingDamage:
		if life <= 0 {
			return ZombieDie
		}
		return h.state
	default:
		if armored {
			return ZombieArmoredWalk
		}
		return ZombieWalk
	}
}

func (h *ZombieCollisionHandler) Tick(now float64) *sprite.Mutation {
	h.now = now
	if h.attackTimer.Expired(now) {
		h.attackTimer.Stop(now)
		return sprite.NewMutation().WithMute(false)
	}
	return nil
}

func (h *ZombieCollisionHandler) OnAttack(now float64) *sprite.Mutation {
	if h.attackTimer.IsRunning() {
		return nil
	}
	h.attackTimer.Start(now)
	return sprite.NewMutation().WithMute(true).WithSwap(h.state.SwapIndex())
}

func (h *ZombieCollisionHandler) OnHit(damage float64) *sprite.Mutation {
	return sprite.NewMutation().
		WithDamage(damage).
		WithAlpha(config.ZombieHitAlpha).
		WithSwap(h.state.SwapIndex())
}

func (h *ZombieCollisionHandler) OnAfterHit() DelayedMutation {
	return DelayedMutation{
		Mutation: sprite.NewMutation().WithAlpha(1),
		Delay:    config.ZombieHitFlashDuration,
	}
}

func (h *ZombieCollisionHandler) OnDie(damage float64) *sprite.Mutation {
	h.state = ZombieDie
	return sprite.NewMutation().
		WithDamage(damage).
		WithAlpha(config.ZombieDeathAlpha).
		WithMute(true).
		WithSwap(h.state.SwapIndex()).
		WithWalking(false).
		WithStopAnimate()
}

func (h *ZombieCollisionHandler) OnCollisionStateChange(s *sprite.Sprite, state, prev CollisionState) *sprite.Mutation {
	prevState := h.state
	h.state = h.deriveState(state, s.AttackState.Life)

	// 攻击中途目标离开，强制结束冷却，避免一直静音
	if state.Reaction == ReactionNone && prev.Reaction == ReactionAttacking && h.attackTimer.IsRunning() {
		h.attackTimer.Stop(h.now)
		return sprite.NewMutation().WithMute(false).WithSwap(h.state.SwapIndex())
	}

	if prevState != h.state {
		return sprite.NewMutation().WithSwap(h.state.SwapIndex())
	}
	return nil
}

func (h *ZombieCollisionHandler) InteractionCallback() types.Callback {
	if h.state == ZombieDie && !h.lostHead {
		h.lostHead = true
		return types.CallbackZombieDeath
	}
	return types.CallbackNone
}
