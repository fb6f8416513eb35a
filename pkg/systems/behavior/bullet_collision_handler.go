package behavior

import (
	"github.com/gonewx/pvzsim/pkg/config"
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

// BulletState 子弹的外观状态，值即换装集合索引
type BulletState int

const (
	BulletHit BulletState = iota
	BulletFire
	BulletFlying
)

// BulletCollisionHandler 子弹命中后切换为击中外观并静音，50ms 后隐藏
type BulletCollisionHandler struct {
	baseCollisionHandler
	state BulletState
}

func NewBulletCollisionHandler() *BulletCollisionHandler {
	return &BulletCollisionHandler{state: BulletFlying}
}

// State 返回子弹当前状态
func (h *BulletCollisionHandler) State() BulletState {
	return h.state
}

func (h *BulletCollisionHandler) OnAttack(now float64) *sprite.Mutation {
	h.state = BulletHit
	return sprite.NewMutation().WithSwap(int(h.state)).WithMute(true)
}

func (h *BulletCollisionHandler) OnAfterAttack() DelayedMutation {
	return DelayedMutation{
		Mutation: sprite.NewMutation().Hide(true),
		Delay:    config.BulletImpactDuration,
	}
}

// OnApplyEffect 火焰效果只生效一次
func (h *BulletCollisionHandler) OnApplyEffect(effect types.AttackEffect) *sprite.Mutation {
	if effect != types.AttackEffectFireBullet || h.state == BulletFire || h.state == BulletHit {
		return nil
	}
	h.state = BulletFire
	return sprite.NewMutation().
		WithSwap(int(h.state)).
		WithIncreaseDamage(config.FireBulletDamageBonus)
}
