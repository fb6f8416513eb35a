package behavior

import (
	"errors"
	"fmt"

	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

// ErrNoCollisionHandler 实体种类没有对应的碰撞处理器
var ErrNoCollisionHandler = errors.New("no collision handler for sprite type")

// DelayedMutation 延迟 Delay 毫秒后应用的变更
type DelayedMutation struct {
	Mutation *sprite.Mutation
	Delay    float64
}

// CollisionHandler 按实体种类定制的碰撞反应策略
// 由 Collision 行为调用，把反应状态转换为变更
type CollisionHandler interface {
	// Tick 每帧的内部维护（例如攻击冷却到期后解除静音）
	Tick(now float64) *sprite.Mutation
	OnAttack(now float64) *sprite.Mutation
	OnAfterAttack() DelayedMutation
	OnHit(damage float64) *sprite.Mutation
	OnAfterHit() DelayedMutation
	OnDie(damage float64) *sprite.Mutation
	OnApplyEffect(effect types.AttackEffect) *sprite.Mutation
	// OnCollisionStateChange 反应状态与上一帧不同时调用
	OnCollisionStateChange(s *sprite.Sprite, state, prev CollisionState) *sprite.Mutation
	// InteractionCallback 需要通知交互接收方时返回非空回调
	InteractionCallback() types.Callback
}

// baseCollisionHandler 默认实现：受击扣血，死亡时扣血并隐藏，其余无操作
type baseCollisionHandler struct{}

func (baseCollisionHandler) Tick(now float64) *sprite.Mutation { return nil }

func (baseCollisionHandler) OnAttack(now float64) *sprite.Mutation { return nil }

func (baseCollisionHandler) OnAfterAttack() DelayedMutation { return DelayedMutation{} }

func (baseCollisionHandler) OnHit(damage float64) *sprite.Mutation {
	return sprite.NewMutation().WithDamage(damage)
}

func (baseCollisionHandler) OnAfterHit() DelayedMutation { return DelayedMutation{} }

func (baseCollisionHandler) OnDie(damage float64) *sprite.Mutation {
	return sprite.NewMutation().WithDamage(damage).Hide(true)
}

func (baseCollisionHandler) OnApplyEffect(effect types.AttackEffect) *sprite.Mutation { return nil }

func (baseCollisionHandler) OnCollisionStateChange(s *sprite.Sprite, state, prev CollisionState) *sprite.Mutation {
	return nil
}

func (baseCollisionHandler) InteractionCallback() types.Callback { return types.CallbackNone }

// NewCollisionHandler 按实体种类创建碰撞处理器
// 可以创建处理器的种类与 types.SpriteType.Collidable 一致
func NewCollisionHandler(kind types.SpriteType) (CollisionHandler, error) {
	switch kind {
	case types.SpriteZombie:
		return NewZombieCollisionHandler(), nil
	case types.SpritePlant:
		return &PlantCollisionHandler{}, nil
	case types.SpriteBullet:
		return NewBulletCollisionHandler(), nil
	case types.SpriteInterface:
		return &InterfaceCollisionHandler{}, nil
	case types.SpriteLawnCleaner:
		return &LawnCleanerCollisionHandler{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoCollisionHandler, kind)
	}
}
