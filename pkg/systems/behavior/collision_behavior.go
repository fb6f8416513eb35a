package behavior

import (
	"log"

	"github.com/gonewx/pvzsim/pkg/config"
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/timers"
	"github.com/gonewx/pvzsim/pkg/types"
)

// Collision 碰撞反应行为
//
// 它不判断是否发生碰撞，只对战斗管理器写入的反应状态做出反应。
// 碰撞处理器在第一次执行时按实体种类惰性绑定，之后在实体生命周期内保持不变。
//
// 每帧的处理顺序：
//  1. 已到期的延迟变更优先返回
//  2. 处理器的 Tick
//  3. 待应用的攻击效果
//  4. 反应状态变化时调用 OnCollisionStateChange
//  5. 按当前反应状态分支（攻击 / 受击 / 死亡）
//
// 以上任何一步返回非空变更都会立即结束本帧的反应；
// 之后若处理器报告了回调，排队该回调并停止本行为。
type Collision struct {
	BaseBehavior
	margin    types.CollisionMargin
	state     CollisionState
	prevState CollisionState
	effect    types.AttackEffect

	handler      CollisionHandler
	delayed      *sprite.Mutation
	delayedTimer *timers.Timer
}

func NewCollision(margin types.CollisionMargin) *Collision {
	return &Collision{
		margin:       margin,
		delayedTimer: timers.NewTimer(config.DefaultDelayedMutationTimeout),
	}
}

func (c *Collision) Type() types.BehaviorType {
	return types.BehaviorCollision
}

// Margin 返回碰撞边距
func (c *Collision) Margin() types.CollisionMargin {
	return c.margin
}

// State 返回当前反应状态
func (c *Collision) State() CollisionState {
	return c.state
}

// SetState 写入反应状态（仅由战斗管理器的结果驱动）
func (c *Collision) SetState(state CollisionState) {
	c.state = state
}

// ApplyEffect 排队一个一次性攻击效果，下一次执行时交给处理器
func (c *Collision) ApplyEffect(effect types.AttackEffect) {
	c.effect = effect
}

// Handler 返回已绑定的处理器（未执行过时为 nil）
func (c *Collision) Handler() CollisionHandler {
	return c.handler
}

// BindHandler 按实体种类绑定处理器，已绑定时不做任何事
func (c *Collision) BindHandler(kind types.SpriteType) error {
	if c.handler != nil {
		return nil
	}
	h, err := NewCollisionHandler(kind)
	if err != nil {
		return err
	}
	c.handler = h
	return nil
}

func (c *Collision) Execute(s *sprite.Sprite, f sprite.Frame) (*sprite.Mutation, error) {
	if err := c.BindHandler(s.Type); err != nil {
		return nil, err
	}

	m := c.react(s, f.Now)

	if cb := c.handler.InteractionCallback(); cb != types.CallbackNone {
		log.Printf("[Collision] Sprite %s (%s) raised %s", s.ID, s.Name, cb)
		c.Raise(cb)
		c.Stop(f.Now)
	}

	if m.IsEmpty() {
		return nil, nil
	}
	return m, nil
}

func (c *Collision) react(s *sprite.Sprite, now float64) *sprite.Mutation {
	if c.delayed != nil && c.delayedTimer.Expired(now) {
		m := c.delayed
		c.delayed = nil
		c.delayedTimer.Stop(now)
		return m
	}

	if m := c.handler.Tick(now); !m.IsEmpty() {
		return m
	}

	if c.effect != types.AttackEffectNone {
		effect := c.effect
		c.effect = types.AttackEffectNone
		if m := c.handler.OnApplyEffect(effect); !m.IsEmpty() {
			return m
		}
	}

	if c.state != c.prevState {
		if m := c.handler.OnCollisionStateChange(s, c.state, c.prevState); !m.IsEmpty() {
			return m
		}
	}

	var m *sprite.Mutation
	switch c.state.Reaction {
	case ReactionAttacking:
		m = c.handler.OnAttack(now)
		c.schedule(c.handler.OnAfterAttack(), now)
	case ReactionTakingDamage:
		// 伤害为 0（攻击方静音）不触发受击；已死亡的实体不再结算伤害
		if damage := c.state.Damage; damage > 0 && !s.AttackState.IsDead() {
			if s.AttackState.Life-damage <= 0 {
				m = c.handler.OnDie(damage)
				log.Printf("[Collision] Sprite %s (%s) died", s.ID, s.Name)
			} else {
				m = c.handler.OnHit(damage)
				c.schedule(c.handler.OnAfterHit(), now)
			}
		}
	}

	c.prevState = c.state
	return m
}

// schedule 设置延迟变更；已有待执行的延迟变更时忽略新的
func (c *Collision) schedule(d DelayedMutation, now float64) {
	if c.delayed != nil || d.Mutation == nil {
		return
	}
	c.delayedTimer.SetDuration(d.Delay)
	c.delayedTimer.Start(now)
	c.delayed = d.Mutation
}
