package sprite

import "github.com/gonewx/pvzsim/pkg/types"

// AttackState 战斗属性
// Life <= 0 是"死亡"的唯一判断依据
type AttackState struct {
	Life   float64
	Damage float64
	Muted  bool               // 静音时不造成伤害
	Effect types.AttackEffect // 一次性攻击效果
}

// NewAttackState 创建战斗属性
func NewAttackState(life, damage float64) AttackState {
	return AttackState{Life: life, Damage: damage}
}

// TakeDamage 扣除生命值
func (a *AttackState) TakeDamage(damage float64) {
	a.Life -= damage
}

// IsDead 生命值 <= 0
func (a *AttackState) IsDead() bool {
	return a.Life <= 0
}

// EffectiveDamage 当前可造成的伤害，静音时为 0
func (a *AttackState) EffectiveDamage() float64 {
	if a.Muted {
		return 0
	}
	return a.Damage
}
