package behavior

import "fmt"

// Reaction 碰撞反应的种类
type Reaction int

const (
	ReactionNone Reaction = iota
	ReactionAttacking
	ReactionTakingDamage
)

// CollisionState 由战斗管理器写入、由碰撞行为读取的三态反应值
// 只有 ReactionTakingDamage 使用 Damage
type CollisionState struct {
	Reaction Reaction
	Damage   float64
}

// NoCollision 没有碰撞
func NoCollision() CollisionState {
	return CollisionState{}
}

// Attacking 作为攻击方参与碰撞
func Attacking() CollisionState {
	return CollisionState{Reaction: ReactionAttacking}
}

// TakingDamage 作为目标受到 damage 点伤害
func TakingDamage(damage float64) CollisionState {
	return CollisionState{Reaction: ReactionTakingDamage, Damage: damage}
}

func (c CollisionState) String() string {
	switch c.Reaction {
	case ReactionAttacking:
		return "Attacking"
	case ReactionTakingDamage:
		return fmt.Sprintf("TakingDamage(%.1f)", c.Damage)
	default:
		return "None"
	}
}
