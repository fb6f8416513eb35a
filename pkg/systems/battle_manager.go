package systems

import (
	"cmp"
	"fmt"
	"log"
	"slices"

	"github.com/gonewx/pvzsim/pkg/config"
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/systems/behavior"
	"github.com/gonewx/pvzsim/pkg/types"
)

// CollisionPair 一次检测出的攻击关系
type CollisionPair struct {
	AttackerID string
	TargetID   string
	Damage     float64            // 攻击方当前的有效伤害（静音时为 0）
	Effect     types.AttackEffect // 攻击方附带的效果
}

// BattleResult 一帧的检测结果
// States 覆盖本帧参与检测的全部实体，未配对的实体为 NoCollision
type BattleResult struct {
	Pairs   []CollisionPair
	States  map[string]behavior.CollisionState
	Effects map[string]types.AttackEffect // 目标 ID → 需要施加的效果
}

// BattleManager 战斗管理器（碰撞检测阶段）
// 职责：
// - 按草坪行分组参与碰撞的实体
// - 在同一行内按兼容表寻找目标，做前沿重叠测试
// - 汇总每个实体的反应值，由 Apply 写回碰撞行为
// - 检测僵尸突破房屋边界，触发该行的除草车
//
// 多个攻击方同时命中同一目标时伤害累加；
// 同一实体既是攻击方又是目标时，TakingDamage 优先
type BattleManager struct {
	engaged map[string]string // 攻击方 → 目标，仅用于记录新出现的交战
}

// NewBattleManager 创建战斗管理器
func NewBattleManager() *BattleManager {
	return &BattleManager{engaged: make(map[string]string)}
}

type combatant struct {
	sprite    *sprite.Sprite
	collision *behavior.Collision
}

// Detect 计算本帧的碰撞结果，不修改任何实体
func (m *BattleManager) Detect(sprites []*sprite.Sprite) (BattleResult, error) {
	combatants := m.collect(sprites)

	// 稳定排序，同一行内保持实体原有顺序（"第一个命中"依赖这个顺序）
	slices.SortStableFunc(combatants, func(a, b combatant) int {
		return cmp.Compare(a.sprite.BoardLocation.Row, b.sprite.BoardLocation.Row)
	})

	result := BattleResult{
		States:  make(map[string]behavior.CollisionState, len(combatants)),
		Effects: make(map[string]types.AttackEffect),
	}

	for start := 0; start < len(combatants); {
		end := start + 1
		row := combatants[start].sprite.BoardLocation.Row
		for end < len(combatants) && combatants[end].sprite.BoardLocation.Row == row {
			end++
		}

		pairs, err := detectRow(combatants[start:end])
		if err != nil {
			return BattleResult{}, err
		}
		result.Pairs = append(result.Pairs, pairs...)
		start = end
	}

	for _, c := range combatants {
		result.States[c.sprite.ID] = behavior.NoCollision()
	}
	for _, p := range result.Pairs {
		if result.States[p.AttackerID].Reaction == behavior.ReactionNone {
			result.States[p.AttackerID] = behavior.Attacking()
		}
	}
	for _, p := range result.Pairs {
		state := result.States[p.TargetID]
		if state.Reaction != behavior.ReactionTakingDamage {
			state = behavior.TakingDamage(0)
		}
		state.Damage += p.Damage
		result.States[p.TargetID] = state

		if p.Effect != types.AttackEffectNone {
			result.Effects[p.TargetID] = p.Effect
		}
	}

	m.markBreaches(combatants, result.States)
	m.logEngagements(result.Pairs)
	return result, nil
}

// Apply 把检测结果写入各实体的碰撞行为
// 不在结果中的实体（不可见或碰撞行为未运行）保持原状
func (m *BattleManager) Apply(sprites []*sprite.Sprite, result BattleResult) {
	for _, s := range sprites {
		state, ok := result.States[s.ID]
		if !ok {
			continue
		}
		c, err := behavior.Get[*behavior.Collision](s)
		if err != nil {
			continue
		}
		c.SetState(state)
		if effect, ok := result.Effects[s.ID]; ok {
			c.ApplyEffect(effect)
		}
	}
}

// collect 过滤出可见且碰撞行为在运行的实体
func (m *BattleManager) collect(sprites []*sprite.Sprite) []combatant {
	var out []combatant
	for _, s := range sprites {
		if !s.Visible {
			continue
		}
		c, err := behavior.Get[*behavior.Collision](s)
		if err != nil || !c.IsRunning() {
			continue
		}
		out = append(out, combatant{sprite: s, collision: c})
	}
	return out
}

// detectRow 在同一行内为每个攻击方寻找第一个命中的目标
func detectRow(row []combatant) ([]CollisionPair, error) {
	var pairs []CollisionPair
	for _, attacker := range row {
		kind := attacker.sprite.Type
		if kind.TargetType() == types.SpriteMeta {
			continue
		}

		edge := attacker.sprite.Position.Left + attacker.collision.Margin().Left
		for _, target := range row {
			if target.sprite == attacker.sprite || !kind.CanTarget(target.sprite.Type) {
				continue
			}

			cell, err := target.sprite.ActiveCell()
			if err != nil {
				return nil, fmt.Errorf("collision target %s: %w", target.sprite.ID, err)
			}
			left := target.sprite.Position.Left
			if edge < left || edge > left+cell.Width {
				continue
			}

			pairs = append(pairs, CollisionPair{
				AttackerID: attacker.sprite.ID,
				TargetID:   target.sprite.ID,
				Damage:     attacker.sprite.AttackState.EffectiveDamage(),
				Effect:     attacker.sprite.AttackState.Effect,
			})
			break
		}
	}
	return pairs, nil
}

// markBreaches 僵尸越过房屋边界时，把同一行的除草车标记为 Attacking
func (m *BattleManager) markBreaches(combatants []combatant, states map[string]behavior.CollisionState) {
	breached := make(map[int]bool)
	for _, c := range combatants {
		if c.sprite.Type == types.SpriteZombie && !c.sprite.AttackState.IsDead() &&
			c.sprite.Position.Left+c.collision.Margin().Left < config.HouseBoundaryX {
			breached[c.sprite.BoardLocation.Row] = true
		}
	}
	if len(breached) == 0 {
		return
	}

	for _, c := range combatants {
		if c.sprite.Type == types.SpriteLawnCleaner && breached[c.sprite.BoardLocation.Row] {
			states[c.sprite.ID] = behavior.Attacking()
		}
	}
}

func (m *BattleManager) logEngagements(pairs []CollisionPair) {
	current := make(map[string]string, len(pairs))
	for _, p := range pairs {
		current[p.AttackerID] = p.TargetID
		if m.engaged[p.AttackerID] != p.TargetID {
			log.Printf("[BattleManager] %s engaged %s (damage %.1f)", p.AttackerID, p.TargetID, p.Damage)
		}
	}
	m.engaged = current
}
