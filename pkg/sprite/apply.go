package sprite

import (
	"fmt"

	"github.com/gonewx/pvzsim/pkg/types"
)

// animationLimiter 可以被截断循环次数的行为（Animate）
type animationLimiter interface {
	SetMaxCycles(n int)
}

// ValidateMutations 在实体视觉状态的副本上依次演练变更，
// 确认应用后当前帧合法；不修改实体
func (s *Sprite) ValidateMutations(ms []*Mutation) error {
	ds := s.DrawingState
	for _, m := range ms {
		if m == nil {
			continue
		}
		if err := applyVisuals(&ds, m); err != nil {
			return fmt.Errorf("sprite %s (%s): %w", s.ID, s.Name, err)
		}
	}
	if _, err := ds.Active(); err != nil {
		return fmt.Errorf("sprite %s (%s): %w", s.ID, s.Name, err)
	}
	return nil
}

// ApplyMutation 把一个变更应用到实体
// 位置变更后立即重算草坪行列；影响当前帧的变更会重算轮廓
func (s *Sprite) ApplyMutation(m *Mutation, now float64) error {
	if m == nil {
		return nil
	}

	if err := applyVisuals(&s.DrawingState, m); err != nil {
		return fmt.Errorf("sprite %s (%s): %w", s.ID, s.Name, err)
	}

	if m.Visible != nil {
		s.Visible = *m.Visible
	}
	if m.Mute != nil {
		s.AttackState.Muted = *m.Mute
	}
	if m.Damage != nil {
		s.AttackState.TakeDamage(*m.Damage)
	}
	if m.IncreaseDamage != nil {
		s.AttackState.Damage += *m.IncreaseDamage
	}

	if m.Walking != nil {
		for _, b := range s.Behaviors {
			if b.Type() == types.BehaviorWalk {
				ToggleBehavior(b, *m.Walking, now)
			}
		}
	}
	if m.StopAnimate {
		for _, b := range s.Behaviors {
			if l, ok := b.(animationLimiter); ok && b.Type() == types.BehaviorAnimate {
				l.SetMaxCycles(1)
			}
		}
	}

	if m.Position != nil {
		return s.UpdatePosition(*m.Position)
	}
	if m.touchesVisuals() {
		return s.RefreshOutline()
	}
	return nil
}

// ApplyMutations 依次应用变更
func (s *Sprite) ApplyMutations(ms []*Mutation, now float64) error {
	for _, m := range ms {
		if err := s.ApplyMutation(m, now); err != nil {
			return err
		}
	}
	return nil
}

func applyVisuals(ds *DrawingState, m *Mutation) error {
	if m.Offset != nil {
		ds.Offset = *m.Offset
	}
	if m.Hovered != nil {
		ds.Hover(*m.Hovered)
	}
	if m.Swap != nil {
		if err := ds.Swap(*m.Swap); err != nil {
			return err
		}
	}
	if m.Cycle {
		ds.CycleCells()
	}
	if m.Alpha != nil {
		ds.Alpha = *m.Alpha
	}
	return nil
}
