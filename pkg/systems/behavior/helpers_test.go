package behavior

import (
	"testing"

	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

// fakePainter 固定返回命中结果的 Painter
type fakePainter struct {
	inside bool
}

func (p fakePainter) InPath(points []types.Position, pt types.Position) bool {
	return p.inside
}

func cells(n int, w, h float64) []types.SpriteCell {
	out := make([]types.SpriteCell, n)
	for i := range out {
		out[i] = types.SpriteCell{Left: float64(i) * w, Width: w, Height: h}
	}
	return out
}

func newSprite(t *testing.T, kind types.SpriteType, pos types.Position, behaviors ...sprite.Behavior) *sprite.Sprite {
	t.Helper()
	cfg := sprite.Config{
		ID:        kind.String() + "_test",
		Name:      kind.String(),
		Type:      kind,
		Position:  pos,
		Cells:     cells(3, 80, 100),
		Life:      100,
		Damage:    10,
		Behaviors: behaviors,
	}
	switch kind {
	case types.SpriteZombie:
		cfg.Life = 200
		for i := 0; i < 5; i++ {
			cfg.SwapCells = append(cfg.SwapCells, cells(2, 90, 120))
		}
	case types.SpriteBullet:
		cfg.Cells = cells(1, 28, 28)
		cfg.SwapCells = [][]types.SpriteCell{cells(1, 40, 40), cells(1, 30, 30)}
	}

	s, err := sprite.New(cfg)
	if err != nil {
		t.Fatalf("Failed to create sprite: %v", err)
	}
	return s
}

// step 以 [last, now] 为一帧运行实体的行为，应用变更并返回本帧的交互
func step(t *testing.T, s *sprite.Sprite, now, last float64, painter fakePainter) []types.Interaction {
	t.Helper()
	ms, err := Run(s, sprite.Frame{Now: now, LastTick: last, Painter: painter})
	if err != nil {
		t.Fatalf("Run failed at %.0f: %v", now, err)
	}
	if err := s.ValidateMutations(ms); err != nil {
		t.Fatalf("Invalid mutations at %.0f: %v", now, err)
	}
	if err := s.ApplyMutations(ms, now); err != nil {
		t.Fatalf("Apply failed at %.0f: %v", now, err)
	}
	return CollectInteractions(s)
}

func frameAt(now, last float64, pointer types.Position, inside bool) sprite.Frame {
	return sprite.Frame{Now: now, LastTick: last, Pointer: pointer, Painter: fakePainter{inside: inside}}
}
