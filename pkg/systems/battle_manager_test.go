package systems

import (
	"testing"

	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/systems/behavior"
	"github.com/gonewx/pvzsim/pkg/types"
)

func newCombatant(t *testing.T, id string, kind types.SpriteType, top, left float64) *sprite.Sprite {
	t.Helper()
	c := behavior.NewCollision(types.CollisionMargin{})
	s, err := sprite.New(sprite.Config{
		ID:        id,
		Name:      kind.String(),
		Type:      kind,
		Position:  types.NewPosition(top, left),
		Cells:     []types.SpriteCell{{Width: 60, Height: 80}},
		Life:      100,
		Damage:    10,
		Behaviors: []sprite.Behavior{c},
	})
	if err != nil {
		t.Fatalf("Failed to create sprite: %v", err)
	}
	c.Start(0)
	return s
}

// TestBattleCompatibility 同一格的僵尸与植物配对；两株植物不配对
func TestBattleCompatibility(t *testing.T) {
	bm := NewBattleManager()

	zombie := newCombatant(t, "zombie", types.SpriteZombie, 250, 320)
	plant := newCombatant(t, "plant", types.SpritePlant, 250, 300)

	result, err := bm.Detect([]*sprite.Sprite{zombie, plant})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(result.Pairs))
	}
	p := result.Pairs[0]
	if p.AttackerID != "zombie" || p.TargetID != "plant" || p.Damage != 10 {
		t.Errorf("Unexpected pair %+v", p)
	}
	if result.States["zombie"] != behavior.Attacking() {
		t.Errorf("Expected zombie Attacking, got %s", result.States["zombie"])
	}
	if result.States["plant"] != behavior.TakingDamage(10) {
		t.Errorf("Expected plant TakingDamage(10), got %s", result.States["plant"])
	}

	other := newCombatant(t, "plant2", types.SpritePlant, 250, 320)
	result, err = bm.Detect([]*sprite.Sprite{other, plant})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Pairs) != 0 {
		t.Errorf("Two plants should not collide, got %v", result.Pairs)
	}
	if result.States["plant2"] != behavior.NoCollision() {
		t.Errorf("Expected None, got %s", result.States["plant2"])
	}
}

func TestBattleOverlapTest(t *testing.T) {
	tests := []struct {
		name     string
		zombieX  float64
		zombieY  float64
		expected int
	}{
		{"leading edge inside span", 330, 250, 1},
		{"leading edge on left bound", 300, 250, 1},
		{"leading edge on right bound", 360, 250, 1},
		{"left of target", 290, 250, 0},
		{"right of target", 361, 250, 0},
		{"different row", 330, 450, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zombie := newCombatant(t, "zombie", types.SpriteZombie, tt.zombieY, tt.zombieX)
			plant := newCombatant(t, "plant", types.SpritePlant, 250, 300)

			result, err := NewBattleManager().Detect([]*sprite.Sprite{zombie, plant})
			if err != nil {
				t.Fatal(err)
			}
			if len(result.Pairs) != tt.expected {
				t.Errorf("Expected %d pairs, got %d", tt.expected, len(result.Pairs))
			}
		})
	}
}

func TestBattleSkipsInactive(t *testing.T) {
	zombie := newCombatant(t, "zombie", types.SpriteZombie, 250, 320)
	hidden := newCombatant(t, "hidden", types.SpritePlant, 250, 300)
	hidden.Visible = false
	stopped := newCombatant(t, "stopped", types.SpritePlant, 250, 300)
	c, _ := behavior.Get[*behavior.Collision](stopped)
	c.Stop(0)

	result, err := NewBattleManager().Detect([]*sprite.Sprite{zombie, hidden, stopped})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Pairs) != 0 {
		t.Errorf("Hidden or stopped sprites should not collide, got %v", result.Pairs)
	}
	if _, ok := result.States["hidden"]; ok {
		t.Error("Hidden sprite should not receive a state")
	}
}

// TestBattleFirstMatchWins 攻击方只与行内第一个命中的目标配对
func TestBattleFirstMatchWins(t *testing.T) {
	zombie := newCombatant(t, "zombie", types.SpriteZombie, 250, 320)
	first := newCombatant(t, "first", types.SpritePlant, 250, 300)
	second := newCombatant(t, "second", types.SpritePlant, 250, 310)

	result, err := NewBattleManager().Detect([]*sprite.Sprite{zombie, first, second})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Pairs) != 1 || result.Pairs[0].TargetID != "first" {
		t.Errorf("Expected single pair with first, got %v", result.Pairs)
	}
	if result.States["second"] != behavior.NoCollision() {
		t.Errorf("Second plant should not be hit, got %s", result.States["second"])
	}
}

// TestBattleDamageAccumulates 两只僵尸同帧咬同一株植物，伤害累加
func TestBattleDamageAccumulates(t *testing.T) {
	a := newCombatant(t, "a", types.SpriteZombie, 250, 320)
	b := newCombatant(t, "b", types.SpriteZombie, 250, 330)
	b.AttackState.Damage = 25
	plant := newCombatant(t, "plant", types.SpritePlant, 250, 300)

	result, err := NewBattleManager().Detect([]*sprite.Sprite{a, b, plant})
	if err != nil {
		t.Fatal(err)
	}
	if got := result.States["plant"]; got != behavior.TakingDamage(35) {
		t.Errorf("Expected TakingDamage(35), got %s", got)
	}
}

func TestBattleMutedAttacker(t *testing.T) {
	zombie := newCombatant(t, "zombie", types.SpriteZombie, 250, 320)
	zombie.AttackState.Muted = true
	plant := newCombatant(t, "plant", types.SpritePlant, 250, 300)

	result, err := NewBattleManager().Detect([]*sprite.Sprite{zombie, plant})
	if err != nil {
		t.Fatal(err)
	}
	if got := result.States["plant"]; got != behavior.TakingDamage(0) {
		t.Errorf("Expected TakingDamage(0) from muted attacker, got %s", got)
	}
}

// TestBattleTargetRoleWins 同时是攻击方和目标时写入 TakingDamage
func TestBattleTargetRoleWins(t *testing.T) {
	bullet := newCombatant(t, "bullet", types.SpriteBullet, 250, 420)
	zombie := newCombatant(t, "zombie", types.SpriteZombie, 250, 400)
	plant := newCombatant(t, "plant", types.SpritePlant, 250, 380)

	result, err := NewBattleManager().Detect([]*sprite.Sprite{bullet, zombie, plant})
	if err != nil {
		t.Fatal(err)
	}
	if got := result.States["zombie"]; got != behavior.TakingDamage(10) {
		t.Errorf("Expected zombie TakingDamage(10), got %s", got)
	}
	if got := result.States["bullet"]; got != behavior.Attacking() {
		t.Errorf("Expected bullet Attacking, got %s", got)
	}
}

func TestBattleApply(t *testing.T) {
	bm := NewBattleManager()
	bullet := newCombatant(t, "bullet", types.SpriteBullet, 250, 320)
	bullet.AttackState.Damage = 0
	torch := newCombatant(t, "torch", types.SpritePlant, 250, 330)
	torch.AttackState.Damage = 0
	torch.AttackState.Effect = types.AttackEffectFireBullet

	sprites := []*sprite.Sprite{bullet, torch}
	result, err := bm.Detect(sprites)
	if err != nil {
		t.Fatal(err)
	}
	bm.Apply(sprites, result)

	c, err := behavior.Get[*behavior.Collision](torch)
	if err != nil {
		t.Fatal(err)
	}
	if c.State() != behavior.Attacking() {
		t.Errorf("Expected plant Attacking, got %s", c.State())
	}

	// 效果在子弹下一次执行时生效
	c, _ = behavior.Get[*behavior.Collision](bullet)
	if _, err := c.Execute(bullet, sprite.Frame{Now: 16}); err != nil {
		t.Fatal(err)
	}
	h, ok := c.Handler().(*behavior.BulletCollisionHandler)
	if !ok || h.State() != behavior.BulletFire {
		t.Error("Expected fire effect applied to the bullet")
	}
}

func TestBattleBreachTriggersLawnCleaner(t *testing.T) {
	cleaner := newCombatant(t, "cleaner", types.SpriteLawnCleaner, 250, 60)
	zombie := newCombatant(t, "zombie", types.SpriteZombie, 250, 130)
	otherRow := newCombatant(t, "cleaner2", types.SpriteLawnCleaner, 450, 60)

	result, err := NewBattleManager().Detect([]*sprite.Sprite{cleaner, zombie, otherRow})
	if err != nil {
		t.Fatal(err)
	}
	if got := result.States["cleaner"]; got != behavior.Attacking() {
		t.Errorf("Expected breached cleaner Attacking, got %s", got)
	}
	if got := result.States["cleaner2"]; got != behavior.NoCollision() {
		t.Errorf("Expected other row cleaner None, got %s", got)
	}
}
