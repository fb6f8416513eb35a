package game

import (
	"errors"
	"testing"

	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

func newManagedSprite(t *testing.T, id, name string, kind types.SpriteType, order int) *sprite.Sprite {
	t.Helper()
	s, err := sprite.New(sprite.Config{
		ID:       id,
		Name:     name,
		Type:     kind,
		Order:    order,
		Position: types.NewPosition(100, 100),
		Cells:    []types.SpriteCell{{Width: 10, Height: 10}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSpriteManagerOrder(t *testing.T) {
	sm := NewSpriteManager()
	sm.AddAll([]*sprite.Sprite{
		newManagedSprite(t, "a", "a", types.SpritePlant, 2),
		newManagedSprite(t, "b", "b", types.SpritePlant, 0),
		newManagedSprite(t, "c", "c", types.SpritePlant, 2),
	})
	sm.Add(newManagedSprite(t, "d", "d", types.SpritePlant, 1))

	var ids []string
	for _, s := range sm.All() {
		ids = append(ids, s.ID)
	}
	expected := []string{"b", "d", "a", "c"}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Fatalf("Expected order %v, got %v", expected, ids)
		}
	}
}

func TestSpriteManagerLookups(t *testing.T) {
	sm := NewSpriteManager()
	sm.AddAll([]*sprite.Sprite{
		newManagedSprite(t, "zombie_1", "zombie", types.SpriteZombie, 1),
		newManagedSprite(t, "zombie_2", "zombie", types.SpriteZombie, 1),
		newManagedSprite(t, "plant_1", "peashooter", types.SpritePlant, 1),
	})

	s, err := sm.GetByID("plant_1")
	if err != nil || s.Name != "peashooter" {
		t.Errorf("GetByID failed: %v", err)
	}
	if _, err := sm.GetByID("missing"); !errors.Is(err, ErrSpriteNotFound) {
		t.Errorf("Expected ErrSpriteNotFound, got %v", err)
	}

	s, err = sm.GetByNameAndType("zombie", types.SpriteZombie)
	if err != nil || s.ID != "zombie_1" {
		t.Errorf("Expected first zombie, got %v (%v)", s, err)
	}
	if _, err := sm.GetByNameAndType("zombie", types.SpritePlant); !errors.Is(err, ErrSpriteNotFound) {
		t.Errorf("Expected ErrSpriteNotFound for wrong kind, got %v", err)
	}

	if got := len(sm.GetByType(types.SpriteZombie)); got != 2 {
		t.Errorf("Expected 2 zombies, got %d", got)
	}
}

func TestSpriteManagerRemoval(t *testing.T) {
	sm := NewSpriteManager()
	hidden := newManagedSprite(t, "hidden", "x", types.SpriteBullet, 0)
	hidden.Visible = false
	sm.AddAll([]*sprite.Sprite{
		newManagedSprite(t, "a", "x", types.SpriteBullet, 0),
		newManagedSprite(t, "b", "x", types.SpriteBullet, 0),
		hidden,
	})

	if n := sm.RemoveInvisible(); n != 1 {
		t.Errorf("Expected 1 invisible removed, got %d", n)
	}
	if n := sm.RemoveByIDs("a", "missing"); n != 1 {
		t.Errorf("Expected 1 removed by id, got %d", n)
	}
	if sm.Len() != 1 || sm.All()[0].ID != "b" {
		t.Errorf("Expected only b to remain, got %d sprites", sm.Len())
	}
}
