package config

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/gonewx/pvzsim/pkg/types"
)

const zombieYAML = `sprites:
  - name: Zombie
    kind: zombie
    order: 3
    life: 200
    damage: 10
    positions:
      - {top: 300, left: 1100}
    cells:
      - {top: 0, left: 0, width: 80, height: 120}
      - {top: 0, left: 80, width: 80, height: 120}
    swap_cells:
      - [{top: 120, left: 0, width: 80, height: 120}]
    behaviors:
      - name: walk
        velocity: {x: -20, y: 0}
        start: true
      - name: animate
        rate: 100
        max_cycles: 0
      - name: collision
        margin: {left: 30}
`

// TestLoadResourceConfig 测试资源文件加载
func TestLoadResourceConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"sprites/zombies.yaml": {Data: []byte(zombieYAML)},
	}

	rc, err := LoadResourceConfig(fsys, "sprites/zombies.yaml")
	if err != nil {
		t.Fatalf("Failed to load resource config: %v", err)
	}

	if len(rc.Sprites) != 1 {
		t.Fatalf("Expected 1 sprite, got %d", len(rc.Sprites))
	}

	s := rc.Sprites[0]
	if kind, err := s.Type(); err != nil || kind != types.SpriteZombie {
		t.Errorf("Expected zombie kind, got %v (err %v)", kind, err)
	}
	if s.Scale != 1 {
		t.Errorf("Expected default scale 1, got %f", s.Scale)
	}
	if len(s.SwapCells) != 1 || len(s.SwapCells[0]) != 1 {
		t.Errorf("Expected one swap set with one cell, got %v", s.SwapCells)
	}
	if len(s.Behaviors) != 3 {
		t.Fatalf("Expected 3 behaviors, got %d", len(s.Behaviors))
	}

	animate := s.Behaviors[1]
	if animate.MaxCycles == nil || *animate.MaxCycles != 0 {
		t.Errorf("Expected explicit max_cycles 0, got %v", animate.MaxCycles)
	}
	if animate.CallbackDelay != nil {
		t.Errorf("Expected nil callback_delay, got %v", *animate.CallbackDelay)
	}
	if s.Behaviors[2].Margin.Left != 30 {
		t.Errorf("Expected collision margin left 30, got %f", s.Behaviors[2].Margin.Left)
	}
	if !s.Behaviors[0].Start {
		t.Error("Expected walk behavior to start on creation")
	}

	if _, ok := rc.Find("Zombie", types.SpriteZombie); !ok {
		t.Error("Expected to find Zombie by name and kind")
	}
	if _, ok := rc.Find("Zombie", types.SpritePlant); ok {
		t.Error("Did not expect to find Zombie as a plant")
	}
}

func TestLoadResourceConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "unknown kind",
			yaml: `sprites:
  - name: Tree
    kind: tree
    cells: [{width: 1, height: 1}]
`,
			wantErr: ErrUnknownSpriteType,
		},
		{
			name: "unknown behavior",
			yaml: `sprites:
  - name: Peashooter
    kind: plant
    cells: [{width: 1, height: 1}]
    behaviors:
      - name: fly
`,
			wantErr: ErrUnknownBehavior,
		},
		{
			name: "unknown effect",
			yaml: `sprites:
  - name: Torchwood
    kind: plant
    effect: ice_bullet
    cells: [{width: 1, height: 1}]
`,
			wantErr: ErrUnknownEffect,
		},
		{
			name: "collision on seed",
			yaml: `sprites:
  - name: Peashooter
    kind: seed
    cells: [{width: 50, height: 70}, {width: 50, height: 70}]
    behaviors:
      - {name: collision, start: true}
`,
			wantErr: ErrUnsupportedBehavior,
		},
		{
			name: "hover with one cell",
			yaml: `sprites:
  - name: Button
    kind: interface
    cells: [{width: 20, height: 20}]
    behaviors:
      - name: hover
`,
			wantErr: ErrUnsupportedBehavior,
		},
		{
			name: "hover with one-cell swap set",
			yaml: `sprites:
  - name: Button
    kind: interface
    cells: [{width: 20, height: 20}, {width: 20, height: 20}]
    swap_cells:
      - [{width: 20, height: 20}]
    behaviors:
      - name: hover
`,
			wantErr: ErrUnsupportedBehavior,
		},
		{
			name: "duplicate through kind alias",
			yaml: `sprites:
  - name: Cleaner
    kind: lawn_cleaner
    cells: [{width: 70, height: 60}]
  - name: Cleaner
    kind: lawncleaner
    cells: [{width: 70, height: 60}]
`,
		},
		{
			name: "missing cells",
			yaml: `sprites:
  - name: Peashooter
    kind: plant
`,
		},
		{
			name:    "malformed yaml",
			yaml:    "sprites: [",
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"r.yaml": {Data: []byte(tt.yaml)}}
			_, err := LoadResourceConfig(fsys, "r.yaml")
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestLoadResourceDir 目录下的所有资源文件会被合并
func TestLoadResourceDir(t *testing.T) {
	fsys := fstest.MapFS{
		"sprites/zombies.yaml": {Data: []byte(zombieYAML)},
		"sprites/plants.yaml": {Data: []byte(`sprites:
  - name: Peashooter
    kind: plant
    cells: [{width: 71, height: 71}]
`)},
		"sprites/readme.txt": {Data: []byte("ignored")},
	}

	rc, err := LoadResourceDir(fsys, "sprites")
	if err != nil {
		t.Fatalf("Failed to load resource dir: %v", err)
	}
	if len(rc.Sprites) != 2 {
		t.Errorf("Expected 2 sprites, got %d", len(rc.Sprites))
	}
}

// TestLoadResourceDirDuplicateAcrossFiles 不同文件中的重复声明同样报错
func TestLoadResourceDirDuplicateAcrossFiles(t *testing.T) {
	plant := `sprites:
  - name: Peashooter
    kind: plant
    cells: [{width: 71, height: 71}]
`
	fsys := fstest.MapFS{
		"sprites/a.yaml": {Data: []byte(plant)},
		"sprites/b.yaml": {Data: []byte(plant)},
	}

	if _, err := LoadResourceDir(fsys, "sprites"); err == nil {
		t.Fatal("Expected duplicate declaration error, got nil")
	}
}

// TestValidateAcceptsCollidableKinds 可碰撞种类以及两帧悬停都能通过验证
func TestValidateAcceptsCollidableKinds(t *testing.T) {
	for _, kind := range []string{"zombie", "plant", "bullet", "interface", "lawn_cleaner"} {
		rc := ResourceConfig{Sprites: []SpriteData{{
			Name:      "Unit",
			Kind:      kind,
			Cells:     []types.SpriteCell{{Width: 10, Height: 10}, {Width: 10, Height: 10}},
			Behaviors: []BehaviorData{{Name: "collision"}, {Name: "hover"}},
		}}}
		if err := rc.Validate(); err != nil {
			t.Errorf("kind %s: unexpected error %v", kind, err)
		}
	}
}
