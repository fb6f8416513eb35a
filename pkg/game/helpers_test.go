package game

import (
	"testing"
	"testing/fstest"

	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

const battleYAML = `sprites:
  - name: background
    kind: interface
    cells:
      - {width: 1400, height: 600}
    positions:
      - {top: 0, left: 0}
    behaviors:
      - {name: scroll, distance: 100, rate: 1000, callback: StartBattle, start: true}
  - name: zombie
    kind: zombie
    order: 3
    life: 200
    damage: 10
    cells:
      - {width: 80, height: 90}
    swap_cells:
      - [{width: 80, height: 90}]
      - [{width: 80, height: 90}]
      - [{width: 80, height: 90}]
      - [{width: 80, height: 90}]
      - [{width: 80, height: 90}]
    board:
      - {row: 2, col: 9}
    behaviors:
      - name: walk
        velocity: {x: -20}
      - name: collision
  - name: peashooter
    kind: plant
    order: 2
    cost: 100
    life: 100
    cells:
      - {width: 60, height: 70}
    board:
      - {row: 2, col: 3}
    behaviors:
      - {name: interval, interval: 1500, callback: ShootBullet, start: true}
      - {name: collision, start: true}
  - name: peashooter
    kind: seed
    order: 5
    cells:
      - {width: 50, height: 70}
    positions:
      - {top: 10, left: 100}
    behaviors:
      - {name: drag, callback: Plant}
  - name: pea
    kind: bullet
    order: 4
    damage: 20
    cells:
      - {width: 28, height: 28}
    swap_cells:
      - [{width: 28, height: 28}]
      - [{width: 28, height: 28}]
    behaviors:
      - name: walk
        velocity: {x: 300}
        start: true
      - {name: collision, start: true}
  - name: sun
    kind: interface
    order: 6
    cells:
      - {width: 80, height: 80}
    behaviors:
      - {name: click, callback: SunClick}
      - {name: walk}
      - {name: interval, interval: 1000, callback: ReverseSun}
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"sprites/battle.yaml": {Data: []byte(battleYAML)},
	}
}

func newTestResources(t *testing.T) *ResourceManager {
	t.Helper()
	rm := NewResourceManager(testFS())
	if err := rm.Load(); err != nil {
		t.Fatalf("Failed to load resources: %v", err)
	}
	return rm
}

func newTestScene(t *testing.T) *BattleScene {
	t.Helper()
	engine := NewEngine(NewSpriteManager(), NewGameState(nil))
	scene := NewBattleScene(engine, newTestResources(t), 1)
	if err := scene.Populate(0); err != nil {
		t.Fatalf("Failed to populate scene: %v", err)
	}
	return scene
}

func mustGet(t *testing.T, sm *SpriteManager, name string, kind types.SpriteType) *sprite.Sprite {
	t.Helper()
	s, err := sm.GetByNameAndType(name, kind)
	if err != nil {
		t.Fatalf("Missing %s %s: %v", kind, name, err)
	}
	return s
}
