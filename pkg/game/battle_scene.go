package game

import (
	"fmt"
	"log"

	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/systems/behavior"
	"github.com/gonewx/pvzsim/pkg/types"
	"github.com/gonewx/pvzsim/pkg/utils"
)

// BulletSpriteName 豌豆射手发射的子弹在资源数据中的名称
const BulletSpriteName = "pea"

// battleBehaviors 战斗开始时在僵尸上启动的行为
var battleBehaviors = []types.BehaviorType{types.BehaviorWalk, types.BehaviorAnimate, types.BehaviorCollision}

// BattleScene 演示战斗场景
// 把资源数据铺成一局战斗，并把交互事件接到具体的游戏规则上：
// 开战、射击、种植、阳光、僵尸死亡、除草车
type BattleScene struct {
	Engine     *Engine
	Dispatcher *Dispatcher
	Sun        *SunManager

	resources *ResourceManager
	started   bool
	kills     int
	cleaners  int
}

// NewBattleScene 创建场景并注册交互处理函数
func NewBattleScene(engine *Engine, rm *ResourceManager, seed uint64) *BattleScene {
	s := &BattleScene{
		Engine:     engine,
		Dispatcher: NewDispatcher(engine.Sprites),
		Sun:        NewSunManager(rm, engine.Sprites, engine.State, seed),
		resources:  rm,
	}

	d := s.Dispatcher
	d.Handle(types.CallbackStartBattle, s.onStartBattle)
	d.Handle(types.CallbackShootBullet, s.onShootBullet)
	d.Handle(types.CallbackPlant, s.onPlant)
	d.Handle(types.CallbackZombieDeath, s.onZombieDeath)
	d.Handle(types.CallbackLawnCleanerLost, s.onLawnCleanerLost)
	d.Handle(types.CallbackProduceSun, s.Sun.Produce)
	d.Handle(types.CallbackSunClick, s.Sun.Collect)
	d.Handle(types.CallbackReverseSun, s.Sun.Reverse)
	return s
}

// Populate 创建资源数据中声明的全部实体
func (s *BattleScene) Populate(now float64) error {
	sprites, err := s.resources.CreateAll(now)
	if err != nil {
		return err
	}
	s.Engine.Sprites.AddAll(sprites)
	log.Printf("[BattleScene] Populated %d sprites", len(sprites))
	return nil
}

// Reload 重新加载资源并重建场景
func (s *BattleScene) Reload() error {
	if err := s.resources.Reload(); err != nil {
		return err
	}
	s.Engine.Sprites.Clear()
	s.started = false
	if err := s.Populate(s.Engine.Now()); err != nil {
		return err
	}
	s.Engine.Resume()
	return nil
}

// Update 推进一帧并分发交互事件
func (s *BattleScene) Update(deltaMs float64) error {
	interactions, err := s.Engine.Update(deltaMs)
	if err != nil {
		return err
	}
	now := s.Engine.Now()
	if err := s.Dispatcher.Dispatch(now, interactions); err != nil {
		return err
	}
	return s.Sun.Update(now)
}

// Started 战斗是否已开始
func (s *BattleScene) Started() bool {
	return s.started
}

// Kills 返回消灭的僵尸数
func (s *BattleScene) Kills() int {
	return s.kills
}

func (s *BattleScene) onStartBattle(now float64, source *sprite.Sprite) error {
	if s.started {
		return nil
	}
	s.started = true
	zombies := s.Engine.Sprites.GetByType(types.SpriteZombie)
	behavior.ToggleBehaviors(zombies, battleBehaviors, true, now)
	log.Printf("[BattleScene] Battle started with %d zombies", len(zombies))
	return nil
}

// onShootBullet 所在行的右侧有存活僵尸时才发射
func (s *BattleScene) onShootBullet(now float64, source *sprite.Sprite) error {
	if !source.Visible || !s.zombieAhead(source) {
		return nil
	}

	cell, err := source.ActiveCell()
	if err != nil {
		return err
	}
	scale := source.DrawingState.Scale
	pos := types.NewPosition(source.Position.Top+cell.Height*scale*0.2, source.Position.Left+cell.Width*scale*0.6)

	bullet, err := s.resources.CreateSprite(BulletSpriteName, types.SpriteBullet, pos, now)
	if err != nil {
		return fmt.Errorf("failed to shoot: %w", err)
	}
	s.Engine.Sprites.Add(bullet)
	return nil
}

func (s *BattleScene) zombieAhead(shooter *sprite.Sprite) bool {
	for _, z := range s.Engine.Sprites.GetByType(types.SpriteZombie) {
		if z.Visible && !z.AttackState.IsDead() &&
			z.BoardLocation.Row == shooter.BoardLocation.Row &&
			z.Position.Left > shooter.Position.Left {
			return true
		}
	}
	return false
}

// onPlant 种子被拖放到草坪上：阳光足够且格子空闲时种下同名植物，种子总是回到原位
func (s *BattleScene) onPlant(now float64, seed *sprite.Sprite) error {
	defer func() {
		if err := seed.ResetPosition(); err != nil {
			log.Printf("[BattleScene] Failed to reset seed %s: %v", seed.ID, err)
		}
	}()

	if !utils.IsActiveBoardLocation(seed.Position) {
		return nil
	}
	loc := utils.GetBoardLocation(seed.Position)
	for _, p := range s.Engine.Sprites.GetByType(types.SpritePlant) {
		if p.Visible && p.BoardLocation == loc {
			log.Printf("[BattleScene] Cell %+v is occupied by %s", loc, p.ID)
			return nil
		}
	}

	data, ok := s.resources.Config().Find(seed.Name, types.SpritePlant)
	if !ok {
		return fmt.Errorf("%w: no plant declared for seed %s", ErrSpriteNotFound, seed.Name)
	}
	if !s.Engine.State.SpendSun(data.Cost) {
		log.Printf("[BattleScene] Not enough sun for %s (%d < %d)", seed.Name, s.Engine.State.Sun.Score, data.Cost)
		return nil
	}

	pos := utils.GetBoardPlacement(data.Cells[0], loc.Row, loc.Col)
	plant, err := s.resources.CreateSprite(seed.Name, types.SpritePlant, pos, now)
	if err != nil {
		return err
	}
	s.Engine.Sprites.Add(plant)
	log.Printf("[BattleScene] Planted %s at %+v", plant.ID, loc)
	return nil
}

func (s *BattleScene) onZombieDeath(now float64, source *sprite.Sprite) error {
	s.kills++
	log.Printf("[BattleScene] Zombie %s died (%d killed)", source.ID, s.kills)
	return nil
}

func (s *BattleScene) onLawnCleanerLost(now float64, source *sprite.Sprite) error {
	s.cleaners++
	log.Printf("[BattleScene] Lawn cleaner %s used in row %d (%d used)", source.ID, source.BoardLocation.Row, s.cleaners)
	return nil
}
