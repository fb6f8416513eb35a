package game

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/gonewx/pvzsim/pkg/config"
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/systems/behavior"
	"github.com/gonewx/pvzsim/pkg/timers"
	"github.com/gonewx/pvzsim/pkg/types"
)

// SunSpriteName 阳光在资源数据中的名称（种类为 Interface）
const SunSpriteName = "sun"

// SunManager 阳光管理
// 职责：
// - 天空周期性掉落阳光（GenerateSun 开关）
// - 向日葵产出的阳光：先向右上弹出，到时反向回落
// - 点击收集阳光并计分（UpdateSunScore 开关）
type SunManager struct {
	resources *ResourceManager
	sprites   *SpriteManager
	state     *GameState
	timer     *timers.Timer
	rng       *rand.Rand
}

// NewSunManager 创建阳光管理器，seed 决定天空阳光的落点序列
func NewSunManager(rm *ResourceManager, sm *SpriteManager, gs *GameState, seed uint64) *SunManager {
	return &SunManager{
		resources: rm,
		sprites:   sm,
		state:     gs,
		timer:     timers.NewTimer(config.SunGenerateInterval),
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Update 天空阳光计时，每帧调用
func (m *SunManager) Update(now float64) error {
	if !m.state.Features.GenerateSun {
		if m.timer.IsRunning() {
			m.timer.Stop(now)
		}
		return nil
	}
	if !m.timer.IsRunning() {
		m.timer.Start(now)
		return nil
	}
	if !m.timer.Expired(now) {
		return nil
	}
	m.timer.Reset(now)
	_, err := m.SpawnSkySun(now)
	return err
}

// SpawnSkySun 在随机的可种植列上方生成一个下落到随机行的阳光
func (m *SunManager) SpawnSkySun(now float64) (*sprite.Sprite, error) {
	col := config.ActiveBoardFirstCol + 1 + m.rng.IntN(config.ActiveBoardLastCol-config.ActiveBoardFirstCol)
	row := config.ActiveBoardFirstRow + 1 + m.rng.IntN(config.ActiveBoardLastRow-config.ActiveBoardFirstRow)

	left := config.ColXCoords[col-1]
	start := types.NewPosition(0, left)
	sun, err := m.resources.CreateSprite(SunSpriteName, types.SpriteInterface, start, now)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn sky sun: %w", err)
	}

	walk, err := behavior.Get[*behavior.Walk](sun)
	if err != nil {
		return nil, err
	}
	walk.SetVelocity(types.Velocity{Y: config.SunFallVelocityY})
	walk.SetMaxDistance(config.RowYCoords[row-1])
	walk.Start(now)

	m.sprites.Add(sun)
	log.Printf("[SunManager] Sky sun %s falling to row %d, col %d", sun.ID, row, col)
	return sun, nil
}

// Produce 在向日葵位置产出一个阳光
func (m *SunManager) Produce(now float64, source *sprite.Sprite) error {
	sun, err := m.resources.CreateSprite(SunSpriteName, types.SpriteInterface, source.Position, now)
	if err != nil {
		return fmt.Errorf("failed to produce sun: %w", err)
	}

	walk, err := behavior.Get[*behavior.Walk](sun)
	if err != nil {
		return err
	}
	walk.SetVelocity(types.Velocity{X: config.SunflowerSunVelocityX, Y: config.SunflowerSunVelocityY})
	walk.Start(now)

	if interval, err := behavior.Get[*behavior.Interval](sun); err == nil {
		interval.Start(now)
	}
	if animate, err := behavior.Get[*behavior.Animate](sun); err == nil {
		animate.SetMaxCycles(config.SunflowerSunMaxCycles)
		animate.Start(now)
	}

	m.sprites.Add(sun)
	return nil
}

// Reverse 弹出的阳光转为回落，只反向一次
func (m *SunManager) Reverse(now float64, sun *sprite.Sprite) error {
	walk, err := behavior.Get[*behavior.Walk](sun)
	if err != nil {
		return err
	}
	walk.SetVelocity(types.Velocity{Y: config.SunFallVelocityY})

	if interval, err := behavior.Get[*behavior.Interval](sun); err == nil {
		interval.Stop(now)
	}
	return nil
}

// Collect 收集阳光：计分并隐藏
func (m *SunManager) Collect(now float64, sun *sprite.Sprite) error {
	if !sun.Visible {
		return nil
	}
	if m.state.AddSun(config.SunValue) {
		log.Printf("[SunManager] Collected %s, score %d", sun.ID, m.state.Sun.Score)
	}
	behavior.ToggleSpriteBehaviors(sun, []types.BehaviorType{types.BehaviorWalk, types.BehaviorInterval}, false, now)
	return sun.ApplyMutation(sprite.NewMutation().Hide(true), now)
}
