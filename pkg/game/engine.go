package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/pvzsim/pkg/config"
	"github.com/gonewx/pvzsim/pkg/outline"
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/systems"
	"github.com/gonewx/pvzsim/pkg/systems/behavior"
	"github.com/gonewx/pvzsim/pkg/timers"
	"github.com/gonewx/pvzsim/pkg/types"
)

// ErrEngineHalted 某一帧出现致命错误后，引擎拒绝继续执行
var ErrEngineHalted = errors.New("engine halted")

// pointerBehaviors 按下指针时启动的行为
var pointerBehaviors = []types.BehaviorType{types.BehaviorClick, types.BehaviorDrag}

// Engine 模拟的逐帧驱动
//
// 每一帧依次执行：
//  1. 战斗管理器检测碰撞，并把反应值写入各实体的碰撞行为
//  2. 所有实体的运行中行为基于同一个快照计算变更
//  3. 校验全部变更，任何一个非法则整帧不应用
//  4. 应用变更
//  5. 收集交互事件
//  6. 周期性清理不可见实体
//
// 行为在计算变更时会推进自身的内部进度，所以失败的一帧无法回滚；
// 出错后引擎停机，之后的每一帧都返回同一个错误，直到 Resume
type Engine struct {
	Sprites *SpriteManager
	State   *GameState

	battle  *systems.BattleManager
	painter outline.Painter
	clock   *timers.GameTime
	sweep   *timers.Timer
	pointer types.Position
	halted  error
}

// NewEngine 创建引擎
func NewEngine(sprites *SpriteManager, state *GameState) *Engine {
	sweep := timers.NewTimer(config.InvisibleSweepInterval)
	sweep.Start(0)
	return &Engine{
		Sprites: sprites,
		State:   state,
		battle:  systems.NewBattleManager(),
		painter: outline.NewVectorPainter(),
		clock:   timers.NewGameTime(),
		sweep:   sweep,
	}
}

// Now 返回当前模拟时间（毫秒）
func (e *Engine) Now() float64 {
	return e.clock.Time
}

// Update 推进时钟 deltaMs 毫秒并执行一帧
func (e *Engine) Update(deltaMs float64) ([]types.Interaction, error) {
	if e.halted != nil {
		return nil, e.halted
	}
	now := e.clock.Advance(deltaMs)
	return e.Tick(now, e.clock.LastTimestamp)
}

// Tick 以 [last, now] 为一帧执行模拟
// 返回本帧产生的交互事件；出错时本帧不应用任何变更，并且引擎停机
func (e *Engine) Tick(now, last float64) ([]types.Interaction, error) {
	if e.halted != nil {
		return nil, e.halted
	}
	interactions, err := e.tick(now, last)
	if err != nil {
		e.halted = fmt.Errorf("%w at %.0fms: %w", ErrEngineHalted, now, err)
		log.Printf("[Engine] Halted: %v", err)
		return nil, e.halted
	}
	return interactions, nil
}

// Halted 返回使引擎停机的错误，正常运行时为 nil
func (e *Engine) Halted() error {
	return e.halted
}

// Resume 清除停机状态
// 只应在实体集合被整体重建之后调用（例如重新加载资源）
func (e *Engine) Resume() {
	e.halted = nil
}

func (e *Engine) tick(now, last float64) ([]types.Interaction, error) {
	all := e.Sprites.All()

	result, err := e.battle.Detect(all)
	if err != nil {
		return nil, fmt.Errorf("collision detection: %w", err)
	}
	e.battle.Apply(all, result)

	frame := sprite.Frame{Now: now, LastTick: last, Pointer: e.pointer, Painter: e.painter}
	pending := make([][]*sprite.Mutation, len(all))
	for i, s := range all {
		ms, err := behavior.Run(s, frame)
		if err != nil {
			return nil, err
		}
		pending[i] = ms
	}

	for i, s := range all {
		if err := s.ValidateMutations(pending[i]); err != nil {
			return nil, err
		}
	}

	var interactions []types.Interaction
	for i, s := range all {
		if err := s.ApplyMutations(pending[i], now); err != nil {
			return nil, err
		}
		interactions = append(interactions, behavior.CollectInteractions(s)...)
	}

	if e.sweep.Expired(now) {
		if n := e.Sprites.RemoveInvisible(); n > 0 {
			log.Printf("[Engine] Removed %d invisible sprites", n)
		}
		e.sweep.Reset(now)
	}
	return interactions, nil
}

// PointerDown 指针按下：启动所有实体的点击和拖拽检测
func (e *Engine) PointerDown(pos types.Position) {
	e.pointer = pos
	behavior.ToggleBehaviors(e.Sprites.All(), pointerBehaviors, true, e.Now())
}

// PointerUp 指针释放：停止拖拽（正在拖拽的实体会排队拖拽结束回调）
// 释放时产生的交互在下一帧随其他交互一起交付
func (e *Engine) PointerUp(pos types.Position) {
	e.pointer = pos
	behavior.ToggleBehaviors(e.Sprites.All(), []types.BehaviorType{types.BehaviorDrag}, false, e.Now())
}

// PointerMove 指针移动：更新位置并启动悬停检测
func (e *Engine) PointerMove(pos types.Position) {
	e.pointer = pos
	behavior.ToggleBehaviors(e.Sprites.All(), []types.BehaviorType{types.BehaviorHover}, true, e.Now())
}

// Pointer 返回最后一次记录的指针位置
func (e *Engine) Pointer() types.Position {
	return e.pointer
}
