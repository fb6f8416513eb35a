// Package utils 提供通用工具函数
package utils

import (
	"github.com/gonewx/pvzsim/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的指针状态
// 统一鼠标和触摸输入，核心层只消费这里的离散事件和位置
type PointerState struct {
	Position     types.Position // 指针位置（渲染坐标）
	Pressed      bool           // 是否按住
	JustPressed  bool           // 本帧刚按下
	JustReleased bool           // 本帧刚释放
	Moved        bool           // 位置相对上一帧发生变化
}

// PointerTracker 跟踪帧间的指针状态
// 触摸释放时 ebiten 已无法给出位置，因此保留最后一次位置
type PointerTracker struct {
	last    types.Position
	pressed bool
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Update 从 ebiten 读取本帧输入并返回指针状态（每帧调用一次）
// 优先检测触摸，其次鼠标
func (p *PointerTracker) Update() PointerState {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return p.Step(true, x, y)
	}

	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return p.Step(false, int(p.last.Left), int(p.last.Top))
	}

	x, y := ebiten.CursorPosition()
	return p.Step(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y)
}

// Step 根据本帧的原始输入推进跟踪状态
func (p *PointerTracker) Step(pressed bool, x, y int) PointerState {
	pos := types.NewPosition(float64(y), float64(x))
	state := PointerState{
		Position:     pos,
		Pressed:      pressed,
		JustPressed:  pressed && !p.pressed,
		JustReleased: !pressed && p.pressed,
		Moved:        pos != p.last,
	}

	p.last = pos
	p.pressed = pressed
	return state
}

// LastPosition 返回最后一次记录的指针位置
func (p *PointerTracker) LastPosition() types.Position {
	return p.last
}
