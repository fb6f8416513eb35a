package sprite

import (
	"errors"
	"fmt"

	"github.com/gonewx/pvzsim/pkg/types"
)

// ErrCellOutOfRange 当前视觉帧索引超出帧集合（通常是资源数据中换装帧集合尺寸不匹配）
var ErrCellOutOfRange = errors.New("sprite cell out of range")

// NoSwap 表示使用默认帧集合
const NoSwap = -1

// DrawingState 渲染器绘制实体所需的全部视觉状态
type DrawingState struct {
	Cells      []types.SpriteCell   // 默认帧集合
	SwapCells  [][]types.SpriteCell // 换装帧集合（护甲/受损/阶段变体）
	SwapIndex  int                  // 当前换装集合索引，NoSwap 表示使用默认集合
	ActiveCell int                  // 当前帧索引
	Scale      float64
	Offset     types.Position // 图像裁剪偏移（滚动背景等局部显示）
	Alpha      float64        // 0..1
}

// NewDrawingState 创建默认视觉状态（alpha=1，未换装）
func NewDrawingState(cells []types.SpriteCell, swapCells [][]types.SpriteCell, scale float64, offset types.Position) DrawingState {
	if scale == 0 {
		scale = 1
	}
	return DrawingState{
		Cells:     cells,
		SwapCells: swapCells,
		SwapIndex: NoSwap,
		Scale:     scale,
		Offset:    offset,
		Alpha:     1,
	}
}

// CurrentCells 返回当前生效的帧集合
func (d *DrawingState) CurrentCells() []types.SpriteCell {
	if d.SwapIndex >= 0 && d.SwapIndex < len(d.SwapCells) {
		return d.SwapCells[d.SwapIndex]
	}
	return d.Cells
}

// Active 返回当前帧
// 索引越界不会被夹取，而是返回 ErrCellOutOfRange
func (d *DrawingState) Active() (types.SpriteCell, error) {
	if d.SwapIndex >= len(d.SwapCells) {
		return types.SpriteCell{}, fmt.Errorf("%w: swap set %d of %d", ErrCellOutOfRange, d.SwapIndex, len(d.SwapCells))
	}
	cells := d.CurrentCells()
	if d.ActiveCell < 0 || d.ActiveCell >= len(cells) {
		return types.SpriteCell{}, fmt.Errorf("%w: cell %d of %d (swap %d)", ErrCellOutOfRange, d.ActiveCell, len(cells), d.SwapIndex)
	}
	return cells[d.ActiveCell], nil
}

// Swap 切换到指定换装集合，集合改变时帧索引归零
func (d *DrawingState) Swap(index int) error {
	if index < 0 {
		d.ResetSwap()
		return nil
	}
	if index >= len(d.SwapCells) {
		return fmt.Errorf("%w: swap set %d of %d", ErrCellOutOfRange, index, len(d.SwapCells))
	}
	if d.SwapIndex != index {
		d.ActiveCell = 0
		d.SwapIndex = index
	}
	return nil
}

// ResetSwap 回到默认帧集合
func (d *DrawingState) ResetSwap() {
	if d.SwapIndex != NoSwap {
		d.ActiveCell = 0
		d.SwapIndex = NoSwap
	}
}

// Hover 悬停时显示第 1 帧，否则第 0 帧
func (d *DrawingState) Hover(hovered bool) {
	if hovered {
		d.ActiveCell = 1
	} else {
		d.ActiveCell = 0
	}
}

// CycleCells 前进到下一帧，最后一帧之后回到第 0 帧
func (d *DrawingState) CycleCells() {
	if d.ActiveCell < len(d.CurrentCells())-1 {
		d.ActiveCell++
	} else {
		d.ActiveCell = 0
	}
}

// InLastCell 是否处于当前帧集合的最后一帧
func (d *DrawingState) InLastCell() bool {
	return d.ActiveCell == len(d.CurrentCells())-1
}
