package utils

import (
	"github.com/gonewx/pvzsim/pkg/config"
	"github.com/gonewx/pvzsim/pkg/types"
)

// GetBoardLocation 将渲染坐标转换为草坪行列
// 行列取第一个"下/右边界 >= 坐标"的索引，超出坐标表时回落为 0
func GetBoardLocation(pos types.Position) types.BoardLocation {
	row := 0
	for i, y := range config.RowYCoords {
		if pos.Top <= y {
			row = i
			break
		}
	}

	col := 0
	for i, x := range config.ColXCoords {
		if pos.Left <= x {
			col = i
			break
		}
	}

	return types.BoardLocation{Row: row, Col: col}
}

// GetCellDimensions 返回草坪格子的矩形（Top/Left 为左上角）
// 参数:
//   - row: 行索引（0 - len(RowYCoords)-1）
//   - col: 列索引（0 - len(ColXCoords)-1）
//
// 返回:
//   - 格子矩形，越界索引会被夹到坐标表范围内
func GetCellDimensions(row, col int) types.SpriteCell {
	row = clampIndex(row, len(config.RowYCoords))
	col = clampIndex(col, len(config.ColXCoords))

	right := config.ColXCoords[col]
	left := 0.0
	if col > 0 {
		left = config.ColXCoords[col-1]
	}

	bottom := config.RowYCoords[row]
	top := 0.0
	if row > 0 {
		top = config.RowYCoords[row-1]
	}

	return types.SpriteCell{
		Top:    top,
		Left:   left,
		Width:  right - left,
		Height: bottom - top,
	}
}

// GetBoardPlacement 计算把一个视觉帧放到指定格子时的位置
// 水平居中，底边贴住格子底部（略微上移）
func GetBoardPlacement(cell types.SpriteCell, row, col int) types.Position {
	dim := GetCellDimensions(row, col)
	centerX := dim.Left + (dim.Width-cell.Width)/2
	bottom := dim.Top - (cell.Height - dim.Height) - config.BoardPlacementBottomPadding
	return types.NewPosition(bottom, centerX)
}

// IsActiveBoardLocation 判断位置是否落在可种植区域
func IsActiveBoardLocation(pos types.Position) bool {
	loc := GetBoardLocation(pos)
	return loc.Col > config.ActiveBoardFirstCol && loc.Col <= config.ActiveBoardLastCol &&
		loc.Row > config.ActiveBoardFirstRow && loc.Row <= config.ActiveBoardLastRow
}

// IsOutOfBoard 判断一个尺寸为 size 的实体放在 pos 时是否完全离开画布
func IsOutOfBoard(size types.Size, pos types.Position) bool {
	return pos.Top+size.Height < 0 ||
		pos.Left+size.Width < 0 ||
		pos.Left > config.CanvasWidth ||
		pos.Top > config.CanvasHeight
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
