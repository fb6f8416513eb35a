package config

// 布局配置常量
// 本文件定义了画布尺寸与草坪网格的坐标表
// 所有坐标使用渲染坐标系（相对于画布左上角）

// Canvas Configuration (画布配置)
const (
	// CanvasWidth 画布逻辑宽度（像素）
	CanvasWidth = 1400

	// CanvasHeight 画布逻辑高度（像素）
	CanvasHeight = 600
)

// RowYCoords 每一行的下边界 Y 坐标
// 第 0 行是草坪上方的界面区域，第 1-5 行是可种植的草坪行
var RowYCoords = [...]float64{75.0, 175.0, 275.0, 380.0, 475.0, 575.0}

// ColXCoords 每一列的右边界 X 坐标
// 第 0-1 列是房屋和除草车区域，第 2-9 列是可种植的草坪列，其余为僵尸入场区
var ColXCoords = [...]float64{
	100.0, 140.0, 220.0, 295.0, 379.0, 460.0, 540.0, 625.0, 695.0, 775.0, 855.0, 935.0, 1015.0,
	1095.0, 1175.0, 1255.0, 1335.0,
}

// Active Board Configuration (可种植区域)
const (
	// ActiveBoardFirstCol 可种植区域的第一列（不含）
	ActiveBoardFirstCol = 1

	// ActiveBoardLastCol 可种植区域的最后一列（含）
	ActiveBoardLastCol = 9

	// ActiveBoardFirstRow 可种植区域的第一行（不含）
	ActiveBoardFirstRow = 0

	// ActiveBoardLastRow 可种植区域的最后一行（含）
	ActiveBoardLastRow = 5

	// BoardPlacementBottomPadding 放置到格子时距离格子底边的微调量（像素）
	BoardPlacementBottomPadding = 3.5
)

// HouseBoundaryX 房屋边界 X 坐标
// 僵尸左边缘越过此线即视为突破该行，该行的除草车被触发
const HouseBoundaryX = 140.0
