// Package outline 计算实体的点击检测多边形
//
// 两种模式：
//   - 矩形（默认）：当前视觉帧按缩放后的四个角
//   - 精确：把当前视觉帧渲染到离屏图像，对 alpha 通道做轮廓跟踪
//
// 少于 3 个点的多边形永远不会被命中。
package outline

import (
	"image"
	"math"

	"github.com/gonewx/pvzsim/pkg/types"
	"golang.org/x/image/draw"
)

// MinPolygonPoints 可参与命中测试的最少点数
const MinPolygonPoints = 3

// Rect 返回以 pos 为左上角、按 scale 缩放后的矩形四角（顺时针）
func Rect(pos types.Position, size types.Size, scale float64) []types.Position {
	w := size.Width * scale
	h := size.Height * scale
	return []types.Position{
		pos,
		types.NewPosition(pos.Top, pos.Left+w),
		types.NewPosition(pos.Top+h, pos.Left+w),
		types.NewPosition(pos.Top+h, pos.Left),
	}
}

// Exact 返回视觉帧 cell 在 pos 处的精确轮廓
// src 为完整的精灵图集，cell 为图集中的子区域
func Exact(src image.Image, cell types.SpriteCell, pos types.Position, scale float64) []types.Position {
	mask := RenderCell(src, cell, scale)
	if mask == nil {
		return nil
	}
	return MarchingSquares(mask, pos)
}

// RenderCell 将图集中的一个视觉帧按缩放渲染到离屏图像
// 尺寸为 0 时返回 nil
func RenderCell(src image.Image, cell types.SpriteCell, scale float64) *image.NRGBA {
	w := int(math.Ceil(cell.Width * scale))
	h := int(math.Ceil(cell.Height * scale))
	if src == nil || w <= 0 || h <= 0 {
		return nil
	}

	origin := src.Bounds().Min
	srcRect := image.Rect(
		origin.X+int(cell.Left),
		origin.Y+int(cell.Top),
		origin.X+int(cell.Left+cell.Width),
		origin.Y+int(cell.Top+cell.Height),
	)

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, srcRect, draw.Src, nil)
	return dst
}

// Hittable 判断多边形是否可以参与命中测试
func Hittable(points []types.Position) bool {
	return len(points) >= MinPolygonPoints
}
