package outline

import (
	"image"
	"math"

	"github.com/gonewx/pvzsim/pkg/types"
	"golang.org/x/image/vector"
)

// Painter 多边形点包含测试
// 由 Hover/Click/Drag 行为用于指针命中检测
type Painter interface {
	InPath(points []types.Position, p types.Position) bool
}

// VectorPainter 通过在不可见的 alpha 图层上光栅化多边形来做包含测试
type VectorPainter struct{}

// NewVectorPainter 创建光栅化 Painter
func NewVectorPainter() *VectorPainter {
	return &VectorPainter{}
}

// InPath 判断点 p 是否落在多边形内
// 少于 3 个点的多边形永远返回 false
func (v *VectorPainter) InPath(points []types.Position, p types.Position) bool {
	if !Hittable(points) {
		return false
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range points {
		minX = math.Min(minX, pt.Left)
		minY = math.Min(minY, pt.Top)
		maxX = math.Max(maxX, pt.Left)
		maxY = math.Max(maxY, pt.Top)
	}

	if p.Left < minX || p.Left >= maxX || p.Top < minY || p.Top >= maxY {
		return false
	}

	originX, originY := math.Floor(minX), math.Floor(minY)
	w := int(math.Ceil(maxX - originX))
	h := int(math.Ceil(maxY - originY))
	if w <= 0 || h <= 0 {
		return false
	}

	r := vector.NewRasterizer(w, h)
	r.MoveTo(float32(points[0].Left-originX), float32(points[0].Top-originY))
	for _, pt := range points[1:] {
		r.LineTo(float32(pt.Left-originX), float32(pt.Top-originY))
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	px := int(p.Left - originX)
	py := int(p.Top - originY)
	return mask.AlphaAt(px, py).A > 0
}
