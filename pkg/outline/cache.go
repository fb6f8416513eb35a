package outline

import (
	"image"
	"sync"

	"github.com/gonewx/pvzsim/pkg/types"
)

type cacheKey struct {
	src   image.Image
	cell  types.SpriteCell
	scale float64
}

// Cache 缓存精确轮廓
//
// 轮廓只与图集、视觉帧和缩放有关，以原点为基准保存一次，
// 实体移动时只做平移，不再重新渲染和跟踪。
// 图集必须是可比较的类型（image 包解码出的图像都是指针）。
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey][]types.Position
}

// NewCache 创建轮廓缓存
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey][]types.Position)}
}

// Exact 与包级 Exact 相同，但同一帧只跟踪一次
func (c *Cache) Exact(src image.Image, cell types.SpriteCell, pos types.Position, scale float64) []types.Position {
	key := cacheKey{src: src, cell: cell, scale: scale}

	c.mu.Lock()
	base, ok := c.entries[key]
	if !ok {
		base = Exact(src, cell, types.Position{}, scale)
		c.entries[key] = base
	}
	c.mu.Unlock()

	return Translate(base, pos)
}

// Len 返回缓存的轮廓数量
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Translate 返回平移 pos 之后的多边形副本
func Translate(pts []types.Position, pos types.Position) []types.Position {
	if len(pts) == 0 {
		return nil
	}
	out := make([]types.Position, len(pts))
	for i, p := range pts {
		out[i] = types.NewPosition(p.Top+pos.Top, p.Left+pos.Left)
	}
	return out
}
