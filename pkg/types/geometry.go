package types

import "math"

// Position 渲染坐标系中的位置（左上角为原点，Top 向下，Left 向右）
type Position struct {
	Top  float64 `yaml:"top"`
	Left float64 `yaml:"left"`
}

// NewPosition 创建位置
func NewPosition(top, left float64) Position {
	return Position{Top: top, Left: left}
}

// Add 返回两个位置相加的结果
func (p Position) Add(other Position) Position {
	return Position{Top: p.Top + other.Top, Left: p.Left + other.Left}
}

// Distance 返回位置向量的欧几里得长度
func (p Position) Distance() float64 {
	return math.Hypot(p.Left, p.Top)
}

// Size 宽高
type Size struct {
	Width  float64
	Height float64
}

// SpriteCell 精灵图集中的一个视觉帧（单元格）
type SpriteCell struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Size 返回单元格尺寸
func (c SpriteCell) Size() Size {
	return Size{Width: c.Width, Height: c.Height}
}

// Velocity 速度（像素/秒）
type Velocity struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CollisionMargin 碰撞边距，实体自身碰撞盒的内缩量（默认全为 0）
type CollisionMargin struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// BoardLocation 草坪上的离散行列地址
type BoardLocation struct {
	Row int
	Col int
}
