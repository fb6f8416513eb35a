// Package sprite 定义模拟实体（精灵）及其视觉、战斗状态和变更
package sprite

import (
	"fmt"
	"image"

	"github.com/gonewx/pvzsim/pkg/outline"
	"github.com/gonewx/pvzsim/pkg/types"
	"github.com/gonewx/pvzsim/pkg/utils"
)

// Sprite 模拟中的一个游戏对象
type Sprite struct {
	ID    string
	Name  string
	Type  types.SpriteType
	Order int // 绘制顺序，越大越靠前

	Position       types.Position
	OriginPosition types.Position
	BoardLocation  types.BoardLocation
	Outline        []types.Position
	ExactOutline   bool
	Outlines       *outline.Cache // 精确轮廓缓存，可为 nil

	Image        image.Image // 精灵图集，可为 nil（此时精确轮廓退化为矩形）
	DrawingState DrawingState
	AttackState  AttackState
	Behaviors    []Behavior
	Visible      bool
}

// Config 创建实体的参数
type Config struct {
	ID           string
	Name         string
	Type         types.SpriteType
	Order        int
	Position     types.Position
	Cells        []types.SpriteCell
	SwapCells    [][]types.SpriteCell
	Scale        float64
	Offset       types.Position
	ExactOutline bool
	Outlines     *outline.Cache
	Image        image.Image
	Life         float64
	Damage       float64
	Effect       types.AttackEffect
	Behaviors    []Behavior
}

// New 根据配置创建实体，并把行为绑定到该实体
func New(cfg Config) (*Sprite, error) {
	s := &Sprite{
		ID:             cfg.ID,
		Name:           cfg.Name,
		Type:           cfg.Type,
		Order:          cfg.Order,
		OriginPosition: cfg.Position,
		ExactOutline:   cfg.ExactOutline,
		Outlines:       cfg.Outlines,
		Image:          cfg.Image,
		DrawingState:   NewDrawingState(cfg.Cells, cfg.SwapCells, cfg.Scale, cfg.Offset),
		AttackState:    NewAttackState(cfg.Life, cfg.Damage),
		Behaviors:      cfg.Behaviors,
		Visible:        true,
	}
	s.AttackState.Effect = cfg.Effect

	for _, b := range s.Behaviors {
		b.SetSpriteID(s.ID)
	}

	if err := s.UpdatePosition(cfg.Position); err != nil {
		return nil, fmt.Errorf("failed to create sprite %s: %w", cfg.Name, err)
	}
	return s, nil
}

// ActiveCell 返回当前视觉帧
func (s *Sprite) ActiveCell() (types.SpriteCell, error) {
	cell, err := s.DrawingState.Active()
	if err != nil {
		return cell, fmt.Errorf("sprite %s (%s): %w", s.ID, s.Name, err)
	}
	return cell, nil
}

// UpdatePosition 设置位置并立即重算草坪行列和轮廓
func (s *Sprite) UpdatePosition(pos types.Position) error {
	s.Position = pos
	s.BoardLocation = utils.GetBoardLocation(pos)
	return s.RefreshOutline()
}

// RefreshOutline 按当前帧和位置重算点击检测多边形
func (s *Sprite) RefreshOutline() error {
	cell, err := s.ActiveCell()
	if err != nil {
		return err
	}

	if s.ExactOutline && s.Image != nil {
		if s.Outlines != nil {
			s.Outline = s.Outlines.Exact(s.Image, cell, s.Position, s.DrawingState.Scale)
		} else {
			s.Outline = outline.Exact(s.Image, cell, s.Position, s.DrawingState.Scale)
		}
		return nil
	}
	s.Outline = outline.Rect(s.Position, cell.Size(), s.DrawingState.Scale)
	return nil
}

// ResetPosition 回到初始位置
func (s *Sprite) ResetPosition() error {
	return s.UpdatePosition(s.OriginPosition)
}

// Clone 复制实体的状态（行为实例共享）
func (s *Sprite) Clone() *Sprite {
	c := *s
	c.Outline = append([]types.Position(nil), s.Outline...)
	c.Behaviors = append([]Behavior(nil), s.Behaviors...)
	return &c
}
