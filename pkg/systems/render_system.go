package systems

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/gonewx/pvzsim/pkg/config"
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderOptions 每帧的渲染开关
type RenderOptions struct {
	DrawBoardLines bool // 绘制草坪网格线（调试）
	DrawOutlines   bool // 绘制实体轮廓（调试）
	ShowSunScore   bool
	SunScore       int
}

// RenderSystem 把实体集合绘制到 ebiten 屏幕
//
// 职责范围：
//   - 按实体当前帧裁剪精灵图集（加上裁剪偏移），按缩放和透明度绘制
//   - 没有图集的实体用按种类着色的矩形占位
//   - 可选的网格线、轮廓和阳光计数
//
// 实体的绘制顺序由调用方决定（SpriteManager 已按 Order 排序）
type RenderSystem struct {
	images  map[image.Image]*ebiten.Image // 解码后的图集 → GPU 图像
	warned  map[string]bool               // 已报告过错误的实体
	outline color.Color
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{
		images:  make(map[image.Image]*ebiten.Image),
		warned:  make(map[string]bool),
		outline: color.RGBA{255, 0, 0, 255},
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image, sprites []*sprite.Sprite, opts RenderOptions) {
	for _, sp := range sprites {
		if !sp.Visible {
			continue
		}
		if err := s.drawSprite(screen, sp); err != nil {
			if !s.warned[sp.ID] {
				s.warned[sp.ID] = true
				log.Printf("[RenderSystem] 警告: 实体 %s 无法绘制: %v", sp.ID, err)
			}
			continue
		}
		if opts.DrawOutlines {
			s.drawOutline(screen, sp.Outline)
		}
	}

	if opts.DrawBoardLines {
		drawBoardLines(screen)
	}
	if opts.ShowSunScore {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Sun: %d", opts.SunScore), 20, 10)
	}
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, sp *sprite.Sprite) error {
	cell, err := sp.ActiveCell()
	if err != nil {
		return err
	}
	ds := sp.DrawingState

	if sp.Image == nil {
		w := float32(cell.Width * ds.Scale)
		h := float32(cell.Height * ds.Scale)
		vector.DrawFilledRect(screen, float32(sp.Position.Left), float32(sp.Position.Top), w, h,
			placeholderColor(sp.Type, ds.Alpha), false)
		return nil
	}

	sheet := s.imageFor(sp.Image)
	left := int(cell.Left + ds.Offset.Left)
	top := int(cell.Top + ds.Offset.Top)
	src := image.Rect(left, top, left+int(cell.Width), top+int(cell.Height))
	if !src.In(sheet.Bounds()) {
		src = src.Intersect(sheet.Bounds())
		if src.Empty() {
			return fmt.Errorf("cell %+v outside of image bounds %v", cell, sheet.Bounds())
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(ds.Scale, ds.Scale)
	op.GeoM.Translate(sp.Position.Left, sp.Position.Top)
	op.ColorScale.ScaleAlpha(float32(ds.Alpha))
	screen.DrawImage(sheet.SubImage(src).(*ebiten.Image), op)
	return nil
}

// imageFor 返回图集对应的 GPU 图像，同一图集只上传一次
func (s *RenderSystem) imageFor(img image.Image) *ebiten.Image {
	if cached, ok := s.images[img]; ok {
		return cached
	}
	if eimg, ok := img.(*ebiten.Image); ok {
		s.images[img] = eimg
		return eimg
	}
	eimg := ebiten.NewImageFromImage(img)
	s.images[img] = eimg
	return eimg
}

func (s *RenderSystem) drawOutline(screen *ebiten.Image, points []types.Position) {
	if len(points) < 2 {
		return
	}
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		vector.StrokeLine(screen, float32(a.Left), float32(a.Top), float32(b.Left), float32(b.Top), 1, s.outline, false)
	}
}

func drawBoardLines(screen *ebiten.Image) {
	lineColor := color.RGBA{255, 255, 255, 96}
	for _, x := range config.ColXCoords {
		vector.StrokeLine(screen, float32(x), 0, float32(x), config.CanvasHeight, 1, lineColor, false)
	}
	for _, y := range config.RowYCoords {
		vector.StrokeLine(screen, 0, float32(y), config.CanvasWidth, float32(y), 1, lineColor, false)
	}
}

// placeholderColor 没有图集时按种类着色
func placeholderColor(kind types.SpriteType, alpha float64) color.Color {
	var c color.RGBA
	switch kind {
	case types.SpriteZombie:
		c = color.RGBA{110, 120, 140, 255}
	case types.SpritePlant:
		c = color.RGBA{60, 170, 60, 255}
	case types.SpriteBullet:
		c = color.RGBA{120, 220, 80, 255}
	case types.SpriteLawnCleaner:
		c = color.RGBA{200, 40, 40, 255}
	case types.SpriteCard, types.SpriteSeed:
		c = color.RGBA{200, 180, 120, 255}
	case types.SpriteInterface:
		c = color.RGBA{240, 210, 60, 255}
	default:
		c = color.RGBA{128, 128, 128, 255}
	}

	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	// 预乘 alpha
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
