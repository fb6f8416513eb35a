// calculate_hitbox 计算精灵图集中一个视觉帧的精确点击轮廓
//
// 用法:
//
//	go run ./cmd/calculate_hitbox --image data/images/sun.png --width 78 --height 78
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/gonewx/pvzsim/pkg/outline"
	"github.com/gonewx/pvzsim/pkg/types"
)

var (
	imagePath = flag.String("image", "", "精灵图集路径（PNG/JPEG）")
	cellTop   = flag.Float64("top", 0, "视觉帧在图集中的 top")
	cellLeft  = flag.Float64("left", 0, "视觉帧在图集中的 left")
	width     = flag.Float64("width", 0, "视觉帧宽度（0 表示整张图）")
	height    = flag.Float64("height", 0, "视觉帧高度（0 表示整张图）")
	scale     = flag.Float64("scale", 1, "渲染缩放")
	posTop    = flag.Float64("pos-top", 0, "实体位置 top（轮廓点的偏移）")
	posLeft   = flag.Float64("pos-left", 0, "实体位置 left（轮廓点的偏移）")
)

func main() {
	flag.Parse()
	if *imagePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		log.Fatalf("打开图集失败: %v", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Fatalf("解码图集失败: %v", err)
	}

	cell := types.SpriteCell{Top: *cellTop, Left: *cellLeft, Width: *width, Height: *height}
	if cell.Width == 0 || cell.Height == 0 {
		b := img.Bounds()
		cell.Width = float64(b.Dx())
		cell.Height = float64(b.Dy())
	}

	points := outline.Exact(img, cell, types.NewPosition(*posTop, *posLeft), *scale)

	fmt.Println("==========================================================")
	fmt.Printf("视觉帧: top=%.0f left=%.0f %.0fx%.0f scale=%.2f\n", cell.Top, cell.Left, cell.Width, cell.Height, *scale)
	fmt.Println("==========================================================")
	if !outline.Hittable(points) {
		fmt.Println("❌ 轮廓点少于 3 个，该帧不可点击（可能完全透明）")
		os.Exit(1)
	}

	minP, maxP := points[0], points[0]
	for _, p := range points {
		minP.Top = min(minP.Top, p.Top)
		minP.Left = min(minP.Left, p.Left)
		maxP.Top = max(maxP.Top, p.Top)
		maxP.Left = max(maxP.Left, p.Left)
	}
	fmt.Printf("轮廓点数: %d\n", len(points))
	fmt.Printf("包围盒: top=%.1f left=%.1f bottom=%.1f right=%.1f\n", minP.Top, minP.Left, maxP.Top, maxP.Left)
	fmt.Println()
	for i, p := range points {
		fmt.Printf("  [%3d] top=%.1f left=%.1f\n", i, p.Top, p.Left)
	}
}
