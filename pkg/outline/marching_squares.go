package outline

import (
	"image"

	"github.com/gonewx/pvzsim/pkg/types"
)

type step int

const (
	stepNone step = iota
	stepUp
	stepLeft
	stepDown
	stepRight
)

// caseSteps 2x2 邻域编码到行进方向的查表
// 编码：左上=1，右上=2，左下=4，右下=8；6 和 9 为鞍点，需要结合上一步方向
var caseSteps = [16]step{
	0:  stepNone,
	1:  stepUp,
	2:  stepRight,
	3:  stepRight,
	4:  stepLeft,
	5:  stepUp,
	7:  stepRight,
	8:  stepDown,
	10: stepDown,
	11: stepDown,
	12: stepLeft,
	13: stepUp,
	14: stepLeft,
	15: stepNone,
}

// MarchingSquares 沿 mask 的 alpha 通道跟踪第一个非透明区域的外轮廓
//
// 从行优先扫描到的第一个非透明像素开始，每走一步输出一个点，回到起点时结束。
// 输出点已加上 offset。全透明的 mask 返回空切片。
func MarchingSquares(mask image.Image, offset types.Position) []types.Position {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()

	filled := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return alphaAt(mask, b.Min.X+x, b.Min.Y+y) > 0
	}

	sx, sy, ok := firstFilled(w, h, filled)
	if !ok {
		return nil
	}

	// 一个闭合轮廓最多经过 (w+1)*(h+1) 个格点，每个格点至多两次
	maxSteps := 2 * (w + 1) * (h + 1)
	points := make([]types.Position, 0, 64)

	x, y := sx, sy
	prev := stepNone
	for i := 0; i < maxSteps; i++ {
		points = append(points, types.NewPosition(offset.Top+float64(y), offset.Left+float64(x)))

		code := 0
		if filled(x-1, y-1) {
			code |= 1
		}
		if filled(x, y-1) {
			code |= 2
		}
		if filled(x-1, y) {
			code |= 4
		}
		if filled(x, y) {
			code |= 8
		}

		next := nextStep(code, prev)
		switch next {
		case stepUp:
			y--
		case stepLeft:
			x--
		case stepDown:
			y++
		case stepRight:
			x++
		default:
			return points
		}
		prev = next

		if x == sx && y == sy {
			break
		}
	}

	return points
}

func nextStep(code int, prev step) step {
	switch code {
	case 6:
		if prev == stepUp {
			return stepLeft
		}
		return stepRight
	case 9:
		if prev == stepRight {
			return stepUp
		}
		return stepDown
	default:
		return caseSteps[code]
	}
}

func firstFilled(w, h int, filled func(x, y int) bool) (int, int, bool) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if filled(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func alphaAt(img image.Image, x, y int) uint32 {
	switch m := img.(type) {
	case *image.NRGBA:
		return uint32(m.Pix[m.PixOffset(x, y)+3])
	case *image.Alpha:
		return uint32(m.Pix[m.PixOffset(x, y)])
	default:
		_, _, _, a := img.At(x, y).RGBA()
		return a
	}
}
