package internal

import (
	"image/color"
	"math"

	"github.com/sevengears/gearmenu/pkg/gearmenu/layout"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

// ToSDLRect snaps a physical rect to whole pixels. Edges are rounded independently
// so neighbouring rects never leave a one pixel seam between them.
func ToSDLRect(r layout.Rect) sdl.Rect {
	x0, y0 := math.Round(r.X), math.Round(r.Y)
	x1, y1 := math.Round(r.Right()), math.Round(r.Bottom())
	return sdl.Rect{X: int32(x0), Y: int32(y0), W: int32(x1 - x0), H: int32(y1 - y0)}
}

func clampRadius(rect *sdl.Rect, radius int32) int32 {
	return max(0, min(radius, rect.W/2, rect.H/2))
}

func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}

	radius = clampRadius(rect, radius)
	if radius == 0 {
		gfx.BoxColor(renderer, rect.X, rect.Y, rect.X+rect.W-1, rect.Y+rect.H-1, color)
		return
	}

	right := rect.X + rect.W - 1
	bottom := rect.Y + rect.H - 1

	gfx.BoxColor(renderer, rect.X+radius, rect.Y, right-radius, bottom, color)
	gfx.BoxColor(renderer, rect.X, rect.Y+radius, rect.X+radius-1, bottom-radius, color)
	gfx.BoxColor(renderer, right-radius+1, rect.Y+radius, right, bottom-radius, color)

	drawRoundedCorner(renderer, rect.X+radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, right-radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, rect.X+radius, bottom-radius, radius, color)
	drawRoundedCorner(renderer, right-radius, bottom-radius, radius, color)
}

func drawRoundedCorner(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	gfx.FilledCircleColor(renderer, centerX, centerY, radius, color)
	gfx.AACircleColor(renderer, centerX, centerY, radius, color)

	if radius > 5 {
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
	}
}

// DrawGradientRoundedRect fills rect one scanline at a time, blending from top to
// bottom and pulling each line in where it crosses a rounded corner.
func DrawGradientRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, top, bottom color.RGBA) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}

	radius = clampRadius(rect, radius)
	right := rect.X + rect.W - 1

	for row := int32(0); row < rect.H; row++ {
		t := 0.0
		if rect.H > 1 {
			t = float64(row) / float64(rect.H-1)
		}
		inset := cornerInset(row, rect.H, radius)
		gfx.HlineColor(renderer, rect.X+inset, right-inset, rect.Y+row, ToSDLColor(LerpColor(top, bottom, t)))
	}
}

// cornerInset is how far scanline row of a box of height h is pulled in by a
// corner of the given radius.
func cornerInset(row, h, radius int32) int32 {
	if radius <= 0 {
		return 0
	}

	var fromEdge int32
	switch {
	case row < radius:
		fromEdge = row
	case row >= h-radius:
		fromEdge = h - 1 - row
	default:
		return 0
	}

	r := float64(radius)
	dy := r - float64(fromEdge) - 0.5
	return int32(math.Round(r - math.Sqrt(math.Max(0, r*r-dy*dy))))
}

func LerpColor(from, to color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return color.RGBA{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: mix(from.A, to.A)}
}
