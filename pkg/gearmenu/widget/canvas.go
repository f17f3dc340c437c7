package widget

import (
	"image/color"

	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/layout"
)

// FontHandle and ImageHandle identify assets owned by the asset layer.
// The zero value never refers to a loaded asset.
type (
	FontHandle  int
	ImageHandle int
)

const (
	NoFont  FontHandle  = 0
	NoImage ImageHandle = 0
)

// Canvas is the drawing backend. All coordinates it receives are physical pixels.
type Canvas interface {
	FillRect(r layout.Rect, c color.RGBA)
	FillRoundedRect(r layout.Rect, radius float64, c color.RGBA)
	// FillGradientRoundedRect fills r with a vertical gradient running from top to bottom.
	FillGradientRoundedRect(r layout.Rect, radius float64, top, bottom color.RGBA)
	StrokeRect(r layout.Rect, c color.RGBA)
	MeasureText(font FontHandle, size float64, text string) (w, h float64)
	// DrawText draws text with its top-left corner at (x, y).
	DrawText(font FontHandle, size float64, x, y float64, text string, c color.RGBA)
	// DrawImage stretches the image to exactly fill r.
	DrawImage(image ImageHandle, r layout.Rect)
}

type RenderConfig struct {
	DebugOutlines bool
	VirtualWidth  float64
	VirtualHeight float64
	ScaleX        float64
	ScaleY        float64
	// ScaleBorder keeps window borders in virtual units so they grow with the display.
	// When false, borders stay a constant number of physical pixels.
	ScaleBorder bool
}

func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		VirtualWidth:  constants.VirtualWidth,
		VirtualHeight: constants.VirtualHeight,
		ScaleX:        1,
		ScaleY:        1,
		ScaleBorder:   true,
	}
}

// ForOutput derives the scale factors that map the virtual canvas onto an output of w x h pixels.
func (c RenderConfig) ForOutput(w, h float64) RenderConfig {
	if c.VirtualWidth > 0 && w > 0 {
		c.ScaleX = w / c.VirtualWidth
	}
	if c.VirtualHeight > 0 && h > 0 {
		c.ScaleY = h / c.VirtualHeight
	}
	return c
}

// Screen is the full virtual canvas.
func (c RenderConfig) Screen() layout.Rect {
	return layout.Rect{W: c.VirtualWidth, H: c.VirtualHeight}
}

func (c RenderConfig) ToPhysical(r layout.Rect) layout.Rect {
	return r.Scale(c.ScaleX, c.ScaleY)
}

// Inset converts a border thickness into per-axis virtual insets according to ScaleBorder.
func (c RenderConfig) Inset(border float64) (dx, dy float64) {
	if c.ScaleBorder {
		return border, border
	}
	return border / nonZero(c.ScaleX), border / nonZero(c.ScaleY)
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// DrawContext is threaded through every Render call of a traversal.
type DrawContext struct {
	Canvas Canvas
	Config RenderConfig
	Theme  Theme
}

func NewDrawContext(canvas Canvas, config RenderConfig, theme Theme) *DrawContext {
	return &DrawContext{Canvas: canvas, Config: config, Theme: theme}
}

func (dc *DrawContext) outline(r layout.Rect) {
	if !dc.Config.DebugOutlines || r.Empty() {
		return
	}
	dc.Canvas.StrokeRect(dc.Config.ToPhysical(r), dc.Theme.DebugOutline)
}
