package widget

import (
	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/layout"
)

// Window draws a beveled rounded frame over its rectangle and renders its child
// inside the frame border.
type Window struct {
	Container
	Border float64
}

func NewWindow(child Widget) *Window {
	w := &Window{Border: constants.WindowBorder}
	w.SetChild(child)
	return w
}

// ContentRect is the rectangle the child receives when the window is rendered into r.
func (w *Window) ContentRect(cfg RenderConfig, r layout.Rect) layout.Rect {
	dx, dy := cfg.Inset(w.Border)
	return r.Inset(dx, dy)
}

func (w *Window) Render(dc *DrawContext, r layout.Rect) {
	if r.Empty() {
		return
	}
	drawFrame(dc, r)
	w.Container.Render(dc, w.ContentRect(dc.Config, r))
}

func drawFrame(dc *DrawContext, r layout.Rect) {
	cfg := dc.Config
	theme := dc.Theme
	radius := theme.CornerRadius * cfg.ScaleY

	layers := []struct {
		inset float64
		fill  func(layout.Rect)
	}{
		{0, func(p layout.Rect) { dc.Canvas.FillRoundedRect(p, radius, theme.FrameOutline) }},
		{theme.FrameInsets[0], func(p layout.Rect) { dc.Canvas.FillRoundedRect(p, radius, theme.FrameHighlight) }},
		{theme.FrameInsets[1], func(p layout.Rect) { dc.Canvas.FillRoundedRect(p, radius, theme.FrameShadow) }},
		{theme.FrameInsets[2], func(p layout.Rect) {
			dc.Canvas.FillGradientRoundedRect(p, radius, theme.GradientTop, theme.GradientBottom)
		}},
	}

	for _, layer := range layers {
		dx, dy := cfg.Inset(layer.inset)
		inner := r.Inset(dx, dy)
		if inner.Empty() {
			return
		}
		layer.fill(cfg.ToPhysical(inner))
	}
}
