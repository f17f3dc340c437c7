package widget

import (
	"image/color"

	"github.com/sevengears/gearmenu/pkg/gearmenu/layout"
)

type drawCall struct {
	op     string
	rect   layout.Rect
	color  color.RGBA
	text   string
	x, y   float64
	size   float64
	image  ImageHandle
	radius float64
}

// recordingCanvas captures every draw call. Text measures charWidth per byte.
type recordingCanvas struct {
	calls     []drawCall
	charWidth float64
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{charWidth: 10}
}

func (c *recordingCanvas) FillRect(r layout.Rect, col color.RGBA) {
	c.calls = append(c.calls, drawCall{op: "fill", rect: r, color: col})
}

func (c *recordingCanvas) FillRoundedRect(r layout.Rect, radius float64, col color.RGBA) {
	c.calls = append(c.calls, drawCall{op: "rounded", rect: r, radius: radius, color: col})
}

func (c *recordingCanvas) FillGradientRoundedRect(r layout.Rect, radius float64, top, _ color.RGBA) {
	c.calls = append(c.calls, drawCall{op: "gradient", rect: r, radius: radius, color: top})
}

func (c *recordingCanvas) StrokeRect(r layout.Rect, col color.RGBA) {
	c.calls = append(c.calls, drawCall{op: "stroke", rect: r, color: col})
}

func (c *recordingCanvas) MeasureText(_ FontHandle, size float64, text string) (float64, float64) {
	return float64(len(text)) * c.charWidth, size
}

func (c *recordingCanvas) DrawText(_ FontHandle, size float64, x, y float64, text string, col color.RGBA) {
	c.calls = append(c.calls, drawCall{op: "text", x: x, y: y, size: size, text: text, color: col})
}

func (c *recordingCanvas) DrawImage(image ImageHandle, r layout.Rect) {
	c.calls = append(c.calls, drawCall{op: "image", rect: r, image: image})
}

func (c *recordingCanvas) ops(op string) []drawCall {
	var out []drawCall
	for _, call := range c.calls {
		if call.op == op {
			out = append(out, call)
		}
	}
	return out
}

func (c *recordingCanvas) reset() {
	c.calls = nil
}

func newTestContext(canvas Canvas) *DrawContext {
	return NewDrawContext(canvas, DefaultRenderConfig(), DefaultTheme())
}

// probe records the rectangles it is rendered into.
type probe struct {
	rects []layout.Rect
}

func (p *probe) Render(_ *DrawContext, r layout.Rect) {
	p.rects = append(p.rects, r)
}
