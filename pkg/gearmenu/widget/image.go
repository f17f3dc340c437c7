package widget

import "github.com/sevengears/gearmenu/pkg/gearmenu/layout"

// Image stretches a texture over its whole rectangle.
type Image struct {
	Handle ImageHandle
}

func NewImage(handle ImageHandle) *Image {
	return &Image{Handle: handle}
}

func (i *Image) Render(dc *DrawContext, r layout.Rect) {
	if r.Empty() {
		return
	}
	if i.Handle != NoImage {
		dc.Canvas.DrawImage(i.Handle, dc.Config.ToPhysical(r))
	}
	dc.outline(r)
}

// Outline strokes its rectangle when debug outlines are enabled.
type Outline struct{}

func (Outline) Render(dc *DrawContext, r layout.Rect) {
	dc.outline(r)
}
