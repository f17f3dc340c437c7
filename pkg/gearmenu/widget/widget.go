// Package widget implements the retained widget tree: leaves that draw text and images,
// containers that forward their rectangle to a single child, and the table layout that
// partitions a rectangle into percentage-sized cells with a navigable cursor.
//
// Every rectangle passed through Render is in virtual units. Leaves convert to physical
// pixels with the DrawContext's RenderConfig right before calling the Canvas.
package widget

import "github.com/sevengears/gearmenu/pkg/gearmenu/layout"

type Widget interface {
	Render(dc *DrawContext, r layout.Rect)
}

// Container owns at most one child and renders it into the rectangle it receives.
type Container struct {
	child Widget
}

// SetChild attaches w, replacing and returning any previous child.
func (c *Container) SetChild(w Widget) Widget {
	previous := c.child
	c.child = w
	return previous
}

func (c *Container) Child() Widget {
	return c.child
}

func (c *Container) Render(dc *DrawContext, r layout.Rect) {
	if c.child == nil {
		return
	}
	c.child.Render(dc, r)
	dc.outline(r)
}
