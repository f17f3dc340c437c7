package widget

import (
	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/layout"
)

// Label draws embossed single-line text: a dark shadow pass then the foreground pass.
type Label struct {
	Text           string
	Font           FontHandle
	Size           float64 // virtual units
	Align          constants.TextAlign
	VerticalCenter bool
	Disabled       bool
}

func NewLabel(text string, font FontHandle) *Label {
	return &Label{
		Text:           text,
		Font:           font,
		Size:           constants.DefaultFontSize,
		Align:          constants.TextAlignLeft,
		VerticalCenter: true,
	}
}

func (l *Label) Render(dc *DrawContext, r layout.Rect) {
	if r.Empty() {
		return
	}
	defer dc.outline(r)

	if l.Text == "" {
		return
	}

	cfg := dc.Config
	target := cfg.ToPhysical(r)
	size := l.Size * cfg.ScaleY
	w, h := dc.Canvas.MeasureText(l.Font, size, l.Text)

	x := target.X
	switch l.Align {
	case constants.TextAlignCenter:
		x = target.X + (target.W-w)/2
	case constants.TextAlignRight:
		x = target.Right() - w
	}
	if x < target.X {
		x = target.X
	}

	y := target.Y
	if l.VerticalCenter {
		y = target.Y + (target.H-h)/2
	}

	fg := dc.Theme.TextColor
	if l.Disabled {
		fg = dc.Theme.DisabledText
	}

	dx := dc.Theme.ShadowOffset * cfg.ScaleX
	dy := dc.Theme.ShadowOffset * cfg.ScaleY
	dc.Canvas.DrawText(l.Font, size, x+dx, y+dy, l.Text, dc.Theme.TextShadow)
	dc.Canvas.DrawText(l.Font, size, x, y, l.Text, fg)
}
