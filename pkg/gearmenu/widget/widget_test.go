package widget

import (
	"testing"

	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/layout"
)

func TestContainerWithoutChildDrawsNothing(t *testing.T) {
	canvas := newRecordingCanvas()
	dc := newTestContext(canvas)
	dc.Config.DebugOutlines = true

	var c Container
	c.Render(dc, layout.Rect{W: 100, H: 100})

	if len(canvas.calls) != 0 {
		t.Errorf("expected no draw calls, got %+v", canvas.calls)
	}
}

func TestContainerForwardsSameRect(t *testing.T) {
	p := &probe{}
	var c Container
	c.SetChild(p)

	r := layout.Rect{X: 5, Y: 6, W: 70, H: 80}
	c.Render(newTestContext(newRecordingCanvas()), r)

	if len(p.rects) != 1 || p.rects[0] != r {
		t.Errorf("child rects = %+v, want [%+v]", p.rects, r)
	}
}

func TestSetChildReturnsPrevious(t *testing.T) {
	first, second := &probe{}, &probe{}
	var c Container

	if prev := c.SetChild(first); prev != nil {
		t.Errorf("expected nil previous, got %v", prev)
	}
	if prev := c.SetChild(second); prev != first {
		t.Errorf("expected first probe back, got %v", prev)
	}
}

func TestDebugOutlines(t *testing.T) {
	canvas := newRecordingCanvas()
	dc := newTestContext(canvas)
	r := layout.Rect{X: 1, Y: 2, W: 30, H: 40}

	NewImage(3).Render(dc, r)
	if got := len(canvas.ops("stroke")); got != 0 {
		t.Fatalf("outlines drawn with debug disabled: %d", got)
	}

	dc.Config.DebugOutlines = true
	NewImage(3).Render(dc, r)
	Outline{}.Render(dc, r)
	if got := len(canvas.ops("stroke")); got != 2 {
		t.Fatalf("expected 2 outlines, got %d", got)
	}
}

func TestImageStretchesToPhysicalRect(t *testing.T) {
	canvas := newRecordingCanvas()
	dc := newTestContext(canvas)
	dc.Config = dc.Config.ForOutput(1600, 1200)

	NewImage(7).Render(dc, layout.Rect{X: 10, Y: 20, W: 30, H: 40})

	images := canvas.ops("image")
	if len(images) != 1 {
		t.Fatalf("expected one image draw, got %d", len(images))
	}
	want := layout.Rect{X: 20, Y: 40, W: 60, H: 80}
	if images[0].rect != want || images[0].image != 7 {
		t.Errorf("image draw = %+v, want rect %+v handle 7", images[0], want)
	}
}

func TestZeroAreaRectsDrawNothing(t *testing.T) {
	table, err := NewTableLayout(2, 2, 9)
	if err != nil {
		t.Fatal(err)
	}
	cell, _ := table.Cell(0, 0)
	cell.SetChild(NewLabel("hi", 1))

	widgets := map[string]Widget{
		"label":  NewLabel("text", 1),
		"image":  NewImage(4),
		"window": NewWindow(NewLabel("inside", 1)),
		"table":  table,
	}
	rects := []layout.Rect{
		{X: 10, Y: 10, W: 0, H: 50},
		{X: 10, Y: 10, W: 50, H: 0},
		{X: 10, Y: 10, W: -5, H: -5},
	}

	for name, w := range widgets {
		for _, r := range rects {
			canvas := newRecordingCanvas()
			dc := newTestContext(canvas)
			dc.Config.DebugOutlines = true
			w.Render(dc, r)
			if len(canvas.calls) != 0 {
				t.Errorf("%s in %+v drew %+v", name, r, canvas.calls)
			}
		}
	}
}

func TestLabelRendering(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name     string
		label    Label
		rect     layout.Rect
		wantX    float64
		wantY    float64
		disabled bool
	}{
		{
			name:  "left aligned vertically centered",
			label: Label{Text: "Load", Font: 1, Size: 20, VerticalCenter: true},
			rect:  layout.Rect{X: 600, Y: 0, W: 200, H: 60},
			wantX: 600,
			wantY: 20,
		},
		{
			name:  "centered",
			label: Label{Text: "Load", Font: 1, Size: 20, Align: constants.TextAlignCenter},
			rect:  layout.Rect{X: 600, Y: 0, W: 200, H: 60},
			wantX: 680,
			wantY: 0,
		},
		{
			name:  "right aligned",
			label: Label{Text: "Load", Font: 1, Size: 20, Align: constants.TextAlignRight},
			rect:  layout.Rect{X: 0, Y: 0, W: 100, H: 60},
			wantX: 60,
		},
		{
			name:  "too wide never starts left of the rect",
			label: Label{Text: "Could be the end of the world...", Font: 1, Size: 20, Align: constants.TextAlignCenter},
			rect:  layout.Rect{X: 40, Y: 0, W: 100, H: 60},
			wantX: 40,
		},
		{
			name:     "disabled",
			label:    Label{Text: "Save 6", Font: 1, Size: 20, Disabled: true},
			rect:     layout.Rect{X: 0, Y: 0, W: 100, H: 20},
			wantX:    0,
			disabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := newRecordingCanvas()
			tt.label.Render(newTestContext(canvas), tt.rect)

			texts := canvas.ops("text")
			if len(texts) != 2 {
				t.Fatalf("expected shadow and foreground passes, got %d", len(texts))
			}
			shadow, fg := texts[0], texts[1]

			if shadow.color != theme.TextShadow {
				t.Errorf("shadow color = %v", shadow.color)
			}
			wantFg := theme.TextColor
			if tt.disabled {
				wantFg = theme.DisabledText
			}
			if fg.color != wantFg {
				t.Errorf("foreground color = %v, want %v", fg.color, wantFg)
			}
			if fg.x != tt.wantX || fg.y != tt.wantY {
				t.Errorf("foreground at (%v, %v), want (%v, %v)", fg.x, fg.y, tt.wantX, tt.wantY)
			}
			if shadow.x != fg.x+theme.ShadowOffset || shadow.y != fg.y+theme.ShadowOffset {
				t.Errorf("shadow at (%v, %v), foreground at (%v, %v)", shadow.x, shadow.y, fg.x, fg.y)
			}
		})
	}
}

func TestEmptyLabelDrawsNoText(t *testing.T) {
	canvas := newRecordingCanvas()
	NewLabel("", 1).Render(newTestContext(canvas), layout.Rect{W: 10, H: 10})
	if len(canvas.ops("text")) != 0 {
		t.Error("empty label should not draw text")
	}
}
