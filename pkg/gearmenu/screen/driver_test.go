package screen

import (
	"errors"
	"image/color"
	"io"
	"log/slog"
	"testing"

	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/i18n"
	"github.com/sevengears/gearmenu/pkg/gearmenu/input"
	"github.com/sevengears/gearmenu/pkg/gearmenu/layout"
	"github.com/sevengears/gearmenu/pkg/gearmenu/widget"
)

type countingCanvas struct {
	rounded []layout.Rect
	texts   []string
	fonts   map[string]widget.FontHandle
	images  int
	fills   int
}

func (c *countingCanvas) FillRect(layout.Rect, color.RGBA) { c.fills++ }
func (c *countingCanvas) FillRoundedRect(r layout.Rect, _ float64, _ color.RGBA) {
	c.rounded = append(c.rounded, r)
}
func (c *countingCanvas) FillGradientRoundedRect(layout.Rect, float64, color.RGBA, color.RGBA) {}
func (c *countingCanvas) StrokeRect(layout.Rect, color.RGBA)                                   {}
func (c *countingCanvas) MeasureText(_ widget.FontHandle, size float64, text string) (float64, float64) {
	return float64(len(text)) * 8, size
}
func (c *countingCanvas) DrawText(font widget.FontHandle, _ float64, _, _ float64, text string, _ color.RGBA) {
	if c.fonts == nil {
		c.fonts = make(map[string]widget.FontHandle)
	}
	c.texts = append(c.texts, text)
	c.fonts[text] = font
}
func (c *countingCanvas) DrawImage(widget.ImageHandle, layout.Rect) { c.images++ }

func newTestDriver(t *testing.T) *Driver {
	t.Helper()
	if err := i18n.Init(); err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDriver(DefaultAssets(1, 2), logger)
}

// tap feeds a press frame and then a release frame for button.
func tap(t *testing.T, d *Driver, f *input.Frame, button constants.VirtualButton) {
	t.Helper()
	f.Advance(input.SnapshotOf(button))
	if err := d.Update(*f); err != nil {
		t.Fatal(err)
	}
	f.Advance(input.Snapshot{})
	if err := d.Update(*f); err != nil {
		t.Fatal(err)
	}
}

func TestActivateUnknownScreen(t *testing.T) {
	d := newTestDriver(t)
	if err := d.Activate("inventory"); !errors.Is(err, ErrUnknownScreen) {
		t.Errorf("Activate(inventory) error = %v", err)
	}
	if d.Active() != None {
		t.Errorf("Active() = %q after failed activation", d.Active())
	}
}

func TestUpdateWithoutActiveScreen(t *testing.T) {
	d := newTestDriver(t)
	if err := d.Update(input.Frame{Current: input.SnapshotOf(constants.VirtualButtonA)}); err != nil {
		t.Errorf("Update() error = %v", err)
	}
}

func TestFactoryErrorIsReported(t *testing.T) {
	d := newTestDriver(t)
	boom := errors.New("boom")
	d.Register("broken", func(Assets) (Screen, error) { return nil, boom })

	if err := d.Activate("broken"); !errors.Is(err, boom) {
		t.Errorf("Activate(broken) error = %v", err)
	}
}

func TestTitleToLoadAndBack(t *testing.T) {
	d := newTestDriver(t)
	if err := d.Activate(Title); err != nil {
		t.Fatal(err)
	}
	var f input.Frame

	tap(t, d, &f, constants.VirtualButtonA)
	if d.Active() != Load {
		t.Fatalf("Active() = %q, want load", d.Active())
	}

	tap(t, d, &f, constants.VirtualButtonRight)
	tap(t, d, &f, constants.VirtualButtonRight)
	tap(t, d, &f, constants.VirtualButtonB)
	if d.Active() != Title {
		t.Fatalf("Active() = %q, want title", d.Active())
	}

	tap(t, d, &f, constants.VirtualButtonA)
	s, _ := d.Screen(Load)
	if row, col := s.(*LoadScreen).Saves().Selection(); row != 0 || col != 2 {
		t.Errorf("save cursor = (%d, %d), want it kept at (0, 2)", row, col)
	}
}

func TestConfigEntryStaysOnTitle(t *testing.T) {
	d := newTestDriver(t)
	if err := d.Activate(Title); err != nil {
		t.Fatal(err)
	}
	var f input.Frame

	tap(t, d, &f, constants.VirtualButtonUp)
	tap(t, d, &f, constants.VirtualButtonA)
	if d.Active() != Title {
		t.Errorf("Active() = %q, config entry should not leave the title", d.Active())
	}
}

func TestLoadScreenSlideIn(t *testing.T) {
	d := newTestDriver(t)
	if err := d.Activate(Load); err != nil {
		t.Fatal(err)
	}
	s, _ := d.Screen(Load)
	load := s.(*LoadScreen)

	canvas := &countingCanvas{}
	dc := widget.NewDrawContext(canvas, widget.DefaultRenderConfig(), widget.DefaultTheme())
	d.Render(dc)
	if got := canvas.rounded[0].X; got != -constants.DefaultSlideInOffset {
		t.Fatalf("status window starts at x=%v, want off screen", got)
	}

	var f input.Frame
	for i := 0; i < 20; i++ {
		f.Advance(input.Snapshot{})
		if err := d.Update(f); err != nil {
			t.Fatal(err)
		}
	}
	if !load.Slides().Done() {
		t.Fatal("entrance animation should be finished after 20 frames")
	}

	canvas = &countingCanvas{}
	dc.Canvas = canvas
	d.Render(dc)
	if got := canvas.rounded[0]; got != statusRect {
		t.Errorf("status window at %+v, want %+v", got, statusRect)
	}
	if canvas.fills != 1 {
		t.Errorf("expected one background clear, got %d", canvas.fills)
	}
	if canvas.images != 1 {
		t.Errorf("expected one cursor image, got %d", canvas.images)
	}

	tap(t, d, &f, constants.VirtualButtonSelect)
	if load.Slides().Done() {
		t.Error("Select should replay the entrance animation")
	}
}

func TestLoadScreenLabels(t *testing.T) {
	d := newTestDriver(t)
	if err := d.Activate(Load); err != nil {
		t.Fatal(err)
	}

	canvas := &countingCanvas{}
	d.Render(widget.NewDrawContext(canvas, widget.DefaultRenderConfig(), widget.DefaultTheme()))

	want := map[string]bool{"Save 1": false, "Save 10": false, "Load": false, "Checking save data file.": false}
	for _, text := range canvas.texts {
		if _, ok := want[text]; ok {
			want[text] = true
		}
	}
	for text, seen := range want {
		if !seen {
			t.Errorf("label %q was not drawn", text)
		}
	}
}

func TestTitleHeadingUsesBoldFont(t *testing.T) {
	tests := []struct {
		name   string
		assets Assets
		want   widget.FontHandle
	}{
		{name: "bold", assets: Assets{Font: 1, BoldFont: 3, Cursor: 2, SlideInStep: 40}, want: 3},
		{name: "no bold face", assets: Assets{Font: 1, Cursor: 2, SlideInStep: 40}, want: 1},
	}

	if err := i18n.Init(); err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewTitleScreen(tt.assets)
			if err != nil {
				t.Fatal(err)
			}

			canvas := &countingCanvas{}
			s.Render(widget.NewDrawContext(canvas, widget.DefaultRenderConfig(), widget.DefaultTheme()))
			if got := canvas.fonts["7-Gears"]; got != tt.want {
				t.Errorf("heading font = %d, want %d", got, tt.want)
			}
			if got := canvas.fonts["Continue"]; got != 1 {
				t.Errorf("entry font = %d, want the regular face", got)
			}
		})
	}
}
