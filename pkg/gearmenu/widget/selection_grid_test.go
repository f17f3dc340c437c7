package widget

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/input"
	"github.com/sevengears/gearmenu/pkg/gearmenu/layout"
)

func newSaveGrid(t *testing.T) *SelectionGrid {
	t.Helper()

	grid, err := NewSelectionGrid(5, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		if err := grid.SetCellWidget(i%5, i/5, NewLabel(fmt.Sprintf("Save %d", i+1), 1)); err != nil {
			t.Fatal(err)
		}
	}
	return grid
}

func TestSelectionGridNavigationScenario(t *testing.T) {
	grid := newSaveGrid(t)
	var f input.Frame

	tap := func(button constants.VirtualButton) {
		f.Advance(input.SnapshotOf(button))
		grid.HandleInput(f)
		f.Advance(input.Snapshot{})
		grid.HandleInput(f)
	}

	if row, col := grid.Selection(); row != 0 || col != 0 {
		t.Fatalf("initial selection = (%d, %d)", row, col)
	}

	for i := 0; i < 4; i++ {
		tap(constants.VirtualButtonRight)
	}
	if row, col := grid.Selection(); row != 0 || col != 4 {
		t.Fatalf("after 4x right = (%d, %d), want (0, 4)", row, col)
	}

	tap(constants.VirtualButtonRight)
	if row, col := grid.Selection(); row != 0 || col != 0 {
		t.Fatalf("after 5x right = (%d, %d), want (0, 0)", row, col)
	}

	tap(constants.VirtualButtonDown)
	if row, col := grid.Selection(); row != 1 || col != 0 {
		t.Fatalf("after down = (%d, %d), want (1, 0)", row, col)
	}

	cell := grid.Table().SelectedCell()
	if label, ok := cell.Child().(*Label); !ok || label.Text != "Save 6" {
		t.Errorf("selected cell child = %#v, want Save 6 label", cell.Child())
	}
}

func TestSelectionGridRendersLabelsInsideBorder(t *testing.T) {
	grid := newSaveGrid(t)
	canvas := newRecordingCanvas()

	grid.Render(newTestContext(canvas), layout.Rect{X: 100, Y: 250, W: 600, H: 90})

	texts := canvas.ops("text")
	if len(texts) != 20 {
		t.Fatalf("expected 10 labels x 2 passes, got %d", len(texts))
	}
	for _, call := range texts {
		if call.x < 110 || call.y < 250 {
			t.Errorf("text %q drawn at (%v, %v) outside the window", call.text, call.x, call.y)
		}
	}
	if got := len(canvas.ops("image")); got != 1 {
		t.Errorf("expected one cursor, got %d", got)
	}
}

func TestSelectionGridGetCellBounds(t *testing.T) {
	grid := newSaveGrid(t)

	if _, err := grid.GetCell(5, 0); !errors.Is(err, ErrCellOutOfRange) {
		t.Errorf("GetCell(5, 0) error = %v", err)
	}

	grid.SetChild(NewLabel("replaced", 1))
	if grid.HandleInput(press(constants.VirtualButtonRight)) {
		t.Error("input should be ignored once the table is detached")
	}
	if _, err := grid.GetCell(0, 0); !errors.Is(err, ErrCellOutOfRange) {
		t.Errorf("GetCell on detached grid error = %v", err)
	}
}
