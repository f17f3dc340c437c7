package widget

import (
	"fmt"

	"github.com/sevengears/gearmenu/pkg/gearmenu/input"
)

// SelectionGrid is a bordered window holding a navigable table of cells.
// The window owns the table; the grid reaches it through the window's child slot.
type SelectionGrid struct {
	Window
}

func NewSelectionGrid(cols, rows int, cursor ImageHandle) (*SelectionGrid, error) {
	table, err := NewTableLayout(cols, rows, cursor)
	if err != nil {
		return nil, fmt.Errorf("new selection grid: %w", err)
	}
	g := &SelectionGrid{}
	g.Window = *NewWindow(table)
	return g, nil
}

// Table returns the grid's table, or nil if the window's child was replaced.
func (g *SelectionGrid) Table() *TableLayout {
	t, _ := g.Child().(*TableLayout)
	return t
}

func (g *SelectionGrid) GetCell(x, y int) (*Cell, error) {
	t := g.Table()
	if t == nil {
		return nil, fmt.Errorf("cell (%d, %d): %w", x, y, ErrCellOutOfRange)
	}
	return t.Cell(x, y)
}

// SetCellWidget attaches w to the cell at column x, row y.
func (g *SelectionGrid) SetCellWidget(x, y int, w Widget) error {
	cell, err := g.GetCell(x, y)
	if err != nil {
		return err
	}
	cell.SetChild(w)
	return nil
}

func (g *SelectionGrid) HandleInput(f input.Frame) bool {
	t := g.Table()
	if t == nil {
		return false
	}
	return t.HandleInput(f)
}

func (g *SelectionGrid) Selection() (row, col int) {
	t := g.Table()
	if t == nil {
		return 0, 0
	}
	return t.Selection()
}
