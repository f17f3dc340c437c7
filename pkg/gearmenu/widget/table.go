package widget

import (
	"fmt"

	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/input"
	"github.com/sevengears/gearmenu/pkg/gearmenu/layout"
)

// Cell is a container that claims a share of its row's width and its column's height.
type Cell struct {
	Container
	WidthPercent  float64
	HeightPercent float64
}

func (c *Cell) SetShare(widthPercent, heightPercent float64) {
	c.WidthPercent = widthPercent
	c.HeightPercent = heightPercent
}

// TableLayout partitions its rectangle into a fixed grid of cells. A cell's offset is
// the sum of the shares declared by the cells before it in its row (x) and column (y).
// Shares are not validated: shares that do not add up to 100 leave gaps or overlap.
//
// The embedded Container is an overlay rendered after the cells.
type TableLayout struct {
	Container
	cols, rows int
	cells      []Cell

	cursor     ImageHandle
	CursorSize float64
	nav        Navigator
}

func NewTableLayout(cols, rows int, cursor ImageHandle) (*TableLayout, error) {
	nav, err := NewNavigator(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("new table layout: %w", err)
	}

	t := &TableLayout{
		cols:       cols,
		rows:       rows,
		cells:      make([]Cell, cols*rows),
		cursor:     cursor,
		CursorSize: constants.CursorSize,
		nav:        nav,
	}
	for i := range t.cells {
		t.cells[i].SetShare(100/float64(cols), 100/float64(rows))
	}
	return t, nil
}

// Cell returns the cell at column x, row y.
func (t *TableLayout) Cell(x, y int) (*Cell, error) {
	if x < 0 || x >= t.cols || y < 0 || y >= t.rows {
		return nil, fmt.Errorf("cell (%d, %d) in %dx%d table: %w", x, y, t.cols, t.rows, ErrCellOutOfRange)
	}
	return &t.cells[y*t.cols+x], nil
}

// SetCursor changes the cursor image. NoImage hides the cursor.
func (t *TableLayout) SetCursor(handle ImageHandle) {
	t.cursor = handle
}

func (t *TableLayout) Selection() (row, col int) {
	return t.nav.Position()
}

func (t *TableLayout) Select(row, col int) error {
	return t.nav.MoveTo(row, col)
}

// SelectedCell returns the cell under the cursor.
func (t *TableLayout) SelectedCell() *Cell {
	row, col := t.nav.Position()
	return &t.cells[row*t.cols+col]
}

// HandleInput advances the cursor from the frame's directional rising edges.
func (t *TableLayout) HandleInput(f input.Frame) bool {
	return t.nav.HandleInput(f)
}

// Layout computes the absolute rectangle of every cell inside r, in row-major order.
func (t *TableLayout) Layout(r layout.Rect) []layout.Rect {
	rects := make([]layout.Rect, len(t.cells))
	columnOffsets := make([]float64, t.cols)

	for row := 0; row < t.rows; row++ {
		rowOffset := 0.0
		for col := 0; col < t.cols; col++ {
			cell := &t.cells[row*t.cols+col]
			rects[row*t.cols+col] = r.Sub(rowOffset, columnOffsets[col], cell.WidthPercent, cell.HeightPercent)
			rowOffset += cell.WidthPercent
			columnOffsets[col] += cell.HeightPercent
		}
	}
	return rects
}

// Normalize rescales each row's widths and each column's heights so they sum to 100.
// Rows or columns whose shares sum to zero are left untouched.
func (t *TableLayout) Normalize() {
	for row := 0; row < t.rows; row++ {
		sum := 0.0
		for col := 0; col < t.cols; col++ {
			sum += t.cells[row*t.cols+col].WidthPercent
		}
		if sum == 0 {
			continue
		}
		for col := 0; col < t.cols; col++ {
			c := &t.cells[row*t.cols+col]
			c.WidthPercent = layout.ToPercent(c.WidthPercent, sum)
		}
	}

	for col := 0; col < t.cols; col++ {
		sum := 0.0
		for row := 0; row < t.rows; row++ {
			sum += t.cells[row*t.cols+col].HeightPercent
		}
		if sum == 0 {
			continue
		}
		for row := 0; row < t.rows; row++ {
			c := &t.cells[row*t.cols+col]
			c.HeightPercent = layout.ToPercent(c.HeightPercent, sum)
		}
	}
}

// cursorRect places the cursor just left of the cell, centered vertically.
func (t *TableLayout) cursorRect(cell layout.Rect) layout.Rect {
	return layout.Rect{
		X: cell.X - t.CursorSize,
		Y: cell.Y + (cell.H-t.CursorSize)/2,
		W: t.CursorSize,
		H: t.CursorSize,
	}
}

func (t *TableLayout) Render(dc *DrawContext, r layout.Rect) {
	if r.Empty() {
		return
	}

	selRow, selCol := t.nav.Position()
	for i, cellRect := range t.Layout(r) {
		t.cells[i].Render(dc, cellRect)

		if t.cursor == NoImage {
			continue
		}
		if i/t.cols == selRow && i%t.cols == selCol {
			cursor := Image{Handle: t.cursor}
			cursor.Render(dc, t.cursorRect(cellRect))
		}
	}

	t.Container.Render(dc, r)
}
