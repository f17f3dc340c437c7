package widget

import (
	"fmt"

	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/input"
)

// Navigator is the cursor of a rows x cols grid. Each axis wraps around
// independently and only moves on the frame a direction button goes down.
type Navigator struct {
	rows, cols int
	row, col   int
}

func NewNavigator(rows, cols int) (Navigator, error) {
	if rows < 1 || cols < 1 {
		return Navigator{}, fmt.Errorf("navigator %dx%d: %w", cols, rows, ErrInvalidDimensions)
	}
	return Navigator{rows: rows, cols: cols}, nil
}

func (n Navigator) Position() (row, col int) {
	return n.row, n.col
}

func (n *Navigator) MoveTo(row, col int) error {
	if row < 0 || row >= n.rows || col < 0 || col >= n.cols {
		return fmt.Errorf("select (%d, %d) in %dx%d grid: %w", row, col, n.cols, n.rows, ErrCellOutOfRange)
	}
	n.row, n.col = row, col
	return nil
}

// Step moves the cursor one cell in the direction of button, wrapping at the edges.
// Non-directional buttons are ignored.
func (n *Navigator) Step(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonRight:
		n.col = (n.col + 1) % n.cols
	case constants.VirtualButtonLeft:
		n.col = (n.col - 1 + n.cols) % n.cols
	case constants.VirtualButtonUp:
		n.row = (n.row - 1 + n.rows) % n.rows
	case constants.VirtualButtonDown:
		n.row = (n.row + 1) % n.rows
	default:
		return false
	}
	return true
}

// HandleInput applies one step for every direction that has a rising edge in f.
// It reports whether any step was taken.
func (n *Navigator) HandleInput(f input.Frame) bool {
	if n.rows == 0 || n.cols == 0 {
		return false
	}
	moved := false
	for b := constants.VirtualButtonUnassigned + 1; b < constants.VirtualButtonCount; b++ {
		if b.IsDirectional() && f.Pressed(b) {
			moved = n.Step(b) || moved
		}
	}
	return moved
}
