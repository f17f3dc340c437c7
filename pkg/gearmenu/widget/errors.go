package widget

import "errors"

var (
	ErrInvalidDimensions = errors.New("table dimensions must be at least 1x1")
	ErrCellOutOfRange    = errors.New("cell index out of range")
)
