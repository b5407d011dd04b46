package base

import "errors"

var (
	ErrInvalidSquare    = errors.New("invalid square")
	ErrIllegalMove      = errors.New("illegal move")
	ErrAssetUnavailable = errors.New("asset unavailable")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrOutsideBoard     = errors.New("point outside board")
	ErrSquareOccupied   = errors.New("square occupied")
	ErrEmptySquare      = errors.New("square is empty")
)
