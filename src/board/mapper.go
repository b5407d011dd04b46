package board

import (
	"canvaschess/src/base"
	"fmt"
	"math"
)

// grid position of a square: column from the left, row from the top
func cell(sq base.Square, bottom base.Color) (col, row int) {
	if bottom == base.Black {
		return 7 - int(sq.File), int(sq.Rank)
	}
	return int(sq.File), 7 - int(sq.Rank)
}

// SquareBounds is the square's rectangle in grid-local pixels
func SquareBounds(sq base.Square, squareSize float64, bottom base.Color) base.Rect {
	col, row := cell(sq, bottom)
	return base.Rect{
		X: float64(col) * squareSize,
		Y: float64(row) * squareSize,
		W: squareSize,
		H: squareSize,
	}
}

func SquareToPixelCenter(sq base.Square, squareSize float64, bottom base.Color) base.Point {
	return SquareBounds(sq, squareSize, bottom).Center()
}

func PixelToSquare(pt base.Point, squareSize float64, bottom base.Color) (base.Square, error) {
	if squareSize <= 0 {
		return base.Square{}, fmt.Errorf("%w: square size %v", base.ErrOutsideBoard, squareSize)
	}
	side := squareSize * 8
	if pt.X < 0 || pt.Y < 0 || pt.X >= side || pt.Y >= side {
		return base.Square{}, fmt.Errorf("%w: (%.1f, %.1f)", base.ErrOutsideBoard, pt.X, pt.Y)
	}
	col := int(math.Floor(pt.X / squareSize))
	row := int(math.Floor(pt.Y / squareSize))
	if bottom == base.Black {
		return base.NewSquare(7-col, row)
	}
	return base.NewSquare(col, 7-row)
}

// CastleDestination is the king's landing square. The rank is the home rank
// of the side making the move, the turn has not flipped yet.
func CastleDestination(side base.CastleSide, mover base.Color) (base.Square, error) {
	rank := base.HomeRank(mover)
	switch side {
	case base.KingSide:
		return base.Square{File: 6, Rank: rank}, nil
	case base.QueenSide:
		return base.Square{File: 2, Rank: rank}, nil
	}
	return base.Square{}, fmt.Errorf("%w: not a castle", base.ErrInvalidSquare)
}

// castleRook returns the rook's origin and landing squares for a castle on rank
func castleRook(flag base.MoveFlag, rank uint8) (from, to base.Square, ok bool) {
	switch {
	case flag.Has(base.FlagKingCastle):
		return base.Square{File: 7, Rank: rank}, base.Square{File: 5, Rank: rank}, true
	case flag.Has(base.FlagQueenCastle):
		return base.Square{File: 0, Rank: rank}, base.Square{File: 3, Rank: rank}, true
	}
	return base.Square{}, base.Square{}, false
}
