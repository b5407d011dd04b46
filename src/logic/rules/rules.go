package rules

import (
	"canvaschess/src/base"
	"canvaschess/src/logic/convert/convfen"
)

// Notation is one legal destination as reported by a backend.
// For castling Castle is set and To may be left zero, the landing square
// is resolved against the moving side.
type Notation struct {
	From      base.Square
	To        base.Square
	Promotion base.Kind
	Castle    base.CastleSide
	Flag      base.MoveFlag
	SAN       string
}

func (n Notation) IsPromotion() bool {
	return n.Promotion != base.NoKind
}

type Result struct {
	Move     base.Move
	Captured base.Kind
	SAN      string
	Status   base.GameStatus
}

// Engine owns legality, the board controller only consults it.
type Engine interface {
	MovesFrom(sq base.Square) []Notation
	LegalMoves() []Notation
	ApplyMove(from, to base.Square, promotion base.Kind) (Result, error)
	TurnColor() base.Color
	LoadPosition(fen string) error
	PositionDescriptor() string
	Status() base.GameStatus
	History() []string
	Reset()
}

// InsufficientMaterial reports a dead position: bare kings, a single minor
// piece, or one bishop each on same colored squares.
func InsufficientMaterial(p convfen.Placement) bool {
	var (
		heavy            int
		knights, bishops int
		bishopColors     = map[base.Color][]bool{}
	)

	for idx, cell := range p {
		switch cell.Kind {
		case base.Pawn, base.Rook, base.Queen:
			heavy++
		case base.Knight:
			knights++
		case base.Bishop:
			bishops++
			sq, _ := base.SquareFromIndex(idx)
			bishopColors[cell.Color] = append(bishopColors[cell.Color], sq.IsLight())
		}
	}

	if heavy > 0 {
		return false
	}
	minor := knights + bishops
	if minor <= 1 {
		return true
	}
	if knights == 0 && len(bishopColors[base.White]) == 1 && len(bishopColors[base.Black]) == 1 {
		return bishopColors[base.White][0] == bishopColors[base.Black][0]
	}
	return false
}
