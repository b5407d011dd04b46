package base

import (
	"fmt"
	"strings"
)

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// piece placement part of FEN_START_GAME
const PLACEMENT_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func ColorFromString(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("unknown color %q", s)
}

type Kind uint8

const (
	NoKind Kind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// order of the promotion picker options
var PromotionKinds = [4]Kind{Knight, Bishop, Rook, Queen}

func (k Kind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

func (k Kind) IsPromotable() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

type GameStatus uint8

const (
	Pass GameStatus = iota
	Check
	Checkmate
	Stalemate
	Draw
)

func (gs GameStatus) String() string {
	switch gs {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return "pass"
	}
}

func (gs GameStatus) IsOver() bool {
	return gs == Checkmate || gs == Stalemate || gs == Draw
}

func ConvertPieceFromRune(r rune) (Kind, Color, bool) {
	c := White
	if r >= 'a' && r <= 'z' {
		c = Black
		r -= 'a' - 'A'
	}
	switch r {
	case 'K':
		return King, c, true
	case 'Q':
		return Queen, c, true
	case 'R':
		return Rook, c, true
	case 'B':
		return Bishop, c, true
	case 'N':
		return Knight, c, true
	case 'P':
		return Pawn, c, true
	}
	return NoKind, White, false
}

func ConvertRuneFromPiece(k Kind, c Color) rune {
	var r rune
	switch k {
	case King:
		r = 'K'
	case Queen:
		r = 'Q'
	case Rook:
		r = 'R'
	case Bishop:
		r = 'B'
	case Knight:
		r = 'N'
	case Pawn:
		r = 'P'
	default:
		return 0
	}
	if c == Black {
		r += 'a' - 'A'
	}
	return r
}

// KindFromLetter accepts q/r/b/n in either case, used for promotion input
func KindFromLetter(s string) (Kind, bool) {
	if len(s) != 1 {
		return NoKind, false
	}
	k, _, ok := ConvertPieceFromRune(rune(s[0]))
	if !ok || !k.IsPromotable() {
		return NoKind, false
	}
	return k, true
}
