package base

import "strings"

// MoveFlag is a bit set; the engine reports capture and promotion together
type MoveFlag uint8

const (
	FlagNormal     MoveFlag = 0
	FlagDoublePush MoveFlag = 1 << iota
	FlagEnPassant
	FlagCapture
	FlagPromotion
	FlagKingCastle
	FlagQueenCastle
)

func (f MoveFlag) Has(x MoveFlag) bool {
	return f&x != 0
}

func (f MoveFlag) IsCastle() bool {
	return f&(FlagKingCastle|FlagQueenCastle) != 0
}

func (f MoveFlag) String() string {
	if f == FlagNormal {
		return "normal"
	}
	var parts []string
	names := []struct {
		flag MoveFlag
		name string
	}{
		{FlagDoublePush, "double-push"},
		{FlagEnPassant, "en-passant"},
		{FlagCapture, "capture"},
		{FlagPromotion, "promotion"},
		{FlagKingCastle, "king-castle"},
		{FlagQueenCastle, "queen-castle"},
	}
	for _, n := range names {
		if f.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

type CastleSide uint8

const (
	NoCastle CastleSide = iota
	KingSide
	QueenSide
)

func (cs CastleSide) Flag() MoveFlag {
	switch cs {
	case KingSide:
		return FlagKingCastle
	case QueenSide:
		return FlagQueenCastle
	}
	return FlagNormal
}

type Move struct {
	From      Square
	To        Square
	Flag      MoveFlag
	Promotion Kind
}

func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(ConvertRuneFromPiece(m.Promotion, Black))
	}
	return s
}
