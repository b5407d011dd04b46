package base

import "fmt"

// Square is a board coordinate, File 0..7 is a..h and Rank 0..7 is 1..8.
type Square struct {
	File uint8
	Rank uint8
}

func NewSquare(file, rank int) (Square, error) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Square{}, fmt.Errorf("%w: file %d rank %d", ErrInvalidSquare, file, rank)
	}
	return Square{File: uint8(file), Rank: uint8(rank)}, nil
}

func ParseSquare(s string) (Square, error) {
	// 'a' ~ 'h' to 0-7
	// '1' ~ '8' to 0-7
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Square{File: s[0] - 'a', Rank: s[1] - '1'}, nil
}

func TryParseSquare(s string) (Square, bool) {
	sq, err := ParseSquare(s)
	return sq, err == nil
}

// MustParseSquare panics on malformed input, only for literals
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

func SquareFromIndex(i int) (Square, error) {
	if i < 0 || i >= 64 {
		return Square{}, fmt.Errorf("%w: index %d", ErrInvalidSquare, i)
	}
	return Square{File: uint8(i % 8), Rank: uint8(i / 8)}, nil
}

func (s Square) Index() int {
	return int(s.Rank)*8 + int(s.File)
}

func (s Square) IsValid() bool {
	return s.File < 8 && s.Rank < 8
}

func (s Square) IsLight() bool {
	return (s.File+s.Rank)%2 == 1
}

func (s Square) String() string {
	if !s.IsValid() {
		return "??"
	}
	return string([]byte{'a' + s.File, '1' + s.Rank})
}

// Offset returns the square shifted by df files and dr ranks
func (s Square) Offset(df, dr int) (Square, bool) {
	f, r := int(s.File)+df, int(s.Rank)+dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return Square{}, false
	}
	return Square{File: uint8(f), Rank: uint8(r)}, true
}

// HomeRank is the back rank of the color: 0 for white, 7 for black
func HomeRank(c Color) uint8 {
	if c == Black {
		return 7
	}
	return 0
}
