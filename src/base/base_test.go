package base_test

import (
	"testing"

	"canvaschess/src/base"
	"canvaschess/src/testutil"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want base.Square
	}{
		{"a1", base.Square{File: 0, Rank: 0}},
		{"e4", base.Square{File: 4, Rank: 3}},
		{"h8", base.Square{File: 7, Rank: 7}},
	}
	for _, tt := range tests {
		got, err := base.ParseSquare(tt.in)
		testutil.AssertNoError(t, err, tt.in)
		testutil.AssertEqual(t, got, tt.want, tt.in)
		testutil.AssertEqual(t, got.String(), tt.in)
	}
}

func TestParseSquareRejects(t *testing.T) {
	for _, in := range []string{"", "e", "e9", "i1", "E4", "e0", "e44", " e4"} {
		_, err := base.ParseSquare(in)
		testutil.AssertErrorIs(t, err, base.ErrInvalidSquare, in)
		_, ok := base.TryParseSquare(in)
		testutil.AssertFalse(t, ok, in)
	}
}

func TestSquareIndexRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		sq, err := base.SquareFromIndex(i)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, sq.Index(), i)
	}
	_, err := base.SquareFromIndex(64)
	testutil.AssertErrorIs(t, err, base.ErrInvalidSquare)
}

func TestSquareOffset(t *testing.T) {
	e4 := base.MustParseSquare("e4")
	got, ok := e4.Offset(0, -1)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, got.String(), "e3")

	_, ok = base.MustParseSquare("h8").Offset(1, 0)
	testutil.AssertFalse(t, ok)
}

func TestMoveFlag(t *testing.T) {
	f := base.FlagCapture | base.FlagPromotion
	testutil.AssertTrue(t, f.Has(base.FlagPromotion))
	testutil.AssertFalse(t, f.IsCastle())
	testutil.AssertEqual(t, f.String(), "capture|promotion")
	testutil.AssertEqual(t, base.FlagNormal.String(), "normal")
	testutil.AssertTrue(t, base.KingSide.Flag().IsCastle())
}

func TestPieceRunes(t *testing.T) {
	for _, r := range "KQRBNPkqrbnp" {
		k, c, ok := base.ConvertPieceFromRune(r)
		testutil.AssertTrue(t, ok, string(r))
		testutil.AssertEqual(t, base.ConvertRuneFromPiece(k, c), r)
	}
	_, _, ok := base.ConvertPieceFromRune('x')
	testutil.AssertFalse(t, ok)

	k, ok := base.KindFromLetter("q")
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, k, base.Queen)
	_, ok = base.KindFromLetter("k")
	testutil.AssertFalse(t, ok)
}

func TestRectContainsIsStrict(t *testing.T) {
	r := base.Rect{X: 0, Y: 0, W: 10, H: 10}
	testutil.AssertTrue(t, r.Contains(base.Point{X: 5, Y: 5}))
	testutil.AssertFalse(t, r.Contains(base.Point{X: 0, Y: 5}))
	testutil.AssertFalse(t, r.Contains(base.Point{X: 10, Y: 5}))
	testutil.AssertEqual(t, r.Center(), base.Point{X: 5, Y: 5})
}
