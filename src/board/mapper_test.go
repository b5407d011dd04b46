package board

import (
	"testing"

	"canvaschess/src/base"
	"canvaschess/src/testutil"
)

func TestSquarePixelRoundTrip(t *testing.T) {
	for _, bottom := range []base.Color{base.White, base.Black} {
		for _, size := range []float64{1, 45, 63.7, 80} {
			for i := 0; i < 64; i++ {
				sq, _ := base.SquareFromIndex(i)
				pt := SquareToPixelCenter(sq, size, bottom)
				got, err := PixelToSquare(pt, size, bottom)
				testutil.AssertNoError(t, err)
				if got != sq {
					t.Fatalf("%s size %v bottom %s: got %s", sq, size, bottom, got)
				}
			}
		}
	}
}

func TestOrientationCorners(t *testing.T) {
	const size = 10
	bottomLeft := base.Point{X: 5, Y: 75}
	topRight := base.Point{X: 75, Y: 5}

	tests := []struct {
		bottom base.Color
		pt     base.Point
		want   string
	}{
		{base.White, bottomLeft, "a1"},
		{base.White, topRight, "h8"},
		{base.Black, bottomLeft, "h8"},
		{base.Black, topRight, "a1"},
	}
	for _, tt := range tests {
		got, err := PixelToSquare(tt.pt, size, tt.bottom)
		testutil.AssertNoError(t, err)
		testutil.AssertEqualf(t, got.String(), tt.want, "bottom %s", tt.bottom)
	}
}

func TestPixelToSquareOutside(t *testing.T) {
	for _, pt := range []base.Point{{X: -1, Y: 5}, {X: 5, Y: -0.1}, {X: 80, Y: 5}, {X: 5, Y: 80}} {
		_, err := PixelToSquare(pt, 10, base.White)
		testutil.AssertErrorIs(t, err, base.ErrOutsideBoard)
	}
	_, err := PixelToSquare(base.Point{X: 1, Y: 1}, 0, base.White)
	testutil.AssertErrorIs(t, err, base.ErrOutsideBoard)
}

func TestCastleDestination(t *testing.T) {
	tests := []struct {
		side  base.CastleSide
		mover base.Color
		want  string
	}{
		{base.KingSide, base.White, "g1"},
		{base.QueenSide, base.White, "c1"},
		{base.KingSide, base.Black, "g8"},
		{base.QueenSide, base.Black, "c8"},
	}
	for _, tt := range tests {
		got, err := CastleDestination(tt.side, tt.mover)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got.String(), tt.want)
	}
	_, err := CastleDestination(base.NoCastle, base.White)
	testutil.AssertErrorIs(t, err, base.ErrInvalidSquare)
}

func TestContextGeometry(t *testing.T) {
	ctx := NewContext(800, base.White)
	testutil.AssertEqual(t, ctx.SquareSize, 80.0)
	testutil.AssertEqual(t, ctx.Center(base.MustParseSquare("a8")), base.Point{X: 120, Y: 120})
	testutil.AssertEqual(t, ctx.Center(base.MustParseSquare("a1")), base.Point{X: 120, Y: 680})

	sq, err := ctx.SquareAt(base.Point{X: 121, Y: 679})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sq.String(), "a1")

	_, err = ctx.SquareAt(base.Point{X: 40, Y: 40})
	testutil.AssertErrorIs(t, err, base.ErrOutsideBoard)
	testutil.AssertFalse(t, ctx.IsWithin(base.Point{X: 40, Y: 40}))

	ctx.Rotate()
	testutil.AssertEqual(t, ctx.Bottom, base.Black)
	testutil.AssertEqual(t, ctx.Center(base.MustParseSquare("h8")), base.Point{X: 120, Y: 680})

	files, ranks := ctx.Labels()
	testutil.AssertEqual(t, files[0], "h")
	testutil.AssertEqual(t, ranks[0], "1")
}
