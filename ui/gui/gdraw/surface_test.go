package gdraw

import (
	"canvaschess/src/base"
	"canvaschess/src/board"
	"canvaschess/src/testutil"
	"testing"
)

func TestMovedSpriteSlides(t *testing.T) {
	s := NewBoardSurface()
	p := &board.Piece{ID: 7, Kind: base.Pawn, Color: base.White, Square: base.MustParseSquare("e2")}
	s.PlacePiece(p, base.Point{X: 100, Y: 200}, 40)
	testutil.AssertFalse(t, s.IsSliding(p))

	s.MovePiece(p, base.Point{X: 100, Y: 120})
	sp, _ := s.Sprite(p)
	testutil.AssertEqual(t, sp.Center, base.Point{X: 100, Y: 120})
	testutil.AssertEqual(t, s.Position(p, sp), base.Point{X: 100, Y: 200})

	s.Step(slideDuration / 2)
	mid := s.Position(p, sp)
	testutil.AssertTrue(t, mid.Y < 200 && mid.Y > 120)

	s.Step(slideDuration)
	testutil.AssertFalse(t, s.IsSliding(p))
	testutil.AssertEqual(t, s.Position(p, sp), base.Point{X: 100, Y: 120})
}

func TestPlaceAndRemoveStopSlides(t *testing.T) {
	s := NewBoardSurface()
	p := &board.Piece{ID: 1, Kind: base.Rook, Color: base.Black, Square: base.MustParseSquare("h8")}
	s.PlacePiece(p, base.Point{X: 10, Y: 10}, 40)
	s.MovePiece(p, base.Point{X: 50, Y: 10})
	testutil.AssertTrue(t, s.IsSliding(p))

	// resize relayouts with PlacePiece
	s.PlacePiece(p, base.Point{X: 25, Y: 5}, 20)
	testutil.AssertFalse(t, s.IsSliding(p))

	s.MovePiece(p, base.Point{X: 5, Y: 5})
	s.RemovePiece(p)
	testutil.AssertFalse(t, s.IsSliding(p))
	testutil.AssertEqual(t, len(s.Sprites()), 0)
}

func TestEaseOut(t *testing.T) {
	testutil.AssertEqual(t, easeOut(0), 0.0)
	testutil.AssertEqual(t, easeOut(0.5), 0.75)
	testutil.AssertEqual(t, easeOut(2), 1.0)
}
