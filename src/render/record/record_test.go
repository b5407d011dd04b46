package record

import (
	"canvaschess/src/base"
	"canvaschess/src/board"
	"canvaschess/src/testutil"
	"testing"
)

func TestSurfaceKeepsLastState(t *testing.T) {
	s := New()
	p := &board.Piece{ID: 1, Kind: base.Knight, Color: base.Black, Square: base.MustParseSquare("g8")}

	s.PlacePiece(p, base.Point{X: 10, Y: 20}, 40)
	s.MovePiece(p, base.Point{X: 30, Y: 60})
	sp, ok := s.Sprite(p)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, sp, Sprite{Kind: base.Knight, Color: base.Black, Center: base.Point{X: 30, Y: 60}, Size: 40})

	s.DrawHighlights([]board.Overlay{{Square: base.MustParseSquare("f6"), Kind: board.HighlightDestination}})
	testutil.AssertEqual(t, s.Highlighted(), map[base.Square]board.HighlightKind{base.MustParseSquare("f6"): board.HighlightDestination})
	s.ClearHighlights()
	testutil.AssertEqual(t, len(s.Highlights()), 0)

	s.ShowPicker(board.PickerView{Title: "Promotion"})
	v, ok := s.Picker()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, v.Title, "Promotion")
	s.HidePicker()
	_, ok = s.Picker()
	testutil.AssertFalse(t, ok)

	s.RemovePiece(p)
	testutil.AssertEqual(t, len(s.Sprites()), 0)
	testutil.AssertEqual(t, len(s.Calls()), 7)
	s.ResetCalls()
	testutil.AssertEqual(t, len(s.Calls()), 0)
}

func TestUntracedSurfaceSkipsCallLog(t *testing.T) {
	s := NewUntraced()
	p := &board.Piece{ID: 1, Kind: base.Pawn, Color: base.White, Square: base.MustParseSquare("e2")}
	s.PlacePiece(p, base.Point{X: 1, Y: 1}, 10)
	s.ClearHighlights()
	testutil.AssertEqual(t, len(s.Calls()), 0)
	testutil.AssertEqual(t, len(s.Sprites()), 1)
}
