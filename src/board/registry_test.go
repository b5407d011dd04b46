package board

import (
	"testing"

	"canvaschess/src/base"
	"canvaschess/src/testutil"
)

func TestRegistryResetStart(t *testing.T) {
	r := NewRegistry()
	testutil.AssertNoError(t, r.Reset(base.FEN_START_GAME))
	testutil.AssertEqual(t, r.Len(), 32)
	testutil.AssertEqual(t, r.Placement(), base.PLACEMENT_START_GAME)

	p, ok := r.Get(base.MustParseSquare("e1"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, p.Kind, base.King)
	testutil.AssertEqual(t, p.Color, base.White)
	testutil.AssertEqual(t, p.Square.String(), "e1")

	pieces := r.Pieces()
	testutil.AssertEqual(t, pieces[0].Square.String(), "a1")
	testutil.AssertEqual(t, pieces[len(pieces)-1].Square.String(), "h8")
}

func TestRegistryResetDisposesOld(t *testing.T) {
	r := NewRegistry()
	testutil.AssertNoError(t, r.Reset(base.PLACEMENT_START_GAME))
	old, _ := r.Get(base.MustParseSquare("d1"))

	testutil.AssertNoError(t, r.Reset("4k3/8/8/8/8/8/8/4K3"))
	testutil.AssertTrue(t, old.Disposed)
	testutil.AssertEqual(t, r.Len(), 2)
}

func TestRegistryResetInvalidKeepsState(t *testing.T) {
	r := NewRegistry()
	testutil.AssertNoError(t, r.Reset(base.PLACEMENT_START_GAME))
	err := r.Reset("8/8/8")
	testutil.AssertErrorIs(t, err, base.ErrInvalidPosition)
	testutil.AssertEqual(t, r.Len(), 32)
}

func TestRegistryMove(t *testing.T) {
	r := NewRegistry()
	testutil.AssertNoError(t, r.Reset(base.PLACEMENT_START_GAME))
	e2, e4, d2 := base.MustParseSquare("e2"), base.MustParseSquare("e4"), base.MustParseSquare("d2")

	p, _ := r.Get(e2)
	testutil.AssertNoError(t, r.Move(e2, e4))
	_, ok := r.Get(e2)
	testutil.AssertFalse(t, ok)
	got, _ := r.Get(e4)
	testutil.AssertTrue(t, got == p, "identity kept")
	testutil.AssertEqual(t, p.Square, e4)

	testutil.AssertErrorIs(t, r.Move(d2, e4), base.ErrSquareOccupied)
	testutil.AssertErrorIs(t, r.Move(e2, e4), base.ErrEmptySquare)
}

func TestRegistryAddRemove(t *testing.T) {
	r := NewRegistry()
	a1 := base.MustParseSquare("a1")
	p, err := r.Spawn(a1, base.Rook, base.White)
	testutil.AssertNoError(t, err)
	testutil.AssertErrorIs(t, r.Add(a1, &Piece{Kind: base.Knight}), base.ErrSquareOccupied)
	testutil.AssertErrorIs(t, r.Add(base.Square{File: 9}, &Piece{}), base.ErrInvalidSquare)

	got, ok := r.Remove(a1)
	testutil.AssertTrue(t, ok)
	testutil.AssertTrue(t, got == p)
	_, ok = r.Remove(a1)
	testutil.AssertFalse(t, ok)
	testutil.AssertEqual(t, r.Placement(), "8/8/8/8/8/8/8/8")
}
