package notnil

import (
	"strings"
	"testing"

	"canvaschess/src/base"
	"canvaschess/src/logic/rules"
	"canvaschess/src/logx"
	"canvaschess/src/testutil"
)

func sq(s string) base.Square {
	return base.MustParseSquare(s)
}

func targets(ns []rules.Notation) map[string]bool {
	out := map[string]bool{}
	for _, n := range ns {
		out[n.To.String()] = true
	}
	return out
}

func TestMovesFromStart(t *testing.T) {
	e := New(logx.NewNop())
	got := targets(e.MovesFrom(sq("e2")))
	testutil.AssertEqual(t, got, map[string]bool{"e3": true, "e4": true})

	for _, n := range e.MovesFrom(sq("e2")) {
		testutil.AssertFalse(t, n.IsPromotion(), n.SAN)
		if n.To == sq("e4") {
			testutil.AssertTrue(t, n.Flag.Has(base.FlagDoublePush))
		}
	}
	testutil.AssertEqual(t, len(e.MovesFrom(sq("e4"))), 0)
	testutil.AssertEqual(t, len(e.LegalMoves()), 20)
}

func TestApplyMoveAndTurn(t *testing.T) {
	e := New(logx.NewNop())
	res, err := e.ApplyMove(sq("e2"), sq("e4"), base.NoKind)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.SAN, "e4")
	testutil.AssertEqual(t, e.TurnColor(), base.Black)
	testutil.AssertEqual(t, e.History(), []string{"e4"})
	testutil.AssertTrue(t, strings.HasPrefix(e.PositionDescriptor(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq"), e.PositionDescriptor())

	_, err = e.ApplyMove(sq("e2"), sq("e4"), base.NoKind)
	testutil.AssertErrorIs(t, err, base.ErrIllegalMove)
}

func TestCastleNotation(t *testing.T) {
	e := New(logx.NewNop())
	testutil.AssertNoError(t, e.LoadPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"))

	var king, queen bool
	for _, n := range e.MovesFrom(sq("e1")) {
		switch n.Castle {
		case base.KingSide:
			king = true
			testutil.AssertEqual(t, n.To, sq("g1"))
		case base.QueenSide:
			queen = true
			testutil.AssertEqual(t, n.To, sq("c1"))
		}
	}
	testutil.AssertTrue(t, king && queen)

	res, err := e.ApplyMove(sq("e1"), sq("g1"), base.NoKind)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, res.Move.Flag.Has(base.FlagKingCastle))
	testutil.AssertEqual(t, res.SAN, "O-O")
}

func TestEnPassantFlag(t *testing.T) {
	e := New(logx.NewNop())
	testutil.AssertNoError(t, e.LoadPosition("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2"))
	res, err := e.ApplyMove(sq("e5"), sq("d6"), base.NoKind)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, res.Move.Flag.Has(base.FlagEnPassant))
	testutil.AssertEqual(t, res.Captured, base.Pawn)
}

func TestPromotionCandidates(t *testing.T) {
	e := New(logx.NewNop())
	testutil.AssertNoError(t, e.LoadPosition("4k3/P7/8/8/8/8/8/4K3 w - - 0 1"))

	kinds := map[base.Kind]bool{}
	for _, n := range e.MovesFrom(sq("a7")) {
		testutil.AssertTrue(t, n.IsPromotion())
		testutil.AssertTrue(t, n.Flag.Has(base.FlagPromotion))
		kinds[n.Promotion] = true
	}
	testutil.AssertEqual(t, len(kinds), 4)

	_, err := e.ApplyMove(sq("a7"), sq("a8"), base.NoKind)
	testutil.AssertErrorIs(t, err, base.ErrIllegalMove, "promotion needs a kind")

	res, err := e.ApplyMove(sq("a7"), sq("a8"), base.Queen)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Move.Promotion, base.Queen)
	testutil.AssertEqual(t, res.Status, base.Check)
}

func TestStatus(t *testing.T) {
	e := New(logx.NewNop())
	// fool's mate
	for _, m := range [][2]string{{"f2", "f3"}, {"e7", "e5"}, {"g2", "g4"}, {"d8", "h4"}} {
		_, err := e.ApplyMove(sq(m[0]), sq(m[1]), base.NoKind)
		testutil.AssertNoError(t, err)
	}
	testutil.AssertEqual(t, e.Status(), base.Checkmate)

	testutil.AssertNoError(t, e.LoadPosition("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"))
	testutil.AssertEqual(t, e.Status(), base.Stalemate)
}

func TestLoadPositionRejects(t *testing.T) {
	e := New(logx.NewNop())
	err := e.LoadPosition("not a fen")
	testutil.AssertErrorIs(t, err, base.ErrInvalidPosition)
	testutil.AssertEqual(t, e.PositionDescriptor(), base.FEN_START_GAME)
}
