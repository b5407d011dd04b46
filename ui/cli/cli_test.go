package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"canvaschess/src"
	"canvaschess/src/autoplay"
	"canvaschess/src/base"
	"canvaschess/src/logx"
	"canvaschess/src/render/record"
	"canvaschess/src/testutil"
)

func newCLI(t *testing.T, opts src.Options, input string) (*CLIProcessing, *src.Game, *bytes.Buffer) {
	t.Helper()
	surface := record.New()
	game, err := src.NewGame(surface, opts, logx.NewNop())
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, game.Start())

	var out bytes.Buffer
	c := NewCLI(game, surface, logx.NewNop())
	c.SetIO(strings.NewReader(input), &out)
	return c, game, &out
}

func TestLineModeMoves(t *testing.T) {
	c, game, out := newCLI(t, src.Options{}, "e2e4\ne7\ne5\nhistory\nquit\nd2d4\n")
	testutil.AssertNoError(t, c.Run(context.Background()))

	testutil.AssertEqual(t, game.History(), []string{"e4", "e5"})
	testutil.AssertTrue(t, strings.Contains(out.String(), "Moves: e4 e5"))
	testutil.AssertTrue(t, strings.Contains(out.String(), "White's Turn"))
}

func TestLineModePromotion(t *testing.T) {
	c, game, out := newCLI(t, src.Options{Position: "8/4P3/8/8/8/8/k7/4K3 w - - 0 1"}, "e7e8\nn\n")
	testutil.AssertNoError(t, c.Run(context.Background()))

	testutil.AssertTrue(t, strings.Contains(out.String(), "Promotion: [n]"))
	p, ok := game.Controller().Registry().Get(base.MustParseSquare("e8"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, p.Kind, base.Knight)
}

func TestCommands(t *testing.T) {
	c, game, out := newCLI(t, src.Options{}, "")
	ctx := context.Background()

	testutil.AssertFalse(t, c.Exec(ctx, "fen 8/8/8 w - - 0 1"))
	testutil.AssertTrue(t, strings.Contains(out.String(), "invalid FEN"))
	testutil.AssertEqual(t, game.FEN(), base.FEN_START_GAME)

	testutil.AssertFalse(t, c.Exec(ctx, "rotate"))
	testutil.AssertEqual(t, game.Orientation(), base.Black)

	testutil.AssertFalse(t, c.Exec(ctx, "q"))
	testutil.AssertTrue(t, strings.Contains(out.String(), "no promotion pending"))

	testutil.AssertFalse(t, c.Exec(ctx, "random"))
	testutil.AssertEqual(t, len(game.History()), 1)

	testutil.AssertFalse(t, c.Exec(ctx, "z9"))
	testutil.AssertTrue(t, strings.Contains(out.String(), "unknown command: z9"))

	testutil.AssertFalse(t, c.Exec(ctx, "reset"))
	testutil.AssertEqual(t, game.FEN(), base.FEN_START_GAME)
	testutil.AssertTrue(t, c.Exec(ctx, "exit"))
}

func TestOpponentAnswers(t *testing.T) {
	c, game, out := newCLI(t, src.Options{CanPlay: src.PlayWhite}, "")
	c.SetOpponent(autoplay.NewRandom(3), base.Black)

	testutil.AssertFalse(t, c.Exec(context.Background(), "g1f3"))
	testutil.AssertEqual(t, len(game.History()), 2)
	testutil.AssertEqual(t, game.Turn(), base.White)
	testutil.AssertTrue(t, strings.Contains(out.String(), "random plays"))
}

func TestRenderFollowsOrientation(t *testing.T) {
	surface := record.New()
	game, err := src.NewGame(surface, src.Options{Orientation: base.Black}, logx.NewNop())
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, game.Start())

	var out bytes.Buffer
	Render(&out, surface, game.Context(), nil)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	testutil.AssertEqual(t, strings.TrimSpace(lines[0]), "h  g  f  e  d  c  b  a")
	testutil.AssertTrue(t, strings.HasPrefix(lines[1], "1 "))
	testutil.AssertEqual(t, strings.Count(out.String(), "♙"), 8)
	testutil.AssertEqual(t, strings.Count(out.String(), "♟"), 8)
}

func TestRandomRefusedWhilePromoting(t *testing.T) {
	c, game, out := newCLI(t, src.Options{Position: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"}, "")
	ctx := context.Background()

	testutil.AssertFalse(t, c.Exec(ctx, "a7a8"))
	testutil.AssertFalse(t, c.Exec(ctx, "random"))
	testutil.AssertTrue(t, strings.Contains(out.String(), "promotion pending"))
	testutil.AssertTrue(t, game.PromotionPending())
	testutil.AssertEqual(t, len(game.History()), 0)

	testutil.AssertFalse(t, c.Exec(ctx, "q"))
	testutil.AssertFalse(t, game.PromotionPending())
	testutil.AssertEqual(t, len(game.History()), 1)
}
