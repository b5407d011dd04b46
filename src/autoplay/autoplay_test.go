package autoplay

import (
	"context"
	"testing"
	"time"

	"canvaschess/src/base"
	"canvaschess/src/logic/rules"
	"canvaschess/src/testutil"
)

func TestParseUCI(t *testing.T) {
	tests := []struct {
		in   string
		want Pick
	}{
		{"e2e4", Pick{From: base.MustParseSquare("e2"), To: base.MustParseSquare("e4")}},
		{"e7e8q", Pick{From: base.MustParseSquare("e7"), To: base.MustParseSquare("e8"), Promotion: base.Queen}},
		{"a2a1n", Pick{From: base.MustParseSquare("a2"), To: base.MustParseSquare("a1"), Promotion: base.Knight}},
	}
	for _, tt := range tests {
		got, err := ParseUCI(tt.in)
		testutil.AssertNoError(t, err, tt.in)
		testutil.AssertEqual(t, got, tt.want, tt.in)
		testutil.AssertEqual(t, got.String(), tt.in)
	}

	for _, bad := range []string{"", "e2", "e2e9", "e7e8k", "e7e8qq"} {
		_, err := ParseUCI(bad)
		testutil.AssertTrue(t, err != nil, bad)
	}
}

func TestLevelParams(t *testing.T) {
	testutil.AssertEqual(t, LevelOne.Params(), SearchParams{MaxDepth: 1, MaxTimeMs: 500})
	testutil.AssertEqual(t, Level(0).Params(), LevelOne.Params())
	testutil.AssertEqual(t, Level(42).Params(), LevelTen.Params())
	testutil.AssertEqual(t, LevelFive.Timeout(), 2500*time.Millisecond+HandshakeTimeout)
}

func TestRandomPicksLegal(t *testing.T) {
	e2, e4, g1, f3 := base.MustParseSquare("e2"), base.MustParseSquare("e4"), base.MustParseSquare("g1"), base.MustParseSquare("f3")
	legal := []rules.Notation{{From: e2, To: e4}, {From: g1, To: f3}}

	r := NewRandom(7)
	for i := 0; i < 20; i++ {
		p, err := r.Choose(context.Background(), "", legal)
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, p.Matches(legal), p.String())
	}

	_, err := r.Choose(context.Background(), "", nil)
	testutil.AssertErrorIs(t, err, ErrNoMoves)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Choose(ctx, "", legal)
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestRandomIsSeeded(t *testing.T) {
	var legal []rules.Notation
	for i := 0; i < 8; i++ {
		from, _ := base.NewSquare(i, 1)
		to, _ := base.NewSquare(i, 2)
		legal = append(legal, rules.Notation{From: from, To: to})
	}
	a, b := NewRandom(99), NewRandom(99)
	for i := 0; i < 10; i++ {
		pa, _ := a.Choose(context.Background(), "", legal)
		pb, _ := b.Choose(context.Background(), "", legal)
		testutil.AssertEqual(t, pa, pb)
	}
}
