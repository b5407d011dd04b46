package autoplay

import (
	"canvaschess/src/logic/rules"
	"context"
	"math/rand/v2"
)

const RandomName = "random"

// Random plays any legal move. Not safe for concurrent use.
type Random struct {
	rnd *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Random) Name() string {
	return RandomName
}

func (r *Random) Choose(ctx context.Context, _ string, legal []rules.Notation) (Pick, error) {
	if err := ctx.Err(); err != nil {
		return Pick{}, err
	}
	if len(legal) == 0 {
		return Pick{}, ErrNoMoves
	}
	n := legal[r.rnd.IntN(len(legal))]
	return Pick{From: n.From, To: n.To, Promotion: n.Promotion}, nil
}

func (r *Random) Close() error {
	return nil
}
