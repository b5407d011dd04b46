// Package autoplay picks moves for a side nobody is clicking for: a random
// mover for demos or an external UCI engine.
package autoplay

import (
	"canvaschess/src/base"
	"canvaschess/src/logic/rules"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNoMoves = errors.New("no legal moves")

// Pick is a chosen move, resolved against the rules engine by the caller.
type Pick struct {
	From      base.Square
	To        base.Square
	Promotion base.Kind
}

// String is long algebraic UCI text: e2e4, e7e8q
func (p Pick) String() string {
	s := p.From.String() + p.To.String()
	if p.Promotion != base.NoKind {
		s += strings.ToLower(string(base.ConvertRuneFromPiece(p.Promotion, base.White)))
	}
	return s
}

func ParseUCI(s string) (Pick, error) {
	if len(s) != 4 && len(s) != 5 {
		return Pick{}, fmt.Errorf("%w: uci move %q", base.ErrIllegalMove, s)
	}
	from, err := base.ParseSquare(s[0:2])
	if err != nil {
		return Pick{}, err
	}
	to, err := base.ParseSquare(s[2:4])
	if err != nil {
		return Pick{}, err
	}
	p := Pick{From: from, To: to}
	if len(s) == 5 {
		kind, ok := base.KindFromLetter(s[4:])
		if !ok {
			return Pick{}, fmt.Errorf("%w: promotion %q", base.ErrIllegalMove, s[4:])
		}
		p.Promotion = kind
	}
	return p, nil
}

// Matches reports whether the pick is one of the legal destinations
func (p Pick) Matches(legal []rules.Notation) bool {
	for _, n := range legal {
		if n.From == p.From && n.To == p.To && n.Promotion == p.Promotion {
			return true
		}
	}
	return false
}

type Player interface {
	Name() string
	Choose(ctx context.Context, fen string, legal []rules.Notation) (Pick, error)
	Close() error
}

type SearchParams struct {
	MaxDepth  int   // 0 = no depth limit
	MaxTimeMs int64 // 0 = no time limit
}

type Level int

const (
	LevelOne Level = iota + 1
	LevelTwo
	LevelThree
	LevelFour
	LevelFive
	LevelSix
	LevelSeven
	LevelEight
	LevelNine
	LevelTen
)

const DefaultLevel = LevelFive

const (
	HandshakeTimeout = 2 * time.Second  // uci / isready
	BestMoveTimeout  = 30 * time.Second // go without movetime
)

var levelParams = map[Level]SearchParams{
	LevelOne:   {MaxDepth: 1, MaxTimeMs: 500},
	LevelTwo:   {MaxDepth: 2, MaxTimeMs: 800},
	LevelThree: {MaxDepth: 3, MaxTimeMs: 1000},
	LevelFour:  {MaxDepth: 5, MaxTimeMs: 1500},
	LevelFive:  {MaxDepth: 7, MaxTimeMs: 2500},
	LevelSix:   {MaxDepth: 9, MaxTimeMs: 4000},
	LevelSeven: {MaxDepth: 11, MaxTimeMs: 6000},
	LevelEight: {MaxDepth: 13, MaxTimeMs: 8000},
	LevelNine:  {MaxDepth: 16, MaxTimeMs: 10000},
	LevelTen:   {MaxDepth: 18, MaxTimeMs: 15000},
}

// Params clamps out of range levels to the nearest one
func (l Level) Params() SearchParams {
	switch {
	case l < LevelOne:
		l = LevelOne
	case l > LevelTen:
		l = LevelTen
	}
	return levelParams[l]
}

// Timeout bounds the wait for a bestmove at this level
func (l Level) Timeout() time.Duration {
	p := l.Params()
	if p.MaxTimeMs == 0 {
		return BestMoveTimeout
	}
	return time.Duration(p.MaxTimeMs)*time.Millisecond + HandshakeTimeout
}
