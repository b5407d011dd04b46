// Package notnil adapts github.com/notnil/chess to the rules.Engine contract.
package notnil

import (
	"canvaschess/src/base"
	"canvaschess/src/logic/convert/convfen"
	"canvaschess/src/logic/rules"
	"canvaschess/src/logx"
	"fmt"

	"github.com/notnil/chess"
)

const Name = "notnil"

type Engine struct {
	game    *chess.Game
	history []string
	logger  logx.Logger
}

func New(logger logx.Logger) *Engine {
	e := &Engine{logger: logger.Named("notnil")}
	e.Reset()
	return e
}

func (e *Engine) Reset() {
	e.game = chess.NewGame()
	e.history = nil
}

func (e *Engine) LoadPosition(fen string) error {
	if err := convfen.ValidateFEN(fen); err != nil {
		return err
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return fmt.Errorf("%w: %v", base.ErrInvalidPosition, err)
	}
	e.game = chess.NewGame(opt)
	e.history = nil
	e.logger.Debugf("position loaded %s", fen)
	return nil
}

func (e *Engine) PositionDescriptor() string {
	return e.game.Position().String()
}

func (e *Engine) TurnColor() base.Color {
	return colorOf(e.game.Position().Turn())
}

func (e *Engine) History() []string {
	return append([]string(nil), e.history...)
}

func (e *Engine) MovesFrom(sq base.Square) []rules.Notation {
	var out []rules.Notation
	pos := e.game.Position()
	for _, m := range e.game.ValidMoves() {
		if int(m.S1()) == sq.Index() {
			out = append(out, notationOf(pos, m))
		}
	}
	return out
}

func (e *Engine) LegalMoves() []rules.Notation {
	pos := e.game.Position()
	moves := e.game.ValidMoves()
	out := make([]rules.Notation, 0, len(moves))
	for _, m := range moves {
		out = append(out, notationOf(pos, m))
	}
	return out
}

func (e *Engine) ApplyMove(from, to base.Square, promotion base.Kind) (rules.Result, error) {
	pos := e.game.Position()
	var found *chess.Move
	for _, m := range e.game.ValidMoves() {
		if int(m.S1()) == from.Index() && int(m.S2()) == to.Index() && kindOf(m.Promo()) == promotion {
			found = m
			break
		}
	}
	if found == nil {
		return rules.Result{}, fmt.Errorf("%w: %s%s", base.ErrIllegalMove, from, to)
	}

	n := notationOf(pos, found)
	captured := base.NoKind
	if n.Flag.Has(base.FlagEnPassant) {
		captured = base.Pawn
	} else if p := pos.Board().Piece(found.S2()); p != chess.NoPiece {
		captured = kindOf(p.Type())
	}

	if err := e.game.Move(found); err != nil {
		return rules.Result{}, fmt.Errorf("%w: %v", base.ErrIllegalMove, err)
	}
	e.history = append(e.history, n.SAN)

	res := rules.Result{
		Move:     base.Move{From: from, To: to, Flag: n.Flag, Promotion: n.Promotion},
		Captured: captured,
		SAN:      n.SAN,
		Status:   e.Status(),
	}
	e.logger.With("move", res.Move.String(), "san", res.SAN).Debugf("applied, status %s", res.Status)
	return res, nil
}

func (e *Engine) Status() base.GameStatus {
	switch e.game.Position().Status() {
	case chess.Checkmate:
		return base.Checkmate
	case chess.Stalemate:
		return base.Stalemate
	}
	if e.game.Outcome() == chess.Draw {
		return base.Draw
	}
	if moves := e.game.Moves(); len(moves) > 0 && moves[len(moves)-1].HasTag(chess.Check) {
		return base.Check
	}
	return base.Pass
}

func notationOf(pos *chess.Position, m *chess.Move) rules.Notation {
	from, _ := base.SquareFromIndex(int(m.S1()))
	to, _ := base.SquareFromIndex(int(m.S2()))
	n := rules.Notation{
		From:      from,
		To:        to,
		Promotion: kindOf(m.Promo()),
		SAN:       chess.AlgebraicNotation{}.Encode(pos, m),
	}

	switch {
	case m.HasTag(chess.KingSideCastle):
		n.Castle = base.KingSide
		n.Flag |= base.FlagKingCastle
	case m.HasTag(chess.QueenSideCastle):
		n.Castle = base.QueenSide
		n.Flag |= base.FlagQueenCastle
	}
	if m.HasTag(chess.Capture) {
		n.Flag |= base.FlagCapture
	}
	if m.HasTag(chess.EnPassant) {
		n.Flag |= base.FlagEnPassant
	}
	if n.Promotion != base.NoKind {
		n.Flag |= base.FlagPromotion
	}
	if pos.Board().Piece(m.S1()).Type() == chess.Pawn {
		if d := int(to.Rank) - int(from.Rank); d == 2 || d == -2 {
			n.Flag |= base.FlagDoublePush
		}
	}
	return n
}

func colorOf(c chess.Color) base.Color {
	if c == chess.Black {
		return base.Black
	}
	return base.White
}

func kindOf(pt chess.PieceType) base.Kind {
	switch pt {
	case chess.King:
		return base.King
	case chess.Queen:
		return base.Queen
	case chess.Rook:
		return base.Rook
	case chess.Bishop:
		return base.Bishop
	case chess.Knight:
		return base.Knight
	case chess.Pawn:
		return base.Pawn
	}
	return base.NoKind
}
