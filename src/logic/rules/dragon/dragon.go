// Package dragon backs rules.Engine with the dragontoothmg bitboard generator.
package dragon

import (
	"canvaschess/src/base"
	"canvaschess/src/logic/convert/convfen"
	"canvaschess/src/logic/rules"
	"canvaschess/src/logx"
	"fmt"

	"github.com/dylhunn/dragontoothmg"
)

const Name = "dragontooth"

type Engine struct {
	board   dragontoothmg.Board
	history []string
	logger  logx.Logger
}

func New(logger logx.Logger) *Engine {
	e := &Engine{logger: logger.Named("dragontooth")}
	e.Reset()
	return e
}

func (e *Engine) Reset() {
	e.board = dragontoothmg.ParseFen(base.FEN_START_GAME)
	e.history = nil
}

func (e *Engine) LoadPosition(fen string) error {
	if err := convfen.ValidateFEN(fen); err != nil {
		return err
	}
	b, err := parseFen(fen)
	if err != nil {
		return err
	}
	e.board = b
	e.history = nil
	e.logger.Debugf("position loaded %s", fen)
	return nil
}

// ParseFen indexes without bounds checks
func parseFen(fen string) (b dragontoothmg.Board, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", base.ErrInvalidPosition, r)
		}
	}()
	return dragontoothmg.ParseFen(fen), nil
}

func (e *Engine) PositionDescriptor() string {
	return e.board.ToFen()
}

func (e *Engine) TurnColor() base.Color {
	if e.board.Wtomove {
		return base.White
	}
	return base.Black
}

func (e *Engine) History() []string {
	return append([]string(nil), e.history...)
}

func (e *Engine) MovesFrom(sq base.Square) []rules.Notation {
	var out []rules.Notation
	moves := e.board.GenerateLegalMoves()
	for i := range moves {
		m := &moves[i]
		if int(m.From()) == sq.Index() {
			out = append(out, e.notationOf(m))
		}
	}
	return out
}

func (e *Engine) LegalMoves() []rules.Notation {
	moves := e.board.GenerateLegalMoves()
	out := make([]rules.Notation, 0, len(moves))
	for i := range moves {
		out = append(out, e.notationOf(&moves[i]))
	}
	return out
}

func (e *Engine) ApplyMove(from, to base.Square, promotion base.Kind) (rules.Result, error) {
	moves := e.board.GenerateLegalMoves()
	for i := range moves {
		m := &moves[i]
		if int(m.From()) != from.Index() || int(m.To()) != to.Index() || kindOf(m.Promote()) != promotion {
			continue
		}

		n := e.notationOf(m)
		captured := base.NoKind
		if n.Flag.Has(base.FlagEnPassant) {
			captured = base.Pawn
		} else if pt, ok := pieceAt(m.To(), e.theirs()); ok {
			captured = kindOf(pt)
		}

		e.board.Apply(*m)
		e.history = append(e.history, n.SAN)
		res := rules.Result{
			Move:     base.Move{From: from, To: to, Flag: n.Flag, Promotion: n.Promotion},
			Captured: captured,
			SAN:      n.SAN,
			Status:   e.Status(),
		}
		e.logger.With("move", res.Move.String()).Debugf("applied, status %s", res.Status)
		return res, nil
	}
	return rules.Result{}, fmt.Errorf("%w: %s%s", base.ErrIllegalMove, from, to)
}

func (e *Engine) Status() base.GameStatus {
	inCheck := e.board.OurKingInCheck()
	if len(e.board.GenerateLegalMoves()) == 0 {
		if inCheck {
			return base.Checkmate
		}
		return base.Stalemate
	}
	if e.board.Halfmoveclock >= 100 {
		return base.Draw
	}
	if p, err := convfen.ParsePlacement(e.board.ToFen()); err == nil && rules.InsufficientMaterial(p) {
		return base.Draw
	}
	if inCheck {
		return base.Check
	}
	return base.Pass
}

func (e *Engine) ours() *dragontoothmg.Bitboards {
	if e.board.Wtomove {
		return &e.board.White
	}
	return &e.board.Black
}

func (e *Engine) theirs() *dragontoothmg.Bitboards {
	if e.board.Wtomove {
		return &e.board.Black
	}
	return &e.board.White
}

func (e *Engine) notationOf(m *dragontoothmg.Move) rules.Notation {
	from, _ := base.SquareFromIndex(int(m.From()))
	to, _ := base.SquareFromIndex(int(m.To()))
	n := rules.Notation{
		From:      from,
		To:        to,
		Promotion: kindOf(m.Promote()),
		SAN:       m.String(),
	}

	mover, _ := pieceAt(m.From(), e.ours())
	_, capture := pieceAt(m.To(), e.theirs())
	df := int(to.File) - int(from.File)
	dr := int(to.Rank) - int(from.Rank)

	if capture {
		n.Flag |= base.FlagCapture
	}
	switch mover {
	case dragontoothmg.King:
		if df == 2 {
			n.Castle = base.KingSide
			n.Flag |= base.FlagKingCastle
		} else if df == -2 {
			n.Castle = base.QueenSide
			n.Flag |= base.FlagQueenCastle
		}
	case dragontoothmg.Pawn:
		if df != 0 && !capture {
			n.Flag |= base.FlagEnPassant
		}
		if dr == 2 || dr == -2 {
			n.Flag |= base.FlagDoublePush
		}
	}
	if n.Promotion != base.NoKind {
		n.Flag |= base.FlagPromotion
	}
	return n
}

func pieceAt(position uint8, bitboards *dragontoothmg.Bitboards) (dragontoothmg.Piece, bool) {
	bit := uint64(1) << position
	switch {
	case bitboards.Pawns&bit != 0:
		return dragontoothmg.Pawn, true
	case bitboards.Knights&bit != 0:
		return dragontoothmg.Knight, true
	case bitboards.Bishops&bit != 0:
		return dragontoothmg.Bishop, true
	case bitboards.Rooks&bit != 0:
		return dragontoothmg.Rook, true
	case bitboards.Queens&bit != 0:
		return dragontoothmg.Queen, true
	case bitboards.Kings&bit != 0:
		return dragontoothmg.King, true
	}
	return dragontoothmg.Nothing, false
}

func kindOf(p dragontoothmg.Piece) base.Kind {
	switch p {
	case dragontoothmg.King:
		return base.King
	case dragontoothmg.Queen:
		return base.Queen
	case dragontoothmg.Rook:
		return base.Rook
	case dragontoothmg.Bishop:
		return base.Bishop
	case dragontoothmg.Knight:
		return base.Knight
	case dragontoothmg.Pawn:
		return base.Pawn
	}
	return base.NoKind
}
