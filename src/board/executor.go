package board

import (
	"canvaschess/src/base"
	"canvaschess/src/logx"
	"fmt"
)

// Executor applies the board side effects of a move the engine accepted.
type Executor struct {
	ctx      *Context
	registry *Registry
	surface  Surface
	logger   logx.Logger
	staged   *stagedMove
}

// pawn moved ahead of the engine while the picker is open
type stagedMove struct {
	from, to base.Square
	pawn     *Piece
	hidden   *Piece
}

func NewExecutor(ctx *Context, registry *Registry, surface Surface, logger logx.Logger) *Executor {
	return &Executor{ctx: ctx, registry: registry, surface: surface, logger: logger.Named("executor")}
}

func (x *Executor) Execute(m base.Move) error {
	piece, ok := x.registry.Get(m.From)
	if !ok {
		return fmt.Errorf("execute %s: %w", m, base.ErrEmptySquare)
	}
	occupant, _ := x.registry.Get(m.To)

	// relocate sprite
	x.surface.MovePiece(piece, x.ctx.Center(m.To))

	// en passant
	if m.Flag.Has(base.FlagEnPassant) {
		if victim, ok := enPassantVictim(m.From, m.To); ok {
			if p, ok := x.registry.Remove(victim); ok {
				x.dispose(p)
				x.logger.Debugf("en passant removed %s", p)
			}
		}
	}

	// plain capture
	if occupant != nil && occupant != piece {
		if !m.Flag.Has(base.FlagCapture) {
			x.logger.Warnf("move %s lands on %s without capture flag", m, occupant)
		}
		x.registry.Remove(m.To)
		x.dispose(occupant)
	}

	// registry
	if err := x.registry.Move(m.From, m.To); err != nil {
		return fmt.Errorf("execute %s: %w", m, err)
	}

	// castling rook, silent
	if rookFrom, rookTo, ok := castleRook(m.Flag, m.From.Rank); ok {
		if err := x.registry.Move(rookFrom, rookTo); err != nil {
			x.logger.Warnf("castle %s: %v", m, err)
		} else {
			rook, _ := x.registry.Get(rookTo)
			x.surface.MovePiece(rook, x.ctx.Center(rookTo))
		}
	}

	if m.Promotion != base.NoKind {
		return x.swap(m.To, m.Promotion)
	}
	return nil
}

// Stage moves the pawn without consulting the engine. The occupant of to is
// hidden, not disposed, so Rollback can bring it back.
func (x *Executor) Stage(from, to base.Square) error {
	if x.staged != nil {
		return fmt.Errorf("stage %s%s: promotion %s%s pending", from, to, x.staged.from, x.staged.to)
	}
	pawn, ok := x.registry.Get(from)
	if !ok {
		return fmt.Errorf("stage %s: %w", from, base.ErrEmptySquare)
	}
	hidden, _ := x.registry.Remove(to)
	if hidden != nil {
		x.surface.RemovePiece(hidden)
	}
	if err := x.registry.Move(from, to); err != nil {
		return err
	}
	x.surface.MovePiece(pawn, x.ctx.Center(to))
	x.staged = &stagedMove{from: from, to: to, pawn: pawn, hidden: hidden}
	return nil
}

func (x *Executor) Staged() bool {
	return x.staged != nil
}

// Finalize swaps the staged pawn for the chosen piece
func (x *Executor) Finalize(kind base.Kind) error {
	st := x.staged
	if st == nil {
		return fmt.Errorf("finalize %s: nothing staged", kind)
	}
	x.staged = nil
	if st.hidden != nil {
		st.hidden.Disposed = true
	}
	return x.swap(st.to, kind)
}

func (x *Executor) Rollback() {
	st := x.staged
	if st == nil {
		return
	}
	x.staged = nil
	if err := x.registry.Move(st.to, st.from); err != nil {
		x.logger.Errorf("rollback %s%s: %v", st.from, st.to, err)
		return
	}
	x.surface.MovePiece(st.pawn, x.ctx.Center(st.from))
	if st.hidden != nil {
		if err := x.registry.Add(st.to, st.hidden); err != nil {
			x.logger.Errorf("rollback restore %s: %v", st.hidden, err)
			return
		}
		x.surface.PlacePiece(st.hidden, x.ctx.Center(st.to), x.ctx.SquareSize)
	}
	x.logger.Infof("rolled back %s%s", st.from, st.to)
}

// Relayout places every sprite again for the current geometry
func (x *Executor) Relayout() {
	for _, p := range x.registry.Pieces() {
		x.surface.PlacePiece(p, x.ctx.Center(p.Square), x.ctx.SquareSize)
	}
}

func (x *Executor) swap(sq base.Square, kind base.Kind) error {
	old, ok := x.registry.Remove(sq)
	if !ok {
		return fmt.Errorf("promote %s: %w", sq, base.ErrEmptySquare)
	}
	x.dispose(old)
	p, err := x.registry.Spawn(sq, kind, old.Color)
	if err != nil {
		return err
	}
	x.surface.PlacePiece(p, x.ctx.Center(sq), x.ctx.SquareSize)
	return nil
}

func (x *Executor) dispose(p *Piece) {
	p.Disposed = true
	x.surface.RemovePiece(p)
}

// enPassantVictim is the square behind to, seen from the capturing pawn
func enPassantVictim(from, to base.Square) (base.Square, bool) {
	dir := 1
	if to.Rank < from.Rank {
		dir = -1
	}
	return to.Offset(0, -dir)
}
