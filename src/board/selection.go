package board

import (
	"canvaschess/src/base"
	"canvaschess/src/logic/convert/convfen"
	"canvaschess/src/logic/rules"
	"canvaschess/src/logx"
	"errors"
	"fmt"
)

// State is one of Idle, PieceSelected or AwaitingPromotion.
type State interface {
	stateName() string
}

type Idle struct{}

type PieceSelected struct {
	Square       base.Square
	Destinations []rules.Notation
}

type AwaitingPromotion struct {
	From       base.Square
	To         base.Square
	Candidates []rules.Notation
}

func (Idle) stateName() string              { return "idle" }
func (PieceSelected) stateName() string     { return "piece-selected" }
func (AwaitingPromotion) stateName() string { return "awaiting-promotion" }

func StateName(s State) string {
	return s.stateName()
}

// Controller turns pointer-down events into selections and moves.
// It runs on the input callstack only and holds no locks.
type Controller struct {
	ctx      *Context
	engine   rules.Engine
	registry *Registry
	exec     *Executor
	picker   *Picker
	surface  Surface
	logger   logx.Logger

	state  State
	gate   func(turn base.Color) bool
	onMove func(res rules.Result)
}

func NewController(ctx *Context, engine rules.Engine, surface Surface, logger logx.Logger) *Controller {
	registry := NewRegistry()
	return &Controller{
		ctx:      ctx,
		engine:   engine,
		registry: registry,
		exec:     NewExecutor(ctx, registry, surface, logger),
		picker:   NewPicker(),
		surface:  surface,
		logger:   logger,
		state:    Idle{},
	}
}

func (c *Controller) State() State         { return c.state }
func (c *Controller) Registry() *Registry  { return c.registry }
func (c *Controller) Picker() *Picker      { return c.picker }
func (c *Controller) Context() *Context    { return c.ctx }
func (c *Controller) Engine() rules.Engine { return c.engine }

// SetGate limits whose turn accepts input, nil lets everybody play
func (c *Controller) SetGate(gate func(turn base.Color) bool) {
	c.gate = gate
}

func (c *Controller) OnMove(fn func(res rules.Result)) {
	c.onMove = fn
}

// Reload rebuilds the registry and every sprite from the engine position
// A position that does not parse leaves the board as it was.
func (c *Controller) Reload() error {
	desc := c.engine.PositionDescriptor()
	if _, err := convfen.ParsePlacement(desc); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	c.toIdle()
	for _, p := range c.registry.Pieces() {
		c.surface.RemovePiece(p)
	}
	err := c.registry.Reset(desc)
	c.exec.Relayout()
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	c.logger.Debugf("board reloaded with %d pieces", c.registry.Len())
	return nil
}

func (c *Controller) Resize(side float64) {
	c.ctx.Resize(side)
	c.relayout()
}

func (c *Controller) Rotate() {
	c.ctx.Rotate()
	c.relayout()
}

// relayout keeps the state, only geometry changes
func (c *Controller) relayout() {
	c.exec.Relayout()
	if _, ok := c.state.(PieceSelected); ok {
		c.drawHighlights()
	}
	if c.picker.IsOpen() {
		c.picker.Resize(c.ctx)
		c.picker.Render(c.surface)
	}
}

// PointerDown handles one click at a board-local point. Errors are
// informative, the controller is always left in a consistent state.
func (c *Controller) PointerDown(pt base.Point) error {
	if st, ok := c.state.(AwaitingPromotion); ok {
		kind, hit := c.picker.HitTest(pt)
		if !hit {
			c.logger.Debug("click outside promotion options ignored")
			return nil
		}
		return c.promote(st, kind)
	}

	if c.gate != nil && !c.gate(c.engine.TurnColor()) {
		return nil
	}

	sq, err := c.ctx.SquareAt(pt)
	if err != nil {
		if _, ok := c.state.(PieceSelected); ok {
			c.toIdle()
		}
		return nil
	}

	switch st := c.state.(type) {
	case PieceSelected:
		if cands := c.matching(st, sq); len(cands) > 0 {
			return c.execute(st.Square, sq, cands)
		}
		c.toIdle()
		if _, ok := c.registry.Get(sq); ok && sq != st.Square {
			c.selectSquare(sq)
		}
	default:
		if _, ok := c.registry.Get(sq); ok {
			c.selectSquare(sq)
		}
	}
	return nil
}

// PromotionPending reports whether the picker waits for a choice
func (c *Controller) PromotionPending() bool {
	_, ok := c.state.(AwaitingPromotion)
	return ok
}

// Play runs a move that did not come from the pointer, a demo move or a
// typed command. A pending selection is dropped first, a pending promotion
// refuses the move since only the picker may finish it.
func (c *Controller) Play(from, to base.Square, promotion base.Kind) (rules.Result, error) {
	if c.PromotionPending() {
		return rules.Result{}, fmt.Errorf("%w: promotion pending", base.ErrIllegalMove)
	}
	c.toIdle()
	res, err := c.engine.ApplyMove(from, to, promotion)
	if err != nil {
		return res, err
	}
	if err := c.exec.Execute(res.Move); err != nil {
		return res, err
	}
	c.moved(res)
	return res, nil
}

func (c *Controller) selectSquare(sq base.Square) {
	moves := c.engine.MovesFrom(sq)
	if len(moves) == 0 {
		c.logger.Debugf("no legal moves from %s", sq)
		c.surface.ClearHighlights()
		return
	}
	c.state = PieceSelected{Square: sq, Destinations: moves}
	c.drawHighlights()
	c.logger.With("square", sq.String()).Debugf("selected with %d destinations", len(moves))
}

// matching returns the destinations landing on sq, several for a promotion
func (c *Controller) matching(st PieceSelected, sq base.Square) []rules.Notation {
	mover := c.engine.TurnColor()
	if p, ok := c.registry.Get(st.Square); ok {
		mover = p.Color
	}
	var out []rules.Notation
	for _, n := range st.Destinations {
		if c.target(n, mover) == sq {
			out = append(out, n)
		}
	}
	return out
}

func (c *Controller) target(n rules.Notation, mover base.Color) base.Square {
	if n.Castle != base.NoCastle {
		if sq, err := CastleDestination(n.Castle, mover); err == nil {
			return sq
		}
	}
	return n.To
}

func (c *Controller) execute(from, to base.Square, cands []rules.Notation) error {
	if cands[0].IsPromotion() {
		c.surface.ClearHighlights()
		if err := c.exec.Stage(from, to); err != nil {
			c.toIdle()
			return err
		}
		color := c.engine.TurnColor()
		if pawn, ok := c.registry.Get(to); ok {
			color = pawn.Color
		}
		c.state = AwaitingPromotion{From: from, To: to, Candidates: cands}
		c.picker.Open(to, color, cands, c.ctx)
		c.picker.Render(c.surface)
		c.logger.Debugf("promotion %s%s waiting for a piece", from, to)
		return nil
	}

	n := cands[0]
	res, err := c.engine.ApplyMove(from, to, base.NoKind)
	c.toIdle()
	if err != nil {
		c.logger.With("from", from.String(), "to", to.String()).Warnf("engine refused: %v", err)
		return err
	}
	res.Move.Flag |= n.Castle.Flag()
	if err := c.exec.Execute(res.Move); err != nil {
		return err
	}
	c.moved(res)
	return nil
}

func (c *Controller) promote(st AwaitingPromotion, kind base.Kind) error {
	if _, ok := c.picker.Candidate(kind); !ok {
		return fmt.Errorf("%w: no %s promotion on %s", base.ErrIllegalMove, kind, st.To)
	}
	res, err := c.engine.ApplyMove(st.From, st.To, kind)
	if err != nil {
		c.logger.Warnf("engine refused promotion %s%s=%s: %v", st.From, st.To, kind, err)
		c.toIdle()
		if !errors.Is(err, base.ErrIllegalMove) {
			err = fmt.Errorf("%w: %v", base.ErrIllegalMove, err)
		}
		return err
	}
	if err := c.exec.Finalize(kind); err != nil {
		c.toIdle()
		return err
	}
	c.toIdle()
	c.moved(res)
	return nil
}

// toIdle drops highlights, the picker and any unfinished optimistic move
func (c *Controller) toIdle() {
	if c.exec.Staged() {
		c.exec.Rollback()
	}
	if c.picker.IsOpen() {
		c.picker.Close()
		c.picker.Render(c.surface)
	}
	if _, idle := c.state.(Idle); !idle {
		c.surface.ClearHighlights()
	}
	c.state = Idle{}
}

func (c *Controller) drawHighlights() {
	st, ok := c.state.(PieceSelected)
	if !ok {
		return
	}
	mover := c.engine.TurnColor()
	if p, ok := c.registry.Get(st.Square); ok {
		mover = p.Color
	}

	overlays := []Overlay{{Square: st.Square, Kind: HighlightSelected, Rect: c.ctx.SquareRect(st.Square)}}
	seen := map[base.Square]bool{}
	for _, n := range st.Destinations {
		sq := c.target(n, mover)
		if seen[sq] {
			continue
		}
		seen[sq] = true
		overlays = append(overlays, Overlay{Square: sq, Kind: HighlightDestination, Rect: c.ctx.SquareRect(sq)})
	}
	c.surface.ClearHighlights()
	c.surface.DrawHighlights(overlays)
}

func (c *Controller) moved(res rules.Result) {
	c.logger.With("move", res.Move.String(), "san", res.SAN).Infof("moved, flag %s", res.Move.Flag)
	if c.onMove != nil {
		c.onMove(res)
	}
}
