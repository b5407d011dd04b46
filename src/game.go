package src

import (
	"canvaschess/src/autoplay"
	"canvaschess/src/base"
	"canvaschess/src/board"
	"canvaschess/src/logic/rules"
	"canvaschess/src/logic/rules/dragon"
	"canvaschess/src/logic/rules/notnil"
	"canvaschess/src/logx"
	"context"
	"fmt"
	"strings"
)

// CanPlay says whose pieces accept pointer input
type CanPlay uint8

const (
	PlayBoth CanPlay = iota
	PlayWhite
	PlayBlack
	PlayNone
)

func (cp CanPlay) String() string {
	switch cp {
	case PlayWhite:
		return "white"
	case PlayBlack:
		return "black"
	case PlayNone:
		return "none"
	default:
		return "both"
	}
}

func ParseCanPlay(s string) (CanPlay, error) {
	switch strings.ToLower(s) {
	case "", "both":
		return PlayBoth, nil
	case "white", "w":
		return PlayWhite, nil
	case "black", "b":
		return PlayBlack, nil
	case "none":
		return PlayNone, nil
	}
	return PlayBoth, fmt.Errorf("unknown can-play value %q", s)
}

func (cp CanPlay) allows(turn base.Color) bool {
	switch cp {
	case PlayBoth:
		return true
	case PlayWhite:
		return turn == base.White
	case PlayBlack:
		return turn == base.Black
	}
	return false
}

type EventKind string

const (
	EventGameStart  EventKind = "game-start"
	EventPlayerMove EventKind = "player-move"
	EventGameEnd    EventKind = "game-end"
)

type Event struct {
	Kind   EventKind
	FEN    string
	Move   rules.Result    // player-move only
	Status base.GameStatus // game-end cause
}

// Options of a new game, zero values mean white at the bottom, both sides
// playing, the start position and the notnil rules.
type Options struct {
	Orientation base.Color
	CanPlay     CanPlay
	Position    string
	Side        float64
	Rules       string
	Seed        uint64
}

const DefaultSide = 640

func NewRulesEngine(name string, logger logx.Logger) (rules.Engine, error) {
	switch strings.ToLower(name) {
	case "", notnil.Name:
		return notnil.New(logger), nil
	case dragon.Name, "dragon":
		return dragon.New(logger), nil
	}
	return nil, fmt.Errorf("unknown rules backend %q", name)
}

// Game ties the board controller to one rules engine and reports the
// lifecycle of a game to its listeners.
type Game struct {
	ctl       *board.Controller
	engine    rules.Engine
	canPlay   CanPlay
	initial   CanPlay
	status    base.GameStatus
	lastMover base.Color
	random    *autoplay.Random
	listeners []func(Event)
	logger    logx.Logger
}

func NewGame(surface board.Surface, opts Options, logger logx.Logger) (*Game, error) {
	engine, err := NewRulesEngine(opts.Rules, logger)
	if err != nil {
		return nil, err
	}
	if opts.Position != "" {
		if err := engine.LoadPosition(opts.Position); err != nil {
			return nil, err
		}
	}
	side := opts.Side
	if side <= 0 {
		side = DefaultSide
	}

	g := &Game{
		engine:  engine,
		canPlay: opts.CanPlay,
		initial: opts.CanPlay,
		random:  autoplay.NewRandom(opts.Seed),
		logger:  logger,
	}
	g.ctl = board.NewController(board.NewContext(side, opts.Orientation), engine, surface, logger)
	g.ctl.SetGate(func(turn base.Color) bool { return g.canPlay.allows(turn) })
	g.ctl.OnMove(g.afterMove)
	return g, nil
}

// Subscribe adds a listener, call it before Start to see game-start
func (g *Game) Subscribe(fn func(Event)) {
	g.listeners = append(g.listeners, fn)
}

// Start draws the position and announces it
func (g *Game) Start() error {
	if err := g.ctl.Reload(); err != nil {
		return err
	}
	g.begin()
	return nil
}

func (g *Game) Controller() *board.Controller { return g.ctl }
func (g *Game) Context() *board.Context       { return g.ctl.Context() }
func (g *Game) Engine() rules.Engine          { return g.engine }
func (g *Game) Status() base.GameStatus       { return g.status }
func (g *Game) IsGameOver() bool              { return g.status.IsOver() }
func (g *Game) Turn() base.Color              { return g.engine.TurnColor() }
func (g *Game) Orientation() base.Color       { return g.ctl.Context().Bottom }
func (g *Game) CanPlay() CanPlay              { return g.canPlay }

func (g *Game) SetCanPlay(cp CanPlay) {
	if g.IsGameOver() {
		return
	}
	g.canPlay = cp
	g.initial = cp
}

func (g *Game) PointerDown(pt base.Point) error {
	return g.ctl.PointerDown(pt)
}

func (g *Game) Resize(side float64) {
	g.ctl.Resize(side)
}

func (g *Game) Rotate() {
	g.logger.Debug("rotate board")
	g.ctl.Rotate()
}

// Reset goes back to the start position
func (g *Game) Reset() error {
	g.logger.Info("reset game")
	g.engine.Reset()
	if err := g.ctl.Reload(); err != nil {
		return err
	}
	g.canPlay = g.initial
	g.begin()
	return nil
}

func (g *Game) FEN() string {
	return g.engine.PositionDescriptor()
}

// SetFEN loads a position, on error the current one stays
func (g *Game) SetFEN(fen string) error {
	g.logger.Debugf("set FEN: %s", fen)
	prev := g.engine.PositionDescriptor()
	if err := g.engine.LoadPosition(fen); err != nil {
		g.logger.Warnf("rejected FEN %q: %v", fen, err)
		return err
	}
	if err := g.ctl.Reload(); err != nil {
		_ = g.engine.LoadPosition(prev)
		_ = g.ctl.Reload()
		return err
	}
	g.canPlay = g.initial
	g.begin()
	return nil
}

func (g *Game) History() []string {
	return g.engine.History()
}

// RandomMove plays any legal move for the side to move, ignoring CanPlay
func (g *Game) RandomMove() (rules.Result, error) {
	return g.AutoMove(context.Background(), g.random)
}

// AutoMove asks player for a move and plays it. The search itself does not
// touch the board, so it may run on another goroutine through Choose while
// Apply stays on the input callstack.
func (g *Game) AutoMove(ctx context.Context, player autoplay.Player) (rules.Result, error) {
	pick, err := g.Choose(ctx, player)
	if err != nil {
		return rules.Result{}, err
	}
	return g.Apply(pick)
}

// PromotionPending reports whether the picker is open
func (g *Game) PromotionPending() bool {
	return g.ctl.PromotionPending()
}

func (g *Game) Choose(ctx context.Context, player autoplay.Player) (autoplay.Pick, error) {
	if g.IsGameOver() {
		return autoplay.Pick{}, autoplay.ErrNoMoves
	}
	if g.PromotionPending() {
		return autoplay.Pick{}, fmt.Errorf("%w: promotion pending", base.ErrIllegalMove)
	}
	return player.Choose(ctx, g.engine.PositionDescriptor(), g.engine.LegalMoves())
}

func (g *Game) Apply(pick autoplay.Pick) (rules.Result, error) {
	if g.IsGameOver() {
		return rules.Result{}, fmt.Errorf("%w: game is over", base.ErrIllegalMove)
	}
	return g.ctl.Play(pick.From, pick.To, pick.Promotion)
}

// TurnText is the banner above the board
func (g *Game) TurnText() string {
	if g.Turn() == base.Black {
		return "Black's Turn"
	}
	return "White's Turn"
}

// EndingText is shown over the board once the game is over, empty before
func (g *Game) EndingText() string {
	switch g.status {
	case base.Checkmate:
		return fmt.Sprintf("Checkmate\n\n%s wins!", title(g.lastMover))
	case base.Stalemate:
		return fmt.Sprintf("%s cannot move, Stalemate\n\nNo winner.", title(g.Turn()))
	case base.Draw:
		return "Draw\n\nNo winner."
	}
	return ""
}

func (g *Game) begin() {
	g.status = g.engine.Status()
	g.lastMover = g.engine.TurnColor().Other()
	g.emit(Event{Kind: EventGameStart, FEN: g.FEN()})
	if g.status.IsOver() {
		g.end()
	}
}

func (g *Game) afterMove(res rules.Result) {
	g.lastMover = g.engine.TurnColor().Other()
	g.status = res.Status
	g.emit(Event{Kind: EventPlayerMove, FEN: g.FEN(), Move: res})
	if g.status.IsOver() {
		g.end()
	}
}

func (g *Game) end() {
	g.canPlay = PlayNone
	g.logger.Infof("game over: %s", g.status)
	g.emit(Event{Kind: EventGameEnd, FEN: g.FEN(), Status: g.status})
}

func (g *Game) emit(ev Event) {
	for _, fn := range g.listeners {
		fn(ev)
	}
}

func title(c base.Color) string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
