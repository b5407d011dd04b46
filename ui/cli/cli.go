package cli

import (
	"bufio"
	"bytes"
	"canvaschess/src"
	"canvaschess/src/autoplay"
	"canvaschess/src/base"
	"canvaschess/src/logx"
	"canvaschess/src/render/record"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// CLIProcessing plays a game in the terminal. Typed squares and cursor keys
// become pointer-down events at square centers, so the terminal drives the
// same board controller as the window.
type CLIProcessing struct {
	game     *src.Game
	surface  *record.Surface
	opponent autoplay.Player
	oppSide  base.Color
	cursor   base.Square
	in       io.Reader
	out      io.Writer
	logger   logx.Logger
}

func NewCLI(game *src.Game, surface *record.Surface, logger logx.Logger) *CLIProcessing {
	return &CLIProcessing{
		game:    game,
		surface: surface,
		cursor:  base.MustParseSquare("e2"),
		in:      os.Stdin,
		out:     os.Stdout,
		logger:  logger,
	}
}

// SetIO replaces stdin and stdout
func (c *CLIProcessing) SetIO(in io.Reader, out io.Writer) {
	c.in = in
	c.out = out
}

// SetOpponent lets player answer for side after every move
func (c *CLIProcessing) SetOpponent(player autoplay.Player, side base.Color) {
	c.opponent = player
	c.oppSide = side
}

// Run uses raw key mode on a terminal and falls back to line mode.
// - arrows move the cursor, space or Enter clicks the square under it
// - n b r q pick a promotion piece while the picker is open
// - f rotates, ? plays a random move, x or Ctrl+C quits
func (c *CLIProcessing) Run(ctx context.Context) error {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.RunLineMode(ctx)
	}
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode(ctx)
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	// raw mode has no output processing
	out := c.out
	c.out = crlfWriter{w: out}
	defer func() { c.out = out }()

	r := bufio.NewReader(f)
	c.redraw()
	fmt.Fprintln(c.out, "arrows move, space/enter click, n b r q promote, f flip, ? random, x quit")

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		switch b {
		case 3, 'x', 'X': // Ctrl+C
			fmt.Fprintln(c.out, "\nQuitting")
			return nil
		case 0x1b:
			b1, err1 := r.ReadByte()
			b2, err2 := r.ReadByte()
			if err1 != nil || err2 != nil || b1 != '[' {
				continue
			}
			c.moveCursor(b2)
		case ' ', '\r', '\n':
			c.click(ctx, c.cursor)
		case 'n', 'b', 'r', 'q':
			c.promote(ctx, string(b))
		case 'f':
			c.game.Rotate()
		case '?':
			c.random(ctx)
		default:
			continue
		}
		c.redraw()
	}
}

// RunLineMode reads one command per line:
// - a square (e2) clicks it, two squares (e2e4) click both
// - n b r q pick a promotion piece
// - rotate, reset, fen, fen <FEN>, random, history, quit
func (c *CLIProcessing) RunLineMode(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, "Type squares to click them (e2, e2e4), 'help' for commands, 'quit' to exit.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if c.Exec(ctx, line) {
			return nil
		}
	}
	return scanner.Err()
}

// Exec runs one line command and reports whether to quit
func (c *CLIProcessing) Exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(c.out, "commands: <square>, <from><to>, n|b|r|q, rotate, reset, fen [FEN], random, history, quit")
		return false
	case "rotate", "flip":
		c.game.Rotate()
	case "reset":
		if err := c.game.Reset(); err != nil {
			fmt.Fprintf(c.out, "error reset: %v\n", err)
		}
	case "fen":
		if len(fields) == 1 {
			fmt.Fprintf(c.out, "FEN: %s\n", c.game.FEN())
			return false
		}
		if err := c.game.SetFEN(strings.Join(fields[1:], " ")); err != nil {
			fmt.Fprintf(c.out, "invalid FEN: %v\n", err)
			return false
		}
	case "random":
		c.random(ctx)
	case "history", "moves":
		fmt.Fprintf(c.out, "Moves: %s\n", strings.Join(c.game.History(), " "))
		return false
	case "n", "b", "r", "q":
		c.promote(ctx, cmd)
	default:
		if !c.clickSquares(ctx, cmd) {
			fmt.Fprintf(c.out, "unknown command: %s\n", line)
			return false
		}
	}
	c.redraw()
	return false
}

func (c *CLIProcessing) clickSquares(ctx context.Context, s string) bool {
	var squares []base.Square
	for len(s) >= 2 {
		sq, ok := base.TryParseSquare(s[:2])
		if !ok {
			return false
		}
		squares = append(squares, sq)
		s = s[2:]
	}
	if s != "" || len(squares) == 0 || len(squares) > 2 {
		return false
	}
	for _, sq := range squares {
		c.click(ctx, sq)
	}
	return true
}

func (c *CLIProcessing) click(ctx context.Context, sq base.Square) {
	c.cursor = sq
	if err := c.game.PointerDown(c.game.Context().Center(sq)); err != nil {
		fmt.Fprintf(c.out, "move refused: %v\n", err)
	}
	c.answer(ctx)
}

func (c *CLIProcessing) promote(ctx context.Context, letter string) {
	kind, _ := base.KindFromLetter(letter)
	center, ok := c.game.Controller().Picker().OptionCenter(kind)
	if !c.game.Controller().Picker().IsOpen() || !ok {
		fmt.Fprintln(c.out, "no promotion pending")
		return
	}
	if err := c.game.PointerDown(center); err != nil {
		fmt.Fprintf(c.out, "promotion refused: %v\n", err)
	}
	c.answer(ctx)
}

func (c *CLIProcessing) random(ctx context.Context) {
	if _, err := c.game.RandomMove(); err != nil {
		fmt.Fprintf(c.out, "no random move: %v\n", err)
		return
	}
	c.answer(ctx)
}

// answer lets the opponent move when it is its turn
func (c *CLIProcessing) answer(ctx context.Context) {
	if c.opponent == nil || c.game.IsGameOver() || c.game.Turn() != c.oppSide {
		return
	}
	if c.game.PromotionPending() {
		return
	}
	res, err := c.game.AutoMove(ctx, c.opponent)
	if err != nil {
		if !errors.Is(err, autoplay.ErrNoMoves) {
			c.logger.Errorf("opponent %s: %v", c.opponent.Name(), err)
		}
		fmt.Fprintf(c.out, "opponent failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "%s plays %s\n", c.opponent.Name(), res.SAN)
}

func (c *CLIProcessing) moveCursor(arrow byte) {
	// arrows are screen directions, flip them when black is at the bottom
	df, dr := 0, 0
	switch arrow {
	case 'A':
		dr = 1
	case 'B':
		dr = -1
	case 'C':
		df = 1
	case 'D':
		df = -1
	}
	if c.game.Orientation() == base.Black {
		df, dr = -df, -dr
	}
	if sq, ok := c.cursor.Offset(df, dr); ok {
		c.cursor = sq
	}
}

func (c *CLIProcessing) redraw() {
	Render(c.out, c.surface, c.game.Context(), &c.cursor)
	c.printStatus()
}

func (c *CLIProcessing) printStatus() {
	fmt.Fprintf(c.out, "FEN: %s\n", c.game.FEN())
	fmt.Fprintf(c.out, "Moves: %s\n", strings.Join(c.game.History(), " "))
	if c.game.IsGameOver() {
		fmt.Fprintf(c.out, "%s\n", c.game.EndingText())
		return
	}
	fmt.Fprintf(c.out, "%s (%s)\n", c.game.TurnText(), c.game.Status())
}

type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
