package cli

import (
	"canvaschess/src/base"
	"canvaschess/src/board"
	"canvaschess/src/render/record"
	"fmt"
	"io"
	"strings"
)

// ANSI-code
const (
	reset    = "\033[0m"
	lightBg  = "\033[47m"
	darkBg   = "\033[100m"
	selectBg = "\033[43m"
	moveBg   = "\033[42m"
	cursorBg = "\033[46m"
	whiteF   = "\033[97m"
	blackF   = "\033[30m"
	dimF     = "\033[90m"
)

var glyphs = map[base.Color]map[base.Kind]string{
	base.White: {base.King: "♔", base.Queen: "♕", base.Rook: "♖", base.Bishop: "♗", base.Knight: "♘", base.Pawn: "♙"},
	base.Black: {base.King: "♚", base.Queen: "♛", base.Rook: "♜", base.Bishop: "♝", base.Knight: "♞", base.Pawn: "♟"},
}

func glyph(kind base.Kind, c base.Color) string {
	if g, ok := glyphs[c][kind]; ok {
		return g
	}
	return "?"
}

// Render prints what the surface holds: sprites, highlights and the open
// picker. Rows and labels follow the board orientation. cursor may be nil.
func Render(w io.Writer, s *record.Surface, ctx *board.Context, cursor *base.Square) {
	var grid [64]*record.Sprite
	for _, sp := range s.Sprites() {
		sq, err := ctx.SquareAt(sp.Center)
		if err != nil {
			continue
		}
		sp := sp
		grid[sq.Index()] = &sp
	}
	marks := s.Highlighted()
	files, ranks := ctx.Labels()

	header := "   " + strings.Join(files, "  ")
	fmt.Fprintln(w)
	fmt.Fprintln(w, header)
	for row := 0; row < 8; row++ {
		fmt.Fprintf(w, "%s ", ranks[row])
		for col := 0; col < 8; col++ {
			pt := base.Point{X: ctx.Origin.X + (float64(col)+0.5)*ctx.SquareSize, Y: ctx.Origin.Y + (float64(row)+0.5)*ctx.SquareSize}
			sq, err := ctx.SquareAt(pt)
			if err != nil {
				continue
			}

			bg := darkBg
			if sq.IsLight() {
				bg = lightBg
			}
			if kind, ok := marks[sq]; ok {
				bg = moveBg
				if kind == board.HighlightSelected {
					bg = selectBg
				}
			}
			if cursor != nil && *cursor == sq {
				bg = cursorBg
			}

			g, fg := " ", dimF
			if sp := grid[sq.Index()]; sp != nil {
				g = glyph(sp.Kind, sp.Color)
				fg = blackF
				if sp.Color == base.White && !sq.IsLight() {
					fg = whiteF
				}
			}
			fmt.Fprintf(w, "%s%s %s %s", bg, fg, g, reset)
		}
		fmt.Fprintf(w, " %s\n", ranks[row])
	}
	fmt.Fprintln(w, header)

	if v, ok := s.Picker(); ok {
		var opts []string
		for _, o := range v.Options {
			letter := strings.ToLower(string(base.ConvertRuneFromPiece(o.Kind, base.White)))
			opts = append(opts, fmt.Sprintf("[%s] %s %s", letter, glyph(o.Kind, v.Color), o.Kind))
		}
		fmt.Fprintf(w, "%s: %s\n", v.Title, strings.Join(opts, "  "))
	}
	fmt.Fprintln(w)
}
