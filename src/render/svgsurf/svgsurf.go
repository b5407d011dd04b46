// Package svgsurf draws a board snapshot as SVG with ajstarks/svgo.
package svgsurf

import (
	"canvaschess/src/base"
	"canvaschess/src/board"
	"canvaschess/src/render/record"
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

type Theme struct {
	Light       color.RGBA
	Dark        color.RGBA
	Frame       color.RGBA
	Label       color.RGBA
	Selected    color.RGBA
	Destination color.RGBA
}

var DefaultTheme = Theme{
	Light:       color.RGBA{0xf0, 0xd9, 0xb5, 0xff},
	Dark:        color.RGBA{0xb5, 0x88, 0x63, 0xff},
	Frame:       color.RGBA{0x5c, 0x40, 0x33, 0xff},
	Label:       color.RGBA{0xee, 0xee, 0xee, 0xff},
	Selected:    color.RGBA{0xff, 0x7f, 0x00, 0xe6},
	Destination: color.RGBA{0x33, 0xff, 0x33, 0x66},
}

// Surface records board commands and writes them out on demand.
type Surface struct {
	*record.Surface
	ctx   *board.Context
	theme Theme
}

func New(ctx *board.Context, theme Theme) *Surface {
	return &Surface{Surface: record.NewUntraced(), ctx: ctx, theme: theme}
}

func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	side := px(s.ctx.Side)
	sq := s.ctx.SquareSize

	canvas := svg.New(cw)
	canvas.Start(side, side)
	canvas.Title("canvaschess")
	canvas.Rect(0, 0, side, side, fill(s.theme.Frame))

	for i := 0; i < 64; i++ {
		cell, _ := base.SquareFromIndex(i)
		r := s.ctx.SquareRect(cell)
		c := s.theme.Dark
		if cell.IsLight() {
			c = s.theme.Light
		}
		canvas.Rect(px(r.X), px(r.Y), px(r.W)+1, px(r.H)+1, fill(c))
	}

	files, ranks := s.ctx.Labels()
	fontSize := px(sq / 2.5)
	labelStyle := fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%dpx;%s", fontSize, fill(s.theme.Label))
	canvas.Gstyle(labelStyle)
	for i := 0; i < 8; i++ {
		x := px(sq*float64(i+1) + sq/2)
		y := px(sq*float64(i+1) + sq/2 + sq/6)
		canvas.Text(x, px(sq*9+sq/2+sq/6), files[i])
		canvas.Text(px(sq/2), y, ranks[i])
	}
	canvas.Gend()

	for _, o := range s.Highlights() {
		c := s.theme.Destination
		if o.Kind == board.HighlightSelected {
			c = s.theme.Selected
		}
		canvas.Rect(px(o.Rect.X), px(o.Rect.Y), px(o.Rect.W), px(o.Rect.H), fill(c))
	}

	for _, sp := range s.Sprites() {
		drawPiece(canvas, sp.Kind, sp.Color, sp.Center, sp.Size)
	}

	if v, ok := s.Picker(); ok {
		canvas.Rect(0, 0, side, side, "fill:black;fill-opacity:0.4")
		canvas.Roundrect(px(v.Rect.X), px(v.Rect.Y), px(v.Rect.W), px(v.Rect.H), 15, 15, "fill:white")
		canvas.Text(px(v.Rect.X+v.Rect.W/2), px(v.Rect.Y+v.Rect.H/9*2), v.Title,
			fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-weight:bold;font-size:%dpx", px(v.SquareSize/2.5)))
		for _, o := range v.Options {
			drawPiece(canvas, o.Kind, v.Color, o.Center, v.SquareSize)
		}
	}

	canvas.End()
	return cw.n, cw.err
}

func drawPiece(canvas *svg.SVG, kind base.Kind, c base.Color, center base.Point, size float64) {
	body, ink := "fill:white;stroke:black;stroke-width:2", "fill:black"
	if c == base.Black {
		body, ink = "fill:black;stroke:white;stroke-width:2", "fill:white"
	}
	canvas.Circle(px(center.X), px(center.Y), px(size*0.38), body)
	letter := string(base.ConvertRuneFromPiece(kind, base.White))
	canvas.Text(px(center.X), px(center.Y+size/7), letter,
		fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-weight:bold;font-size:%dpx;%s", px(size/2.4), ink))
}

func fill(c color.RGBA) string {
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.2f", c.R, c.G, c.B, float64(c.A)/255)
}

func px(v float64) int {
	return int(math.Round(v))
}

type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
