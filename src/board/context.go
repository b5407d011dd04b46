package board

import "canvaschess/src/base"

// Cells across the whole board: the 8x8 grid plus a label border on each side.
const BoardCells = 10

// Context is the board geometry shared by the mapper, the controller and the
// picker. Points handed to it are board-local, the grid starts one cell in.
type Context struct {
	Bottom     base.Color
	Side       float64
	SquareSize float64
	Origin     base.Point
}

func NewContext(side float64, bottom base.Color) *Context {
	c := &Context{Bottom: bottom}
	c.Resize(side)
	return c
}

func (c *Context) Resize(side float64) {
	c.Side = side
	c.SquareSize = side / BoardCells
	c.Origin = base.Point{X: c.SquareSize, Y: c.SquareSize}
}

func (c *Context) Rotate() {
	c.Bottom = c.Bottom.Other()
}

func (c *Context) Grid() base.Rect {
	return base.Rect{X: c.Origin.X, Y: c.Origin.Y, W: c.SquareSize * 8, H: c.SquareSize * 8}
}

func (c *Context) Center(sq base.Square) base.Point {
	return SquareToPixelCenter(sq, c.SquareSize, c.Bottom).Add(c.Origin)
}

func (c *Context) SquareRect(sq base.Square) base.Rect {
	r := SquareBounds(sq, c.SquareSize, c.Bottom)
	r.X += c.Origin.X
	r.Y += c.Origin.Y
	return r
}

func (c *Context) SquareAt(pt base.Point) (base.Square, error) {
	return PixelToSquare(pt.Sub(c.Origin), c.SquareSize, c.Bottom)
}

func (c *Context) IsWithin(pt base.Point) bool {
	return c.Grid().Contains(pt)
}

// Labels lists the file letters left to right and rank digits top to bottom
// as they appear for the current orientation.
func (c *Context) Labels() (files, ranks []string) {
	for i := 0; i < 8; i++ {
		f, r := i, 7-i
		if c.Bottom == base.Black {
			f, r = 7-i, i
		}
		files = append(files, string(rune('a'+f)))
		ranks = append(ranks, string(rune('1'+r)))
	}
	return files, ranks
}
