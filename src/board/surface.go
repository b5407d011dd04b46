package board

import "canvaschess/src/base"

type HighlightKind uint8

const (
	HighlightSelected HighlightKind = iota
	HighlightDestination
)

type Overlay struct {
	Square base.Square
	Kind   HighlightKind
	Rect   base.Rect
}

type PickerOption struct {
	Kind   base.Kind
	Center base.Point
	Bounds base.Rect
}

type PickerView struct {
	Title      string
	Rect       base.Rect
	Color      base.Color
	SquareSize float64
	Options    []PickerOption
}

// Surface is whatever draws the board: the ebiten scene, the terminal
// renderer, an SVG snapshot or a recording in tests. Coordinates are
// board-local pixels.
type Surface interface {
	// PlacePiece adds the sprite or updates its center and size
	PlacePiece(p *Piece, center base.Point, size float64)
	MovePiece(p *Piece, center base.Point)
	RemovePiece(p *Piece)
	DrawHighlights(overlays []Overlay)
	ClearHighlights()
	ShowPicker(v PickerView)
	HidePicker()
}

type HitTestable interface {
	IsWithin(pt base.Point) bool
}

type Positionable interface {
	Center(sq base.Square) base.Point
	SquareAt(pt base.Point) (base.Square, error)
}

type Renderable interface {
	Render(s Surface)
}

var (
	_ HitTestable  = (*Context)(nil)
	_ Positionable = (*Context)(nil)
	_ HitTestable  = (*Picker)(nil)
	_ Renderable   = (*Picker)(nil)
)

// NopSurface draws nothing
type NopSurface struct{}

func (NopSurface) PlacePiece(*Piece, base.Point, float64) {}
func (NopSurface) MovePiece(*Piece, base.Point)           {}
func (NopSurface) RemovePiece(*Piece)                     {}
func (NopSurface) DrawHighlights([]Overlay)               {}
func (NopSurface) ClearHighlights()                       {}
func (NopSurface) ShowPicker(PickerView)                  {}
func (NopSurface) HidePicker()                            {}
