// Package record keeps the last drawn state of a board in memory. The
// terminal frontend prints from it and tests inspect it.
package record

import (
	"canvaschess/src/base"
	"canvaschess/src/board"
	"fmt"
)

type Sprite struct {
	Kind   base.Kind
	Color  base.Color
	Center base.Point
	Size   float64
}

type Surface struct {
	sprites    map[*board.Piece]Sprite
	highlights []board.Overlay
	picker     *board.PickerView
	calls      []string
	untraced   bool
}

func New() *Surface {
	return &Surface{sprites: make(map[*board.Piece]Sprite)}
}

// NewUntraced keeps the state but not the call log, for long running frontends
func NewUntraced() *Surface {
	s := New()
	s.untraced = true
	return s
}

func (s *Surface) trace(format string, args ...interface{}) {
	if s.untraced {
		return
	}
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *Surface) PlacePiece(p *board.Piece, center base.Point, size float64) {
	s.sprites[p] = Sprite{Kind: p.Kind, Color: p.Color, Center: center, Size: size}
	s.trace("place %s", p)
}

func (s *Surface) MovePiece(p *board.Piece, center base.Point) {
	sp, ok := s.sprites[p]
	if !ok {
		sp = Sprite{Kind: p.Kind, Color: p.Color}
	}
	sp.Center = center
	s.sprites[p] = sp
	s.trace("move %s %s", p.Color, p.Kind)
}

func (s *Surface) RemovePiece(p *board.Piece) {
	delete(s.sprites, p)
	s.trace("remove %s", p)
}

func (s *Surface) DrawHighlights(overlays []board.Overlay) {
	s.highlights = append([]board.Overlay(nil), overlays...)
	s.trace("highlight %d", len(overlays))
}

func (s *Surface) ClearHighlights() {
	s.highlights = nil
	s.trace("clear highlights")
}

func (s *Surface) ShowPicker(v board.PickerView) {
	s.picker = &v
	s.trace("show picker")
}

func (s *Surface) HidePicker() {
	s.picker = nil
	s.trace("hide picker")
}

func (s *Surface) Sprites() map[*board.Piece]Sprite {
	return s.sprites
}

func (s *Surface) Sprite(p *board.Piece) (Sprite, bool) {
	sp, ok := s.sprites[p]
	return sp, ok
}

func (s *Surface) Highlights() []board.Overlay {
	return s.highlights
}

// Highlighted maps each highlighted square to its kind
func (s *Surface) Highlighted() map[base.Square]board.HighlightKind {
	out := make(map[base.Square]board.HighlightKind, len(s.highlights))
	for _, o := range s.highlights {
		out[o.Square] = o.Kind
	}
	return out
}

func (s *Surface) Picker() (board.PickerView, bool) {
	if s.picker == nil {
		return board.PickerView{}, false
	}
	return *s.picker, true
}

func (s *Surface) Calls() []string {
	return s.calls
}

func (s *Surface) ResetCalls() {
	s.calls = nil
}
