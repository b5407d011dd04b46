package gdraw

import (
	"canvaschess/src/base"
	"canvaschess/src/board"
	"canvaschess/src/render/record"
)

// slide time of a moved sprite, seconds
const slideDuration = 0.15

type slide struct {
	from    base.Point
	elapsed float64
}

// BoardSurface keeps what the controller drew and slides moved sprites to
// their new square over a few frames.
type BoardSurface struct {
	*record.Surface
	slides map[*board.Piece]*slide
}

func NewBoardSurface() *BoardSurface {
	return &BoardSurface{Surface: record.NewUntraced(), slides: make(map[*board.Piece]*slide)}
}

func (s *BoardSurface) PlacePiece(p *board.Piece, center base.Point, size float64) {
	delete(s.slides, p)
	s.Surface.PlacePiece(p, center, size)
}

func (s *BoardSurface) MovePiece(p *board.Piece, center base.Point) {
	if sp, ok := s.Sprite(p); ok {
		s.slides[p] = &slide{from: s.Position(p, sp)}
	}
	s.Surface.MovePiece(p, center)
}

func (s *BoardSurface) RemovePiece(p *board.Piece) {
	delete(s.slides, p)
	s.Surface.RemovePiece(p)
}

// Step advances slides by dt seconds
func (s *BoardSurface) Step(dt float64) {
	for p, sl := range s.slides {
		sl.elapsed += dt
		if sl.elapsed >= slideDuration {
			delete(s.slides, p)
		}
	}
}

func (s *BoardSurface) IsSliding(p *board.Piece) bool {
	_, ok := s.slides[p]
	return ok
}

// Position is where sp is drawn now
func (s *BoardSurface) Position(p *board.Piece, sp record.Sprite) base.Point {
	sl, ok := s.slides[p]
	if !ok {
		return sp.Center
	}
	t := easeOut(sl.elapsed / slideDuration)
	return base.Point{
		X: sl.from.X + (sp.Center.X-sl.from.X)*t,
		Y: sl.from.Y + (sp.Center.Y-sl.from.Y)*t,
	}
}

func easeOut(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - (1-t)*(1-t)
}
