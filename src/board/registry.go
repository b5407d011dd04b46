package board

import (
	"canvaschess/src/base"
	"canvaschess/src/logic/convert/convfen"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Piece is one board occupant. The pointer is its identity, surfaces key
// their sprites by it.
type Piece struct {
	ID       int
	Kind     base.Kind
	Color    base.Color
	Square   base.Square
	Disposed bool
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s@%s", p.Color, p.Kind, p.Square)
}

// Registry is the square to piece map, at most one piece per square.
type Registry struct {
	pieces map[base.Square]*Piece
	nextID int
}

func NewRegistry() *Registry {
	return &Registry{pieces: make(map[base.Square]*Piece)}
}

// Spawn creates a fresh piece and adds it
func (r *Registry) Spawn(sq base.Square, kind base.Kind, color base.Color) (*Piece, error) {
	r.nextID++
	p := &Piece{ID: r.nextID, Kind: kind, Color: color}
	if err := r.Add(sq, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Registry) Add(sq base.Square, p *Piece) error {
	if !sq.IsValid() {
		return fmt.Errorf("%w: %v", base.ErrInvalidSquare, sq)
	}
	if occ, ok := r.pieces[sq]; ok {
		return fmt.Errorf("%w: %s holds %s", base.ErrSquareOccupied, sq, occ)
	}
	p.Square = sq
	p.Disposed = false
	r.pieces[sq] = p
	return nil
}

func (r *Registry) Remove(sq base.Square) (*Piece, bool) {
	p, ok := r.pieces[sq]
	if ok {
		delete(r.pieces, sq)
	}
	return p, ok
}

// Move never captures, the caller removes the occupant of to first
func (r *Registry) Move(from, to base.Square) error {
	p, ok := r.pieces[from]
	if !ok {
		return fmt.Errorf("%w: %s", base.ErrEmptySquare, from)
	}
	if from == to {
		return nil
	}
	if occ, ok := r.pieces[to]; ok {
		return fmt.Errorf("%w: %s holds %s", base.ErrSquareOccupied, to, occ)
	}
	delete(r.pieces, from)
	p.Square = to
	r.pieces[to] = p
	return nil
}

func (r *Registry) Get(sq base.Square) (*Piece, bool) {
	p, ok := r.pieces[sq]
	return p, ok
}

func (r *Registry) Len() int {
	return len(r.pieces)
}

// Reset replaces every entry from a placement or a full FEN. On a parse
// error the registry is left as it was.
func (r *Registry) Reset(desc string) error {
	placement, err := convfen.ParsePlacement(desc)
	if err != nil {
		return err
	}
	for _, p := range r.pieces {
		p.Disposed = true
	}
	r.pieces = make(map[base.Square]*Piece)
	for idx, c := range placement {
		if c.Empty() {
			continue
		}
		sq, _ := base.SquareFromIndex(idx)
		if _, err := r.Spawn(sq, c.Kind, c.Color); err != nil {
			return err
		}
	}
	return nil
}

// Pieces returns the occupants ordered a1, b1 .. h8
func (r *Registry) Pieces() []*Piece {
	squares := maps.Keys(r.pieces)
	slices.SortFunc(squares, func(a, b base.Square) int {
		return a.Index() - b.Index()
	})
	out := make([]*Piece, 0, len(squares))
	for _, sq := range squares {
		out = append(out, r.pieces[sq])
	}
	return out
}

func (r *Registry) Placement() string {
	var p convfen.Placement
	for sq, pc := range r.pieces {
		p[sq.Index()] = convfen.Cell{Kind: pc.Kind, Color: pc.Color}
	}
	return convfen.FormatPlacement(p)
}
