package board

import (
	"canvaschess/src/base"
	"canvaschess/src/logic/rules"
)

const PickerTitle = "Promotion"

// Picker is the modal promotion window: four options in the mover's color
// laid out over the middle of the grid.
type Picker struct {
	open       bool
	square     base.Square
	color      base.Color
	candidates []rules.Notation
	view       PickerView
}

func NewPicker() *Picker {
	return &Picker{}
}

func (p *Picker) Open(sq base.Square, color base.Color, candidates []rules.Notation, ctx *Context) {
	p.open = true
	p.square = sq
	p.color = color
	p.candidates = append([]rules.Notation(nil), candidates...)
	p.Resize(ctx)
}

func (p *Picker) Close() {
	p.open = false
	p.candidates = nil
}

func (p *Picker) IsOpen() bool {
	return p.open
}

func (p *Picker) Square() base.Square {
	return p.square
}

func (p *Picker) Candidates() []rules.Notation {
	return p.candidates
}

// Resize lays the window out again for a new square size, the pending
// candidates stay.
func (p *Picker) Resize(ctx *Context) {
	sq := ctx.SquareSize
	w, h := sq*4*1.5, sq*2
	grid := ctx.Grid()
	x := grid.X + (grid.W-w)/2
	y := grid.Y + (grid.H-h)/2

	p.view = PickerView{
		Title:      PickerTitle,
		Rect:       base.Rect{X: x, Y: y, W: w, H: h},
		Color:      p.color,
		SquareSize: sq,
	}
	hSpacing := w / 5
	vSpacing := h / 3 * 2
	for i, kind := range base.PromotionKinds {
		c := base.Point{X: x + hSpacing*float64(i+1), Y: y + vSpacing}
		p.view.Options = append(p.view.Options, PickerOption{
			Kind:   kind,
			Center: c,
			Bounds: base.Rect{X: c.X - sq/2, Y: c.Y - sq/2, W: sq, H: sq},
		})
	}
}

func (p *Picker) View() PickerView {
	return p.view
}

func (p *Picker) IsWithin(pt base.Point) bool {
	return p.open && p.view.Rect.Contains(pt)
}

// HitTest resolves a point to the option under it
func (p *Picker) HitTest(pt base.Point) (base.Kind, bool) {
	if !p.IsWithin(pt) {
		return base.NoKind, false
	}
	for _, o := range p.view.Options {
		if o.Bounds.Contains(pt) {
			return o.Kind, true
		}
	}
	return base.NoKind, false
}

// OptionCenter is where a click selects kind
func (p *Picker) OptionCenter(kind base.Kind) (base.Point, bool) {
	for _, o := range p.view.Options {
		if o.Kind == kind {
			return o.Center, true
		}
	}
	return base.Point{}, false
}

// Candidate finds the pending move that promotes to kind
func (p *Picker) Candidate(kind base.Kind) (rules.Notation, bool) {
	for _, n := range p.candidates {
		if n.Promotion == kind {
			return n, true
		}
	}
	return rules.Notation{}, false
}

func (p *Picker) Render(s Surface) {
	if p.open {
		s.ShowPicker(p.view)
		return
	}
	s.HidePicker()
}
