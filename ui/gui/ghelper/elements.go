package ghelper

import (
	"canvaschess/ui/gui/gbase"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke
	OnClick    func() error
	Enabled    func() bool // nil means always

	// animation state
	Hover         bool
	Pressed       bool
	Scale         float64
	TargetScale   float64
	OffsetY       float64 // pressed effect
	TargetOffsetY float64
	AnimSpeed     float64 // per second
}

func NewButton(label string, onClick func() error) *Button {
	return &Button{Label: label, OnClick: onClick, Scale: 1, TargetScale: 1, AnimSpeed: 10}
}

// Place moves the button and renders its background when the size changed
func (b *Button) Place(x, y, w, h int, theme gbase.Palette) {
	if b.Image == nil || b.W != w || b.H != h {
		b.Image = RenderRoundedRect(w, h, 12, theme.ButtonFill, theme.ButtonStroke, 3)
	}
	b.X, b.Y, b.W, b.H = x, y, w, h
}

func (b *Button) IsEnabled() bool {
	return b.Enabled == nil || b.Enabled()
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// HandleInput returns true when a press started and ended on the button
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py) && b.IsEnabled()
	b.Hover = inside

	if justClicked && inside {
		b.Pressed = true
		b.TargetScale = 0.96
		b.TargetOffsetY = 3
	}
	if justReleased {
		clicked := b.Pressed && inside
		b.Pressed = false
		b.TargetOffsetY = 0
		b.TargetScale = 1
		if clicked {
			b.TargetScale = 1.03
			return true
		}
	}
	if !b.Pressed {
		b.TargetOffsetY = 0
		if inside {
			b.TargetScale = 1.02
		} else if b.TargetScale != 1.03 {
			b.TargetScale = 1
		}
	}
	return false
}

func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8
	}
	t := 1 - math.Exp(-b.AnimSpeed*dt)
	b.Scale += (b.TargetScale - b.Scale) * t
	b.OffsetY += (b.TargetOffsetY - b.OffsetY) * t

	// click bounce settles back
	if !b.Pressed && math.Abs(b.Scale-1.03) < 0.005 {
		b.TargetScale = 1
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X) + float64(b.W)/2
	cy := float64(b.Y) + float64(b.H)/2 + b.OffsetY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	if !b.IsEnabled() {
		op.ColorScale.ScaleAlpha(0.5)
	}
	screen.DrawImage(b.Image, op)

	DrawTextCentered(screen, b.Label, face, cx, cy, theme.ButtonText)
}

// ---- MessageBox ----

type MessageBox struct {
	Open    bool
	Opening bool
	Scale   float64 // 0..1
	Text    string
	OnClose func()
}

func (mb *MessageBox) ShowMessage(msg string, onClose func()) {
	mb.Text = msg
	mb.Open = true
	mb.Opening = true
	mb.Scale = 0
	mb.OnClose = onClose
}

func (mb *MessageBox) Collapse() {
	mb.Opening = false
}

// Animate scales the box in or out, the close handler runs once it is gone
func (mb *MessageBox) Animate(dt float64) {
	const speed = 6.0
	if !mb.Open {
		return
	}
	if mb.Opening {
		mb.Scale = math.Min(1, mb.Scale+speed*dt)
		return
	}
	mb.Scale -= speed * dt
	if mb.Scale <= 0 {
		mb.Scale = 0
		mb.Open = false
		if mb.OnClose != nil {
			mb.OnClose()
		}
	}
}

// ModalRect is the box for a text of textW x textH at full scale, ok is
// its button
func ModalRect(windW, windH, textW, textH int) (box, ok image.Rectangle) {
	mw := textW + 64
	mh := textH + 120
	mx := (windW - mw) / 2
	my := (windH - mh) / 2
	box = image.Rect(mx, my, mx+mw, my+mh)

	okW, okH := 120, 44
	okX := mx + (mw-okW)/2
	okY := my + mh - 56
	return box, image.Rect(okX, okY, okX+okW, okY+okH)
}
