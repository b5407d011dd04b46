package ghelper

import (
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

var pixel *ebiten.Image

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	// anti-aliased with gg, then uploaded once
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(strokeW/2, strokeW/2, float64(w)-strokeW, float64(h)-strokeW, float64(radius))
	dc.FillPreserve()
	if strokeW > 0 {
		dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
		dc.SetLineWidth(strokeW)
		dc.Stroke()
	}
	return ebiten.NewImageFromImage(dc.Image())
}

func EbitenutilDrawRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(whitePixel(), op)
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

func EbitenutilDrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.Color) {
	if screen == nil || w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	thickness = math.Min(thickness, math.Min(w, h)/2)

	// up, down, left, right
	EbitenutilDrawRect(screen, x, y, w, thickness, col)
	EbitenutilDrawRect(screen, x, y+h-thickness, w, thickness, col)
	EbitenutilDrawRect(screen, x, y+thickness, thickness, h-thickness*2, col)
	EbitenutilDrawRect(screen, x+w-thickness, y+thickness, thickness, h-thickness*2, col)
}

// DrawImageFit draws img scaled into a size x size box around (cx, cy)
func DrawImageFit(screen, img *ebiten.Image, cx, cy, size float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	op.GeoM.Translate(cx-size/2, cy-size/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// DrawTextCentered draws every line of s centered on (cx, cy)
func DrawTextCentered(screen *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	lines := strings.Split(s, "\n")
	lineH := float64(face.Metrics().Height.Ceil())
	top := cy - lineH*float64(len(lines))/2
	for i, line := range lines {
		if line == "" {
			continue
		}
		bounds := text.BoundString(face, line)
		x := int(cx) - bounds.Dx()/2 - bounds.Min.X
		y := int(top+lineH*float64(i)+lineH/2) - (bounds.Min.Y+bounds.Max.Y)/2
		text.Draw(screen, line, face, x, y, clr)
	}
}

