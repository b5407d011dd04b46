package gimages

import (
	"canvaschess/src/base"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// DrawPiece renders a disc with the piece letter, light body for white
func DrawPiece(key PieceKey, size int, face font.Face) image.Image {
	s := float64(size)
	dc := gg.NewContext(size, size)

	body, ink := 1.0, 0.0
	if key.Color == base.Black {
		body, ink = 0.0, 1.0
	}
	dc.DrawCircle(s/2, s/2, s*0.38)
	dc.SetRGB(body, body, body)
	dc.FillPreserve()
	dc.SetRGB(ink, ink, ink)
	dc.SetLineWidth(s / 30)
	dc.Stroke()

	if face != nil {
		dc.SetFontFace(face)
	}
	letter := string(base.ConvertRuneFromPiece(key.Kind, base.White))
	dc.DrawStringAnchored(letter, s/2, s/2, 0.5, 0.35)
	return dc.Image()
}
