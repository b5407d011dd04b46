package gimages

import (
	"canvaschess/src/base"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
)

type PieceKey struct {
	Kind  base.Kind
	Color base.Color
}

// SheetOrder is the column order of a pieces sheet, white row on top
var SheetOrder = [6]base.Kind{base.King, base.Queen, base.Bishop, base.Knight, base.Rook, base.Pawn}

func AllKeys() []PieceKey {
	keys := make([]PieceKey, 0, 12)
	for _, c := range []base.Color{base.White, base.Black} {
		for _, k := range SheetOrder {
			keys = append(keys, PieceKey{Kind: k, Color: c})
		}
	}
	return keys
}

// FrameSize checks that a w x h sheet splits into 6x2 frames
func FrameSize(w, h int) (fw, fh int, err error) {
	if w < 6 || h < 2 || w%6 != 0 || h%2 != 0 {
		return 0, 0, fmt.Errorf("%w: sheet %dx%d is not 6x2 frames", base.ErrAssetUnavailable, w, h)
	}
	return w / 6, h / 2, nil
}

func FrameRect(key PieceKey, fw, fh int) image.Rectangle {
	col := 0
	for i, k := range SheetOrder {
		if k == key.Kind {
			col = i
		}
	}
	row := 0
	if key.Color == base.Black {
		row = 1
	}
	return image.Rect(col*fw, row*fh, (col+1)*fw, (row+1)*fh)
}

func LoadSheet(path string) (map[PieceKey]*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", base.ErrAssetUnavailable, err)
	}
	b := img.Bounds()
	fw, fh, err := FrameSize(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	figureImages := make(map[PieceKey]*ebiten.Image, 12)
	for _, key := range AllKeys() {
		figureImages[key] = img.SubImage(FrameRect(key, fw, fh).Add(b.Min)).(*ebiten.Image)
	}
	return figureImages, nil
}

// BuiltinPieces draws the fallback art once at size pixels
func BuiltinPieces(size int, face font.Face) map[PieceKey]*ebiten.Image {
	figureImages := make(map[PieceKey]*ebiten.Image, 12)
	for _, key := range AllKeys() {
		figureImages[key] = ebiten.NewImageFromImage(DrawPiece(key, size, face))
	}
	return figureImages
}
