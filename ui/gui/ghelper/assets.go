package ghelper

import (
	"canvaschess/src/base"
	"canvaschess/ui/gui/ghelper/gfont"
	"canvaschess/ui/gui/ghelper/gimages"

	"github.com/hajimehoshi/ebiten/v2"
)

// art is drawn large and scaled down with the board
const builtinArtSize = 128

type GUIAssetsWorker struct {
	pieceImages map[gimages.PieceKey]*ebiten.Image
	builtin     bool
	fonts       *gfont.Fonts
}

// NewGUIAssetsWorker loads the pieces sheet at sheetPath, an empty path
// selects the built-in art. A sheet that cannot be read is an
// ErrAssetUnavailable.
func NewGUIAssetsWorker(sheetPath string) (*GUIAssetsWorker, error) {
	fonts, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	aw := &GUIAssetsWorker{fonts: fonts}
	if sheetPath == "" {
		aw.builtin = true
		aw.pieceImages = gimages.BuiltinPieces(builtinArtSize, fonts.Scaled(builtinArtSize/2.4, true))
		return aw, nil
	}
	imgs, err := gimages.LoadSheet(sheetPath)
	if err != nil {
		return nil, err
	}
	aw.pieceImages = imgs
	return aw, nil
}

func (aw *GUIAssetsWorker) Piece(kind base.Kind, color base.Color) *ebiten.Image {
	return aw.pieceImages[gimages.PieceKey{Kind: kind, Color: color}]
}
func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}
func (aw *GUIAssetsWorker) IsBuiltin() bool {
	return aw.builtin
}
