package gimages

import (
	"canvaschess/src/base"
	"canvaschess/src/testutil"
	"image"
	"image/color"
	"testing"
)

func TestFrameSize(t *testing.T) {
	fw, fh, err := FrameSize(360, 120)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, [2]int{fw, fh}, [2]int{60, 60})

	for _, wh := range [][2]int{{0, 0}, {361, 120}, {360, 121}, {5, 2}} {
		_, _, err := FrameSize(wh[0], wh[1])
		testutil.AssertErrorIs(t, err, base.ErrAssetUnavailable)
	}
}

func TestFrameRect(t *testing.T) {
	testutil.AssertEqual(t, FrameRect(PieceKey{base.King, base.White}, 60, 60), image.Rect(0, 0, 60, 60))
	testutil.AssertEqual(t, FrameRect(PieceKey{base.Knight, base.White}, 60, 60), image.Rect(180, 0, 240, 60))
	testutil.AssertEqual(t, FrameRect(PieceKey{base.Pawn, base.Black}, 60, 60), image.Rect(300, 60, 360, 120))
}

func TestAllKeys(t *testing.T) {
	keys := AllKeys()
	testutil.AssertEqual(t, len(keys), 12)
	testutil.AssertEqual(t, keys[0], PieceKey{base.King, base.White})
	testutil.AssertEqual(t, keys[11], PieceKey{base.Pawn, base.Black})
}

func TestLoadSheetMissingFile(t *testing.T) {
	_, err := LoadSheet("does/not/exist.png")
	testutil.AssertErrorIs(t, err, base.ErrAssetUnavailable)
}

func TestDrawPiece(t *testing.T) {
	const size = 60
	img := DrawPiece(PieceKey{base.Queen, base.Black}, size, nil)
	testutil.AssertEqual(t, img.Bounds(), image.Rect(0, 0, size, size))

	// corner is outside the disc
	_, _, _, a := img.At(1, 1).RGBA()
	testutil.AssertEqual(t, a, uint32(0))

	// below the letter the body shows
	r, g, b, a := color.RGBAModel.Convert(img.At(size/2, size/2+size*3/10)).RGBA()
	testutil.AssertEqual(t, [4]uint32{r, g, b, a}, [4]uint32{0, 0, 0, 0xffff})
}
