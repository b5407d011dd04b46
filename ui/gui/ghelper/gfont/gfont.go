// Package gfont builds font faces from the Go fonts, so the window needs no
// font files next to the binary.
package gfont

import (
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	MinSize = 8
	MaxSize = 96
)

type Fonts struct {
	Normal font.Face // buttons, status line
	Bold   font.Face // modal titles

	regular *opentype.Font
	bold    *opentype.Font

	mu     sync.Mutex
	scaled map[faceKey]font.Face
}

type faceKey struct {
	size int
	bold bool
}

func LoadFonts() (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}

	fonts := &Fonts{regular: regular, bold: bold, scaled: make(map[faceKey]font.Face)}
	if fonts.Normal, err = fonts.face(faceKey{size: 15}); err != nil {
		return nil, err
	}
	if fonts.Bold, err = fonts.face(faceKey{size: 18, bold: true}); err != nil {
		return nil, err
	}
	return fonts, nil
}

// Scaled returns a face of about size pixels. Labels and the banner follow
// the board side, so sizes are rounded and cached.
func (f *Fonts) Scaled(size float64, bold bool) font.Face {
	key := faceKey{size: ClampSize(size), bold: bold}
	face, err := f.face(key)
	if err != nil {
		return f.Normal
	}
	return face
}

func (f *Fonts) face(key faceKey) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.scaled[key]; ok {
		return face, nil
	}
	src := f.regular
	if key.bold {
		src = f.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(key.size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	f.scaled[key] = face
	return face, nil
}

func ClampSize(size float64) int {
	s := int(math.Round(size))
	if s < MinSize {
		return MinSize
	}
	if s > MaxSize {
		return MaxSize
	}
	return s
}
