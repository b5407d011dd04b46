package gbase

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW int = 1000
	WindowH int = 760

	MinWindowW int = 480
	MinWindowH int = 400

	PanelW  = 200 // buttons column right of the board
	BannerH = 56  // turn banner above the board
	Margin  = 16
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA

	// board
	Light       color.RGBA
	Dark        color.RGBA
	Frame       color.RGBA
	Label       color.RGBA
	Selected    color.RGBA
	Destination color.RGBA
	PickerBg    color.RGBA
}

func (p Palette) String() string {
	switch p.Bg {
	case LightPalette.Bg:
		return "light"
	case DarkPalette.Bg:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "light":
		return LightPalette
	case "dark":
		return DarkPalette
	default:
	}
	return Palette{}
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x66},

	Light:       color.RGBA{0xf0, 0xd9, 0xb5, 0xff},
	Dark:        color.RGBA{0xb5, 0x88, 0x63, 0xff},
	Frame:       color.RGBA{0x5c, 0x40, 0x33, 0xff},
	Label:       color.RGBA{0xee, 0xee, 0xee, 0xff},
	Selected:    color.RGBA{0xff, 0x7f, 0x00, 0xe6},
	Destination: color.RGBA{0x33, 0xff, 0x33, 0x66},
	PickerBg:    color.RGBA{0xff, 0xff, 0xff, 0xff},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},

	Light:       color.RGBA{0xde, 0xe3, 0xe6, 0xff},
	Dark:        color.RGBA{0x8c, 0xa2, 0xad, 0xff},
	Frame:       color.RGBA{0x2b, 0x2f, 0x33, 0xff},
	Label:       color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	Selected:    color.RGBA{0xff, 0x7f, 0x00, 0xe6},
	Destination: color.RGBA{0x33, 0xff, 0x33, 0x66},
	PickerBg:    color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
}

// ParseHexColor reads #rrggbb or #rrggbbaa
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// HexColor is the inverse of ParseHexColor, alpha is dropped when opaque
func HexColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
