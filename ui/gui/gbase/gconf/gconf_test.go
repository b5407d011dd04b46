package gconf

import (
	"canvaschess/src"
	"canvaschess/src/base"
	"canvaschess/src/testutil"
	"canvaschess/ui/gui/gbase"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *c, DefaultConfig())
}

func TestLoadCorrectsInvalidValues(t *testing.T) {
	file := filepath.Join(t.TempDir(), DefaultFile)
	raw := `{
		"theme": "neon",
		"rules": "DragonTooth",
		"orientation": "up",
		"can_play": "black",
		"position": "8/8/8 w - - 0 1",
		"light_square": "#zzzzzz",
		"dark_square": "#102030",
		"selected": "orange",
		"engine_side": "white",
		"level": 42,
		"window_w": 100,
		"window_h": 900
	}`
	testutil.AssertNoError(t, os.WriteFile(file, []byte(raw), 0644))

	c, err := Load(file)
	testutil.AssertNoError(t, err)
	def := DefaultConfig()

	testutil.AssertEqual(t, c.Theme, def.Theme)
	testutil.AssertEqual(t, c.Rules, "dragontooth")
	testutil.AssertEqual(t, c.Orientation, def.Orientation)
	testutil.AssertEqual(t, c.CanPlay, "black")
	testutil.AssertEqual(t, c.Position, "")
	testutil.AssertEqual(t, c.LightSquare, def.LightSquare)
	testutil.AssertEqual(t, c.DarkSquare, "#102030")
	testutil.AssertEqual(t, c.Selected, def.Selected)
	testutil.AssertEqual(t, c.EngineSide, "white")
	testutil.AssertEqual(t, c.Level, def.Level)
	testutil.AssertEqual(t, [2]int{c.WindowW, c.WindowH}, [2]int{def.WindowW, def.WindowH})
}

func TestLoadBrokenJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), DefaultFile)
	testutil.AssertNoError(t, os.WriteFile(file, []byte("{"), 0644))
	_, err := Load(file)
	testutil.AssertTrue(t, err != nil)
}

func TestSaveRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), DefaultFile)
	c := DefaultConfig()
	c.Theme = "dark"
	c.Position = "8/4P3/8/8/8/8/k7/4K3 w - - 0 1"
	c.Engine = "random"
	testutil.AssertNoError(t, c.Save(file))

	got, err := Load(file)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *got, c)
}

func TestPaletteAndOptions(t *testing.T) {
	c := DefaultConfig()
	c.Theme = "dark"
	c.DarkSquare = "#010203"
	c.Destination = "#0a0b0c80"
	c.Orientation = "black"
	c.CanPlay = "white"

	p := c.Palette()
	testutil.AssertEqual(t, p.Bg, gbase.DarkPalette.Bg)
	testutil.AssertEqual(t, p.Dark, color.RGBA{1, 2, 3, 0xff})
	testutil.AssertEqual(t, p.Destination, color.RGBA{0x0a, 0x0b, 0x0c, 0x80})

	opts := c.Options()
	testutil.AssertEqual(t, opts.Orientation, base.Black)
	testutil.AssertEqual(t, opts.CanPlay, src.PlayWhite)
	testutil.AssertEqual(t, opts.Rules, "notnil")
}
