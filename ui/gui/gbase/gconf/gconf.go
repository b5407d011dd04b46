package gconf

import (
	"canvaschess/src"
	"canvaschess/src/autoplay"
	"canvaschess/src/base"
	"canvaschess/src/logic/convert/convfen"
	"canvaschess/src/logic/rules/dragon"
	"canvaschess/src/logic/rules/notnil"
	"canvaschess/ui/gui/gbase"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const DefaultFile = "canvaschess.json"

type Config struct {
	Theme       string `json:"theme"`        // light/dark
	Rules       string `json:"rules"`        // notnil/dragontooth
	Orientation string `json:"orientation"`  // white/black at the bottom
	CanPlay     string `json:"can_play"`     // both/white/black/none
	Position    string `json:"position"`     // FEN, empty for the start position
	PiecesSheet string `json:"pieces_sheet"` // 6x2 sprite sheet, empty for built-in art
	LightSquare string `json:"light_square"` // #rrggbb
	DarkSquare  string `json:"dark_square"`  //
	Selected    string `json:"selected"`     // #rrggbbaa
	Destination string `json:"destination"`  //
	Engine      string `json:"engine"`       // empty, random or path to UCI engine
	EngineSide  string `json:"engine_side"`  // white/black
	Level       int    `json:"level"`        // 1..10
	WindowH     int    `json:"window_h"`     //
	WindowW     int    `json:"window_w"`     //
	Debug       bool   `json:"debug"`        // true/false
}

func DefaultConfig() Config {
	return Config{
		Theme:       "light",
		Rules:       notnil.Name,
		Orientation: "white",
		CanPlay:     "both",
		Position:    "",
		PiecesSheet: "",
		LightSquare: gbase.HexColor(gbase.LightPalette.Light),
		DarkSquare:  gbase.HexColor(gbase.LightPalette.Dark),
		Selected:    gbase.HexColor(gbase.LightPalette.Selected),
		Destination: gbase.HexColor(gbase.LightPalette.Destination),
		Engine:      "",
		EngineSide:  "black",
		Level:       int(autoplay.DefaultLevel),
		WindowH:     gbase.WindowH,
		WindowW:     gbase.WindowW,
		Debug:       false,
	}
}

// Load reads file, a missing file gives the defaults
func Load(file string) (*Config, error) {
	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		def := DefaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save(file string) error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, jsonData, 0644)
}

// Palette is the theme with the configured board colors on top
func (c *Config) Palette() gbase.Palette {
	p := gbase.PaletteFromString(c.Theme)
	if col, err := gbase.ParseHexColor(c.LightSquare); err == nil {
		p.Light = col
	}
	if col, err := gbase.ParseHexColor(c.DarkSquare); err == nil {
		p.Dark = col
	}
	if col, err := gbase.ParseHexColor(c.Selected); err == nil {
		p.Selected = col
	}
	if col, err := gbase.ParseHexColor(c.Destination); err == nil {
		p.Destination = col
	}
	return p
}

// Options turns the board part of the config into game options
func (c *Config) Options() src.Options {
	orientation, _ := base.ColorFromString(c.Orientation)
	canPlay, _ := src.ParseCanPlay(c.CanPlay)
	return src.Options{
		Orientation: orientation,
		CanPlay:     canPlay,
		Position:    c.Position,
		Rules:       c.Rules,
	}
}

func correctableConfig(c *Config) {
	def := DefaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	c.Rules = strings.ToLower(c.Rules)
	if c.Rules != notnil.Name && c.Rules != dragon.Name {
		c.Rules = def.Rules
	}
	if _, err := base.ColorFromString(c.Orientation); err != nil {
		c.Orientation = def.Orientation
	}
	if _, err := src.ParseCanPlay(c.CanPlay); err != nil {
		c.CanPlay = def.CanPlay
	}
	if c.Position != "" && convfen.ValidateFEN(c.Position) != nil {
		c.Position = def.Position
	}
	for _, f := range []struct {
		val *string
		def string
	}{
		{&c.LightSquare, def.LightSquare},
		{&c.DarkSquare, def.DarkSquare},
		{&c.Selected, def.Selected},
		{&c.Destination, def.Destination},
	} {
		if _, err := gbase.ParseHexColor(*f.val); err != nil {
			*f.val = f.def
		}
	}
	if _, err := base.ColorFromString(c.EngineSide); err != nil {
		c.EngineSide = def.EngineSide
	}
	if c.Level < int(autoplay.LevelOne) || c.Level > int(autoplay.LevelTen) {
		c.Level = def.Level
	}
	if c.WindowH < gbase.MinWindowH || c.WindowW < gbase.MinWindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
