package ui

import (
	"canvaschess/src"
	"canvaschess/src/autoplay"
	"canvaschess/src/base"
	"canvaschess/src/board"
	"canvaschess/src/logx"
	"canvaschess/src/render/svgsurf"
	"canvaschess/ui/gui/gbase"
	"fmt"
	"io"
)

type SVGOptions struct {
	Game   src.Options
	Theme  gbase.Palette
	Moves  []string // UCI moves played before the snapshot
	Select string   // square clicked last, shows its destinations
}

// ExportSVG draws one position with the board controller and writes it as SVG
func ExportSVG(w io.Writer, opts SVGOptions, logger logx.Logger) error {
	side := opts.Game.Side
	if side <= 0 {
		side = src.DefaultSide
	}
	engine, err := src.NewRulesEngine(opts.Game.Rules, logger)
	if err != nil {
		return err
	}
	if opts.Game.Position != "" {
		if err := engine.LoadPosition(opts.Game.Position); err != nil {
			return err
		}
	}

	bctx := board.NewContext(side, opts.Game.Orientation)
	surface := svgsurf.New(bctx, svgTheme(opts.Theme))
	ctl := board.NewController(bctx, engine, surface, logger)
	if err := ctl.Reload(); err != nil {
		return err
	}

	for _, m := range opts.Moves {
		pick, err := autoplay.ParseUCI(m)
		if err != nil {
			return err
		}
		if _, err := ctl.Play(pick.From, pick.To, pick.Promotion); err != nil {
			return fmt.Errorf("move %s: %w", m, err)
		}
	}
	if opts.Select != "" {
		sq, err := base.ParseSquare(opts.Select)
		if err != nil {
			return err
		}
		if err := ctl.PointerDown(bctx.Center(sq)); err != nil {
			return err
		}
	}

	_, err = surface.WriteTo(w)
	return err
}

func svgTheme(p gbase.Palette) svgsurf.Theme {
	if p == (gbase.Palette{}) {
		return svgsurf.DefaultTheme
	}
	return svgsurf.Theme{
		Light:       p.Light,
		Dark:        p.Dark,
		Frame:       p.Frame,
		Label:       p.Label,
		Selected:    p.Selected,
		Destination: p.Destination,
	}
}
