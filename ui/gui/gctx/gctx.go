package gctx

import (
	"canvaschess/src"
	"canvaschess/src/autoplay"
	"canvaschess/src/base"
	"canvaschess/src/logx"
	"canvaschess/ui/gui/gbase"
	"canvaschess/ui/gui/gbase/gconf"
	"canvaschess/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Game         *src.Game
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	ConfigFile   string
	Theme        gbase.Palette
	Logx         logx.Logger

	// Opponent answers for OpponentSide, nil when both sides are human
	Opponent     autoplay.Player
	OpponentSide base.Color

	Window struct{ W, H int }
}

func NewGUIGameContext(g *src.Game, a *ghelper.GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	ctx := &GUIGameContext{
		Game:         g,
		AssetsWorker: a,
		Config:       c,
		ConfigFile:   gconf.DefaultFile,
		Theme:        c.Palette(),
		Logx:         l,
	}
	ctx.Window.W, ctx.Window.H = c.WindowW, c.WindowH
	return ctx
}

func (ctx *GUIGameContext) SetOpponent(p autoplay.Player, side base.Color) {
	ctx.Opponent = p
	ctx.OpponentSide = side
}
