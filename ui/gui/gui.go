package gui

import (
	"canvaschess/src"
	"canvaschess/src/autoplay"
	"canvaschess/src/base"
	"canvaschess/src/logx"
	"canvaschess/ui/gui/gbase"
	"canvaschess/ui/gui/gbase/gconf"
	"canvaschess/ui/gui/gctx"
	"canvaschess/ui/gui/gdraw"
	"canvaschess/ui/gui/ghelper"
	"canvaschess/ui/gui/ghelper/gdialog"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current *gdraw.GUIPlayDrawer
	ctx     *gctx.GUIGameContext
}

// NewGUI loads the assets and starts the game. game must draw on surface.
func NewGUI(game *src.Game, surface *gdraw.BoardSurface, cfg *gconf.Config, logx logx.Logger) (*GUIProcessing, error) {
	assets, err := ghelper.NewGUIAssetsWorker(cfg.PiecesSheet)
	if err != nil {
		logx.Errorf("load assets: %v", err)
		gdialog.ShowError("canvaschess", err)
		return nil, err
	}
	ctx := gctx.NewGUIGameContext(game, assets, cfg, logx)
	gp := &GUIProcessing{
		current: gdraw.NewGUIPlayDrawer(ctx, surface),
		ctx:     ctx,
	}
	if err := game.Start(); err != nil {
		return nil, err
	}
	return gp, nil
}

func (gp *GUIProcessing) SetConfigFile(file string) {
	gp.ctx.ConfigFile = file
}

func (gp *GUIProcessing) SetOpponent(p autoplay.Player, side base.Color) {
	gp.ctx.SetOpponent(p, side)
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Window.W, gp.ctx.Window.H)
	ebiten.SetWindowSizeLimits(gbase.MinWindowW, gbase.MinWindowH, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("canvaschess")
	defer gp.current.Close()

	err := ebiten.RunGame(gp)
	if errors.Is(err, gbase.ErrExit) {
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	return gp.current.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

// Layout follows the window, the board is resized with it
func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	gp.ctx.Window.W, gp.ctx.Window.H = outsideWidth, outsideHeight
	gp.current.Layout(gp.ctx, outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
