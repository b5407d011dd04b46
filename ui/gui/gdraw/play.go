package gdraw

import (
	"canvaschess/src"
	"canvaschess/src/autoplay"
	"canvaschess/src/base"
	"canvaschess/src/board"
	"canvaschess/src/render/record"
	"canvaschess/ui/gui/gbase"
	"canvaschess/ui/gui/gctx"
	"canvaschess/ui/gui/ghelper"
	"canvaschess/ui/gui/ghelper/gclipboard"
	"canvaschess/ui/gui/ghelper/gdialog"
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type pickResult struct {
	gen  int
	pick autoplay.Pick
	err  error
}

// GUIPlayDrawer implements Scene. It feeds mouse and touch presses to the
// board controller as board-local points and draws what the controller put
// on the BoardSurface.
type GUIPlayDrawer struct {
	surface *BoardSurface
	layout  Layout

	buttons []*ghelper.Button
	msg     *ghelper.MessageBox
	status  string

	// opponent search runs off the game loop, results carry the generation
	// they were started in so a reset drops them
	thinking bool
	gen      int
	cancel   context.CancelFunc
	pickCh   chan pickResult

	touches []ebiten.TouchID

	frameImg  *ebiten.Image
	frameSide int
	pickerImg *ebiten.Image
	pickerW   int
	pickerH   int
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext, surface *BoardSurface) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{
		surface: surface,
		msg:     &ghelper.MessageBox{},
		pickCh:  make(chan pickResult, 4),
	}
	pd.makeButtons(ctx)
	ctx.Game.Subscribe(func(ev src.Event) { pd.onEvent(ctx, ev) })
	pd.Layout(ctx, ctx.Window.W, ctx.Window.H)
	return pd
}

func (pd *GUIPlayDrawer) makeButtons(ctx *gctx.GUIGameContext) {
	game := ctx.Game
	idle := func() bool { return !pd.thinking }
	playable := func() bool { return !pd.thinking && !game.IsGameOver() && !game.PromotionPending() }

	newGame := ghelper.NewButton("New game", func() error {
		pd.cancelSearch()
		return game.Reset()
	})
	flip := ghelper.NewButton("Flip board", func() error {
		game.Rotate()
		return nil
	})
	random := ghelper.NewButton("Random move", func() error {
		_, err := game.RandomMove()
		return err
	})
	random.Enabled = playable
	open := ghelper.NewButton("Open position", func() error {
		return pd.openPosition(ctx)
	})
	open.Enabled = idle
	copyFEN := ghelper.NewButton("Copy FEN", func() error {
		if err := gclipboard.WriteAll(game.FEN()); err != nil {
			return fmt.Errorf("copy FEN: %w", err)
		}
		pd.status = "FEN copied"
		return nil
	})
	paste := ghelper.NewButton("Paste position", func() error {
		fen, err := gclipboard.PastePosition()
		if err != nil {
			return fmt.Errorf("paste position: %w", err)
		}
		pd.cancelSearch()
		return game.SetFEN(fen)
	})
	paste.Enabled = idle
	save := ghelper.NewButton("Save settings", func() error {
		ctx.Config.Orientation = game.Orientation().String()
		ctx.Config.WindowW, ctx.Config.WindowH = ctx.Window.W, ctx.Window.H
		if err := ctx.Config.Save(ctx.ConfigFile); err != nil {
			return err
		}
		pd.status = "Settings saved"
		return nil
	})
	quit := ghelper.NewButton("Quit", func() error {
		return gbase.ErrExit
	})
	pd.buttons = []*ghelper.Button{newGame, flip, random, open, copyFEN, paste, save, quit}
}

func (pd *GUIPlayDrawer) onEvent(ctx *gctx.GUIGameContext, ev src.Event) {
	switch ev.Kind {
	case src.EventGameStart:
		pd.status = ""
		if pd.msg.Open {
			pd.msg.Collapse()
		}
	case src.EventPlayerMove:
		pd.status = fmt.Sprintf("Last move: %s", ev.Move.SAN)
	case src.EventGameEnd:
		pd.msg.ShowMessage(ctx.Game.EndingText(), nil)
	}
}

func (pd *GUIPlayDrawer) Layout(ctx *gctx.GUIGameContext, w, h int) {
	if pd.layout.W == w && pd.layout.H == h {
		return
	}
	pd.layout = ComputeLayout(w, h)
	ctx.Game.Resize(pd.layout.Side)
	for i, b := range pd.buttons {
		x, y, bw, bh := pd.layout.ButtonRect(i)
		b.Place(x, y, bw, bh, ctx.Theme)
	}
	ctx.Logx.Debugf("layout %dx%d, board side %.0f", w, h, pd.layout.Side)
}

func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) error {
	dt := 1.0 / float64(ebiten.TPS())
	pd.surface.Step(dt)
	pd.msg.Animate(dt)
	for _, b := range pd.buttons {
		b.UpdateAnim(dt)
	}
	pd.collectPicks(ctx)

	mx, my := ebiten.CursorPosition()
	justClicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	// the ending box is modal
	if pd.msg.Open {
		_, ok := ModalBounds(ctx, pd.msg.Text)
		if justClicked && image.Pt(mx, my).In(ok) {
			pd.msg.Collapse()
		}
		return nil
	}

	onButton := false
	for _, b := range pd.buttons {
		if b.Contains(mx, my) {
			onButton = true
		}
		if b.HandleInput(mx, my, justClicked, justReleased) {
			if err := pd.click(ctx, b); err != nil {
				return err
			}
		}
	}
	if justClicked && !onButton {
		pd.pointerDown(ctx, mx, my)
	}

	pd.touches = inpututil.AppendJustPressedTouchIDs(pd.touches[:0])
	for _, id := range pd.touches {
		tx, ty := ebiten.TouchPosition(id)
		if b := pd.buttonAt(tx, ty); b != nil {
			if err := pd.click(ctx, b); err != nil {
				return err
			}
			continue
		}
		pd.pointerDown(ctx, tx, ty)
	}

	if err := pd.handleKeys(ctx); err != nil {
		return err
	}
	pd.maybeAnswer(ctx)
	return nil
}

func (pd *GUIPlayDrawer) buttonAt(x, y int) *ghelper.Button {
	for _, b := range pd.buttons {
		if b.Contains(x, y) && b.IsEnabled() {
			return b
		}
	}
	return nil
}

func (pd *GUIPlayDrawer) click(ctx *gctx.GUIGameContext, b *ghelper.Button) error {
	if b.OnClick == nil || !b.IsEnabled() {
		return nil
	}
	err := b.OnClick()
	if errors.Is(err, gbase.ErrExit) {
		return err
	}
	if err != nil {
		ctx.Logx.Warnf("%s: %v", b.Label, err)
		pd.status = err.Error()
	}
	return nil
}

func (pd *GUIPlayDrawer) handleKeys(ctx *gctx.GUIGameContext) error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		return pd.click(ctx, pd.buttons[1])
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return pd.click(ctx, pd.buttons[2])
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		return pd.click(ctx, pd.buttons[0])
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		return pd.click(ctx, pd.buttons[4])
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		return pd.click(ctx, pd.buttons[5])
	}
	return nil
}

func (pd *GUIPlayDrawer) pointerDown(ctx *gctx.GUIGameContext, x, y int) {
	if pd.thinking {
		pd.status = fmt.Sprintf("%s is thinking", ctx.Opponent.Name())
		return
	}
	bx, by := pd.layout.ToBoard(x, y)
	if err := ctx.Game.PointerDown(base.Point{X: bx, Y: by}); err != nil {
		ctx.Logx.Warnf("pointer down at %.0f,%.0f: %v", bx, by, err)
		pd.status = err.Error()
	}
}

func (pd *GUIPlayDrawer) openPosition(ctx *gctx.GUIGameContext) error {
	res, err := gdialog.OpenFile("Open position")
	if gdialog.IsCancelled(err) {
		return nil
	} else if err != nil {
		return err
	}
	if err := ctx.Game.SetFEN(res.FirstLine()); err != nil {
		gdialog.ShowError("Invalid position", fmt.Errorf("%s: %w", res.Name, err))
		return err
	}
	ctx.Logx.Infof("position loaded from %s", res.Path)
	return nil
}

// maybeAnswer starts the opponent search when it is its turn
func (pd *GUIPlayDrawer) maybeAnswer(ctx *gctx.GUIGameContext) {
	game := ctx.Game
	if ctx.Opponent == nil || pd.thinking || game.IsGameOver() || game.Turn() != ctx.OpponentSide {
		return
	}
	if game.PromotionPending() {
		return
	}

	// the search only sees copies, the board stays on this goroutine
	fen, legal := game.FEN(), game.Engine().LegalMoves()
	searchCtx, cancel := context.WithTimeout(context.Background(), autoplay.BestMoveTimeout)
	pd.gen++
	pd.thinking = true
	pd.cancel = cancel
	gen, player := pd.gen, ctx.Opponent
	go func() {
		defer cancel()
		pick, err := player.Choose(searchCtx, fen, legal)
		pd.pickCh <- pickResult{gen: gen, pick: pick, err: err}
	}()
}

func (pd *GUIPlayDrawer) collectPicks(ctx *gctx.GUIGameContext) {
	for {
		select {
		case res := <-pd.pickCh:
			if res.gen != pd.gen {
				continue
			}
			pd.thinking = false
			pd.cancel = nil
			if res.err != nil {
				ctx.Logx.Errorf("opponent %s: %v", ctx.Opponent.Name(), res.err)
				pd.status = fmt.Sprintf("%s failed: %v", ctx.Opponent.Name(), res.err)
				continue
			}
			if _, err := ctx.Game.Apply(res.pick); err != nil {
				ctx.Logx.Errorf("opponent move %s: %v", res.pick, err)
				pd.status = err.Error()
			}
		default:
			return
		}
	}
}

func (pd *GUIPlayDrawer) cancelSearch() {
	if pd.cancel != nil {
		pd.cancel()
		pd.cancel = nil
	}
	pd.gen++
	pd.thinking = false
}

// Close stops a running search
func (pd *GUIPlayDrawer) Close() {
	pd.cancelSearch()
}

func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	pd.drawBanner(ctx, screen)
	pd.drawBoard(ctx, screen)
	pd.drawPieces(ctx, screen)
	if v, ok := pd.surface.Picker(); ok {
		pd.drawPicker(ctx, screen, v)
	}
	pd.drawPanel(ctx, screen)

	if pd.msg.Open {
		DrawModal(ctx, pd.msg.Scale, pd.msg.Text, screen)
	}
}

func (pd *GUIPlayDrawer) bannerText(ctx *gctx.GUIGameContext) string {
	game := ctx.Game
	if game.IsGameOver() {
		line, _, _ := strings.Cut(game.EndingText(), "\n")
		return line
	}
	if pd.thinking {
		return fmt.Sprintf("%s (%s is thinking)", game.TurnText(), ctx.Opponent.Name())
	}
	return game.TurnText()
}

func (pd *GUIPlayDrawer) drawBanner(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	l := pd.layout
	face := ctx.AssetsWorker.Fonts().Scaled(l.Side/24, true)
	ghelper.DrawTextCentered(screen, pd.bannerText(ctx), face, l.BoardX+l.Side/2, l.BannerY, ctx.Theme.MenuText)
}

func (pd *GUIPlayDrawer) drawBoard(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	l := pd.layout
	bctx := ctx.Game.Context()
	sq := bctx.SquareSize

	if side := int(l.Side); pd.frameImg == nil || pd.frameSide != side {
		pd.frameSide = side
		pd.frameImg = ghelper.RenderRoundedRect(side, side, int(sq/5), ctx.Theme.Frame, ctx.Theme.Frame, 0)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(l.BoardX, l.BoardY)
	screen.DrawImage(pd.frameImg, op)

	for i := 0; i < 64; i++ {
		cell, _ := base.SquareFromIndex(i)
		r := bctx.SquareRect(cell)
		c := ctx.Theme.Dark
		if cell.IsLight() {
			c = ctx.Theme.Light
		}
		// +1 hides seams between scaled squares
		ghelper.EbitenutilDrawRect(screen, l.BoardX+r.X, l.BoardY+r.Y, r.W+1, r.H+1, c)
	}

	files, ranks := bctx.Labels()
	face := ctx.AssetsWorker.Fonts().Scaled(sq/2.5, false)
	for i := 0; i < 8; i++ {
		mid := sq*float64(i+1) + sq/2
		ghelper.DrawTextCentered(screen, files[i], face, l.BoardX+mid, l.BoardY+sq*9.5, ctx.Theme.Label)
		ghelper.DrawTextCentered(screen, ranks[i], face, l.BoardX+sq/2, l.BoardY+mid, ctx.Theme.Label)
	}

	for _, o := range pd.surface.Highlights() {
		c := ctx.Theme.Destination
		if o.Kind == board.HighlightSelected {
			c = ctx.Theme.Selected
		}
		ghelper.EbitenutilDrawRect(screen, l.BoardX+o.Rect.X, l.BoardY+o.Rect.Y, o.Rect.W, o.Rect.H, c)
	}
}

func (pd *GUIPlayDrawer) drawPieces(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	var sliding []*board.Piece
	for p, sp := range pd.surface.Sprites() {
		if pd.surface.IsSliding(p) {
			sliding = append(sliding, p)
			continue
		}
		pd.drawSprite(ctx, screen, p, sp)
	}
	// moving pieces go over the others
	for _, p := range sliding {
		sp, _ := pd.surface.Sprite(p)
		pd.drawSprite(ctx, screen, p, sp)
	}
}

func (pd *GUIPlayDrawer) drawSprite(ctx *gctx.GUIGameContext, screen *ebiten.Image, p *board.Piece, sp record.Sprite) {
	img := ctx.AssetsWorker.Piece(sp.Kind, sp.Color)
	if img == nil {
		return
	}
	at := pd.surface.Position(p, sp)
	ghelper.DrawImageFit(screen, img, pd.layout.BoardX+at.X, pd.layout.BoardY+at.Y, sp.Size)
}

func (pd *GUIPlayDrawer) drawPicker(ctx *gctx.GUIGameContext, screen *ebiten.Image, v board.PickerView) {
	l := pd.layout
	ghelper.EbitenutilDrawRect(screen, l.BoardX, l.BoardY, l.Side, l.Side, ctx.Theme.ModalBg)

	w, h := int(v.Rect.W), int(v.Rect.H)
	if pd.pickerImg == nil || pd.pickerW != w || pd.pickerH != h {
		pd.pickerW, pd.pickerH = w, h
		pd.pickerImg = ghelper.RenderRoundedRect(w, h, 15, ctx.Theme.PickerBg, ctx.Theme.ButtonStroke, 2)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(l.BoardX+v.Rect.X, l.BoardY+v.Rect.Y)
	screen.DrawImage(pd.pickerImg, op)

	face := ctx.AssetsWorker.Fonts().Scaled(v.SquareSize/2.5, true)
	ghelper.DrawTextCentered(screen, v.Title, face, l.BoardX+v.Rect.X+v.Rect.W/2, l.BoardY+v.Rect.Y+v.Rect.H*2/9, ctx.Theme.ButtonText)

	mx, my := ebiten.CursorPosition()
	bx, by := l.ToBoard(mx, my)
	for _, o := range v.Options {
		if o.Bounds.Contains(base.Point{X: bx, Y: by}) {
			ghelper.EbitenutilDrawRectStroke(screen, l.BoardX+o.Bounds.X, l.BoardY+o.Bounds.Y, o.Bounds.W, o.Bounds.H, 2, ctx.Theme.Accent)
		}
		if img := ctx.AssetsWorker.Piece(o.Kind, v.Color); img != nil {
			ghelper.DrawImageFit(screen, img, l.BoardX+o.Center.X, l.BoardY+o.Center.Y, v.SquareSize)
		}
	}
}

func (pd *GUIPlayDrawer) drawPanel(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	face := ctx.AssetsWorker.Fonts().Normal
	for _, b := range pd.buttons {
		b.DrawAnimated(screen, face, ctx.Theme)
	}
	if pd.status == "" {
		return
	}
	x, y, w, h := pd.layout.ButtonRect(len(pd.buttons))
	ghelper.DrawTextCentered(screen, pd.status, face, float64(x+w/2), float64(y+h/2), ctx.Theme.MenuText)
}
