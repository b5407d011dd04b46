package gdraw

import (
	"canvaschess/ui/gui/gctx"
	"canvaschess/ui/gui/ghelper"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIGameContext) error
	Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image)
	Layout(ctx *gctx.GUIGameContext, w, h int)
}

// modal background, rendered again only when the size changes
var modalCache struct {
	w, h int
	img  *ebiten.Image
}

// ModalBounds measures message and returns the full size box and its OK button
func ModalBounds(ctx *gctx.GUIGameContext, message string) (box, ok image.Rectangle) {
	face := ctx.AssetsWorker.Fonts().Bold
	lineH := face.Metrics().Height.Ceil()
	lines := strings.Split(message, "\n")
	textW := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > textW {
			textW = w
		}
	}
	return ghelper.ModalRect(ctx.Window.W, ctx.Window.H, textW, lineH*len(lines))
}

func DrawModal(ctx *gctx.GUIGameContext, scale float64, message string, screen *ebiten.Image) {
	// dim background
	ghelper.EbitenutilDrawRect(screen, 0, 0, float64(ctx.Window.W), float64(ctx.Window.H), ctx.Theme.ModalBg)

	box, ok := ModalBounds(ctx, message)
	if scale < 0 {
		scale = 0
	}
	if scale > 1 {
		scale = 1
	}
	currW := max(6, int(float64(box.Dx())*scale))
	currH := max(6, int(float64(box.Dy())*scale))
	mx := (ctx.Window.W - currW) / 2
	my := (ctx.Window.H - currH) / 2

	if modalCache.img == nil || modalCache.w != currW || modalCache.h != currH {
		modalCache.w, modalCache.h = currW, currH
		modalCache.img = ghelper.RenderRoundedRect(currW, currH, 16, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(mx), float64(my))
	screen.DrawImage(modalCache.img, op)

	// text and OK button once nearly open
	if scale > 0.85 {
		textBottom := float64(ok.Min.Y - 8)
		ghelper.DrawTextCentered(screen, message, ctx.AssetsWorker.Fonts().Bold,
			float64(box.Min.X+box.Dx()/2), (float64(box.Min.Y)+textBottom)/2, ctx.Theme.MenuText)

		ghelper.EbitenutilDrawRect(screen, float64(ok.Min.X), float64(ok.Min.Y), float64(ok.Dx()), float64(ok.Dy()), ctx.Theme.Accent)
		ghelper.DrawTextCentered(screen, "OK", ctx.AssetsWorker.Fonts().Normal,
			float64(ok.Min.X+ok.Dx()/2), float64(ok.Min.Y+ok.Dy()/2), color.White)
	}
}
