package gdraw

import (
	"canvaschess/ui/gui/gbase"
	"math"
)

const (
	minBoardSide = 160
	buttonH      = 44
	buttonGap    = 10
)

// Layout places the board, the banner above it and the buttons column in a
// window of W x H pixels
type Layout struct {
	W, H           int
	BoardX, BoardY float64
	Side           float64
	BannerY        float64 // banner center line
	PanelX, PanelY int
	PanelW         int
}

func ComputeLayout(w, h int) Layout {
	availW := float64(w - gbase.PanelW - 3*gbase.Margin)
	availH := float64(h - gbase.BannerH - 2*gbase.Margin)
	side := math.Max(minBoardSide, math.Floor(math.Min(availW, availH)))

	l := Layout{W: w, H: h, Side: side}
	l.BoardX = gbase.Margin + math.Max(0, math.Floor((availW-side)/2))
	l.BoardY = float64(gbase.BannerH+gbase.Margin) + math.Max(0, math.Floor((availH-side)/2))
	l.BannerY = l.BoardY - gbase.BannerH/2
	l.PanelX = int(l.BoardX+side) + gbase.Margin
	l.PanelY = int(l.BoardY + side/10)
	l.PanelW = gbase.PanelW - gbase.Margin
	return l
}

// ButtonRect is the place of the i-th button in the column
func (l Layout) ButtonRect(i int) (x, y, w, h int) {
	return l.PanelX, l.PanelY + i*(buttonH+buttonGap), l.PanelW, buttonH
}

// ToBoard turns a window point into board-local pixels
func (l Layout) ToBoard(x, y int) (bx, by float64) {
	return float64(x) - l.BoardX, float64(y) - l.BoardY
}
