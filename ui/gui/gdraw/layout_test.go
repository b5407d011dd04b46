package gdraw

import (
	"canvaschess/src/testutil"
	"testing"
)

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(1000, 760)
	testutil.AssertEqual(t, l.Side, 672.0)
	testutil.AssertEqual(t, [2]float64{l.BoardX, l.BoardY}, [2]float64{56, 72})
	testutil.AssertEqual(t, l.BannerY, 44.0)
	testutil.AssertEqual(t, [3]int{l.PanelX, l.PanelY, l.PanelW}, [3]int{744, 139, 184})

	x, y, w, h := l.ButtonRect(2)
	testutil.AssertEqual(t, [4]int{x, y, w, h}, [4]int{744, 247, 184, 44})

	bx, by := l.ToBoard(56+336, 72+336)
	testutil.AssertEqual(t, [2]float64{bx, by}, [2]float64{336, 336})
}

func TestComputeLayoutTallWindow(t *testing.T) {
	l := ComputeLayout(700, 1000)
	// width bound: 700 - 200 - 48
	testutil.AssertEqual(t, l.Side, 452.0)
	testutil.AssertEqual(t, l.BoardX, 16.0)
	testutil.AssertEqual(t, l.BoardY, 72.0+230)
}

func TestComputeLayoutTinyWindow(t *testing.T) {
	l := ComputeLayout(100, 100)
	testutil.AssertEqual(t, l.Side, float64(minBoardSide))
	testutil.AssertEqual(t, l.BoardX, 16.0)
}
