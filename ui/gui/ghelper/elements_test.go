package ghelper

import (
	"canvaschess/src/testutil"
	"image"
	"testing"
)

func TestButtonClick(t *testing.T) {
	clicks := 0
	b := NewButton("Flip board", func() error { clicks++; return nil })
	b.X, b.Y, b.W, b.H = 10, 10, 100, 40

	testutil.AssertFalse(t, b.HandleInput(20, 20, true, false))
	testutil.AssertTrue(t, b.Pressed)
	testutil.AssertTrue(t, b.HandleInput(20, 20, false, true))
	testutil.AssertFalse(t, b.Pressed)

	// released outside cancels
	b.HandleInput(20, 20, true, false)
	testutil.AssertFalse(t, b.HandleInput(300, 20, false, true))

	// press started elsewhere
	testutil.AssertFalse(t, b.HandleInput(20, 20, false, true))
	testutil.AssertEqual(t, clicks, 0)
}

func TestDisabledButtonIgnoresInput(t *testing.T) {
	b := NewButton("Random move", nil)
	b.Enabled = func() bool { return false }
	b.X, b.Y, b.W, b.H = 0, 0, 100, 40

	b.HandleInput(5, 5, true, false)
	testutil.AssertFalse(t, b.HandleInput(5, 5, false, true))
	testutil.AssertFalse(t, b.Hover)
}

func TestButtonAnimationApproachesTarget(t *testing.T) {
	b := NewButton("New game", nil)
	b.X, b.Y, b.W, b.H = 0, 0, 100, 40
	b.HandleInput(5, 5, true, false)
	for i := 0; i < 120; i++ {
		b.UpdateAnim(1.0 / 60)
	}
	testutil.AssertTrue(t, b.Scale < 0.97 && b.Scale > 0.95)
	testutil.AssertTrue(t, b.OffsetY > 2.9)
}

func TestMessageBoxLifecycle(t *testing.T) {
	closed := false
	mb := &MessageBox{}
	mb.ShowMessage("Draw\n\nNo winner.", func() { closed = true })
	for i := 0; i < 30; i++ {
		mb.Animate(1.0 / 60)
	}
	testutil.AssertEqual(t, mb.Scale, 1.0)
	testutil.AssertTrue(t, mb.Open)

	mb.Collapse()
	for i := 0; i < 30; i++ {
		mb.Animate(1.0 / 60)
	}
	testutil.AssertFalse(t, mb.Open)
	testutil.AssertTrue(t, closed)
}

func TestModalRect(t *testing.T) {
	box, ok := ModalRect(1000, 800, 200, 60)
	testutil.AssertEqual(t, box, image.Rect(368, 310, 632, 490))
	testutil.AssertEqual(t, ok, image.Rect(440, 434, 560, 478))
}

func TestPointInRect(t *testing.T) {
	testutil.AssertTrue(t, PointInRect(0, 0, 0, 0, 10, 10))
	testutil.AssertFalse(t, PointInRect(10, 5, 0, 0, 10, 10))
}
