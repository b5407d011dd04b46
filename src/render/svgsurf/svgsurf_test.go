package svgsurf

import (
	"bytes"
	"strings"
	"testing"

	"canvaschess/src/base"
	"canvaschess/src/board"
	"canvaschess/src/logic/rules/notnil"
	"canvaschess/src/logx"
	"canvaschess/src/testutil"
)

func TestWriteStartPosition(t *testing.T) {
	ctx := board.NewContext(400, base.White)
	surface := New(ctx, DefaultTheme)
	ctl := board.NewController(ctx, notnil.New(logx.NewNop()), surface, logx.NewNop())
	testutil.AssertNoError(t, ctl.Reload())

	var buf bytes.Buffer
	n, err := surface.WriteTo(&buf)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, int64(buf.Len()))

	out := buf.String()
	testutil.AssertTrue(t, strings.HasPrefix(out, "<?xml"))
	testutil.AssertTrue(t, strings.Contains(out, `width="400"`))
	testutil.AssertEqual(t, strings.Count(out, "<circle"), 32)
	testutil.AssertFalse(t, strings.Contains(out, pickerMarker()))
}

func TestWritePicker(t *testing.T) {
	ctx := board.NewContext(400, base.White)
	surface := New(ctx, DefaultTheme)
	engine := notnil.New(logx.NewNop())
	testutil.AssertNoError(t, engine.LoadPosition("8/4P3/8/8/8/8/k7/4K3 w - - 0 1"))
	ctl := board.NewController(ctx, engine, surface, logx.NewNop())
	testutil.AssertNoError(t, ctl.Reload())

	testutil.AssertNoError(t, ctl.PointerDown(ctx.Center(base.MustParseSquare("e7"))))
	testutil.AssertNoError(t, ctl.PointerDown(ctx.Center(base.MustParseSquare("e8"))))

	var buf bytes.Buffer
	_, err := surface.WriteTo(&buf)
	testutil.AssertNoError(t, err)
	out := buf.String()
	testutil.AssertTrue(t, strings.Contains(out, pickerMarker()))
	testutil.AssertTrue(t, strings.Contains(out, `rx="15"`))
	// three pieces plus four options
	testutil.AssertEqual(t, strings.Count(out, "<circle"), 7)
}

func pickerMarker() string {
	return ">" + board.PickerTitle + "<"
}
