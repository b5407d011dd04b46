package gfont

import (
	"canvaschess/src/testutil"
	"testing"
)

func TestClampSize(t *testing.T) {
	testutil.AssertEqual(t, ClampSize(2), MinSize)
	testutil.AssertEqual(t, ClampSize(26.6), 27)
	testutil.AssertEqual(t, ClampSize(500), MaxSize)
}

func TestScaledFacesAreCached(t *testing.T) {
	f, err := LoadFonts()
	testutil.AssertNoError(t, err)

	a := f.Scaled(32.2, false)
	b := f.Scaled(31.8, false)
	testutil.AssertTrue(t, a == b)
	testutil.AssertTrue(t, f.Scaled(32, true) != a)
	testutil.AssertTrue(t, a.Metrics().Height > 0)
}
