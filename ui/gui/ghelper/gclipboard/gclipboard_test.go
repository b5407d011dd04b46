package gclipboard

import (
	"testing"

	"canvaschess/src/testutil"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"8/8/8/8/8/8/8/K6k w - - 0 1", "8/8/8/8/8/8/8/K6k w - - 0 1"},
		{"\n\n  8/8/8/8/8/8/8/K6k   w - -  0 1\r\nnext", "8/8/8/8/8/8/8/K6k w - - 0 1"},
	}
	for _, tt := range tests {
		got, err := Position(tt.in)
		testutil.AssertNoError(t, err, tt.in)
		testutil.AssertEqual(t, got, tt.want)
	}
}

func TestPositionEmpty(t *testing.T) {
	_, err := Position(" \n\t\n")
	testutil.AssertErrorIs(t, err, ErrEmpty)
}
