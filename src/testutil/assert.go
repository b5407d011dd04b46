// Package testutil holds assertion helpers shared by canvaschess tests.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
func AssertEqual(t *testing.T, got, want interface{}, label ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(label...), diff)
	}
}

// AssertNoError stops the test if err is not nil.
func AssertNoError(t *testing.T, err error, label ...interface{}) {
	t.Helper()
	if err != nil {
		t.Fatalf("%sunexpected error: %v", prefix(label...), err)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, label ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%sexpected error %v, got %v", prefix(label...), target, err)
	}
}

func AssertTrue(t *testing.T, condition bool, label ...interface{}) {
	t.Helper()
	if !condition {
		t.Errorf("%sexpected true", prefix(label...))
	}
}

func AssertFalse(t *testing.T, condition bool, label ...interface{}) {
	t.Helper()
	if condition {
		t.Errorf("%sexpected false", prefix(label...))
	}
}

// AssertEqualf is AssertEqual with a formatted label.
func AssertEqualf(t *testing.T, got, want interface{}, format string, args ...interface{}) {
	t.Helper()
	AssertEqual(t, got, want, fmt.Sprintf(format, args...))
}

func AssertTruef(t *testing.T, condition bool, format string, args ...interface{}) {
	t.Helper()
	AssertTrue(t, condition, fmt.Sprintf(format, args...))
}

func AssertFalsef(t *testing.T, condition bool, format string, args ...interface{}) {
	t.Helper()
	AssertFalse(t, condition, fmt.Sprintf(format, args...))
}

// prefix labels a failure, the values are printed as they are and never
// used as a format
func prefix(label ...interface{}) string {
	if len(label) == 0 {
		return ""
	}
	return fmt.Sprint(label...) + ": "
}
