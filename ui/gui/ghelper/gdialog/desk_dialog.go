//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"
)

// ErrCancelled is returned when the user closes the dialog
var ErrCancelled = dialog.ErrCancelled

type Result struct {
	Path string
	Name string
	Data []byte
}

// OpenFile asks for a position file (one FEN per file)
func OpenFile(title string) (Result, error) {
	path, err := dialog.File().
		Title(title).
		Filter("FEN position", "fen", "txt").
		Filter("All files", "*").
		Load()
	if err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}

// FirstLine is the FEN inside a position file
func (r Result) FirstLine() string {
	line, _, _ := strings.Cut(strings.TrimSpace(string(r.Data)), "\n")
	return strings.TrimSpace(line)
}

func ShowError(title string, err error) {
	dialog.Message("%s", err.Error()).Title(title).Error()
}

func IsCancelled(err error) bool {
	return errors.Is(err, dialog.ErrCancelled)
}
