//go:build js && wasm
// +build js,wasm

package gdialog

import "errors"

var ErrCancelled = errors.New("cancelled")

type Result struct {
	Path string
	Name string
	Data []byte
}

func OpenFile(title string) (Result, error) {
	return Result{}, errors.ErrUnsupported
}

func (r Result) FirstLine() string {
	return ""
}

func ShowError(title string, err error) {}

func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
