//go:build js && wasm
// +build js,wasm

package gclipboard

import "errors"

func ReadAll() (string, error) {
	return "", errors.ErrUnsupported
}

func WriteAll(text string) error {
	return errors.ErrUnsupported
}
