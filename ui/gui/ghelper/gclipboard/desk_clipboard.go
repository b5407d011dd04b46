//go:build !js && !wasm
// +build !js,!wasm

package gclipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

func ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", errors.ErrUnsupported
	}
	return clipboard.ReadAll()
}

func WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
