package gclipboard

import (
	"errors"
	"strings"
)

var ErrEmpty = errors.New("clipboard holds no position")

// Position picks the FEN out of pasted text: the first non-blank line with
// inner runs of spaces collapsed
func Position(text string) (string, error) {
	for _, line := range strings.Split(text, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			return strings.Join(fields, " "), nil
		}
	}
	return "", ErrEmpty
}

// PastePosition reads the clipboard and returns the FEN it holds
func PastePosition() (string, error) {
	text, err := ReadAll()
	if err != nil {
		return "", err
	}
	return Position(text)
}
