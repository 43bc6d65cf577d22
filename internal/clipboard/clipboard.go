// Package clipboard copies readings to the system clipboard.
package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility is installed.
var ErrUnavailable = errors.New("clipboard not available (install xclip, xsel or wl-clipboard)")

// Write copies text to the system clipboard. Trailing newlines are dropped.
func Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	return clipboard.WriteAll(strings.TrimRight(text, "\n"))
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}
