// Package terminal answers questions about the terminal the program writes to.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns the width and height of the terminal behind f.
// Falls back to defaults if the size cannot be determined.
func Size(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Width returns how many columns output to f may use: the terminal width,
// or 0 for no limit when f is not a terminal.
func Width(f *os.File) int {
	if !IsTerminal(f) {
		return 0
	}
	width, _ := Size(f)
	return width
}
