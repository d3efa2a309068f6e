package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// NewErrorStyle returns a decorator that colors error text red on w.
// When color is false, or w has no color support, text is returned as is.
func NewErrorStyle(w io.Writer, color bool) func(string) string {
	out := termenv.NewOutput(w)
	if !color || out.ColorProfile() == termenv.Ascii {
		return func(s string) string { return s }
	}
	red := out.Color("#f87171")
	return func(s string) string {
		return out.String(s).Foreground(red).String()
	}
}
