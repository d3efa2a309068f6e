package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"          _                                          _ ", "#818cf8"},
		{"  ___ ___| |__   ___ _ __ ___   __ _ _ __ ___ _ __ | |", "#a78bfa"},
		{" / __/ __| '_ \\ / _ \\ '_ ` _ \\ / _` | '__/ _ \\ '_ \\| |", "#c084fc"},
		{" \\__ \\ (__| | | |  __/ | | | | | (_| | | |  __/ |_) | |", "#e879f9"},
		{" |___/\\___|_| |_|\\___|_| |_| |_|\\__,_|_|  \\___| .__/|_|", "#f472b6"},
		{"                                              |_|      ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  "+version+"  type 'help' for commands").Faint())
	fmt.Fprintln(w)
}
