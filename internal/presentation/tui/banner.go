package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the intake ASCII art banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Indigo to rose, one shade per line
	lines := []struct{ text, color string }{
		{"  _       _        _        ", "#818cf8"},
		{" (_)_ __ | |_ __ _| | _____ ", "#a78bfa"},
		{" | | '_ \\| __/ _` | |/ / _ \\", "#c084fc"},
		{" | | | | | || (_| |   <  __/", "#e879f9"},
		{" |_|_| |_|\\__\\__,_|_|\\_\\___|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  version "+version).Foreground(out.Color("#fb7185")).Faint())
	fmt.Fprintln(w)
}
