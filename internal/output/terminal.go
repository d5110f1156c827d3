package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SchemeFor picks a color scheme for w: colors only when w is a terminal,
// NO_COLOR is unset, and noColor is false.
func SchemeFor(w io.Writer, noColor bool) *ColorScheme {
	if noColor || os.Getenv("NO_COLOR") != "" || !IsTerminal(w) {
		return NoColorScheme()
	}
	return DefaultColorScheme().EnableAll()
}
