package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Section    *color.Color
	Subsection *color.Color
	Label      *color.Color
	Time       *color.Color
	Counter    *color.Color
	Space      *color.Color
	Skip       *color.Color
	Note       *color.Color
	Error      *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Section:    color.New(color.FgCyan, color.Bold),
		Subsection: color.New(color.FgMagenta),
		Label:      color.New(color.FgBlue, color.Bold),
		Time:       color.New(color.FgGreen),
		Counter:    color.New(color.FgWhite),
		Space:      color.New(color.FgYellow),
		Skip:       color.New(color.FgYellow, color.Bold),
		Note:       color.New(color.Faint),
		Error:      color.New(color.FgRed),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	for _, c := range scheme.all() {
		c.DisableColor()
	}

	return scheme
}

// EnableAll forces colors on for every element, regardless of the
// terminal detection done by the color package.
func (s *ColorScheme) EnableAll() *ColorScheme {
	for _, c := range s.all() {
		c.EnableColor()
	}
	return s
}

func (s *ColorScheme) all() []*color.Color {
	return []*color.Color{
		s.Section, s.Subsection, s.Label, s.Time, s.Counter,
		s.Space, s.Skip, s.Note, s.Error,
	}
}
