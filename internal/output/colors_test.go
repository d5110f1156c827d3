package output

import (
	"testing"
)

func TestColorSchemes(t *testing.T) {
	for name, scheme := range map[string]*ColorScheme{
		"default":  DefaultColorScheme(),
		"no-color": NoColorScheme(),
	} {
		for i, c := range scheme.all() {
			if c == nil {
				t.Errorf("%s scheme: color %d should not be nil", name, i)
			}
		}
	}

	noColor := NoColorScheme()
	if got := noColor.Label.Sprint("label"); got != "label" {
		t.Errorf("NoColorScheme should not add escape codes, got %q", got)
	}
}
