package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	infos := Catalog()
	assert.Len(t, infos, 9)

	seen := make(map[string]bool)
	for _, info := range infos {
		assert.NotEmpty(t, info.Time, info.Label)
		assert.NotEmpty(t, info.Space, info.Label)
		assert.False(t, seen[info.Label], "duplicate label %s", info.Label)
		seen[info.Label] = true
	}

	// Callers get a copy.
	infos[0].Label = "changed"
	assert.Equal(t, LabelFactorialIterative, Catalog()[0].Label)
}

func TestLookup(t *testing.T) {
	info, ok := Lookup(LabelCountIncreasingPairs)
	assert.True(t, ok)
	assert.Equal(t, "Θ(n^2)", info.Time)

	_, ok = Lookup("bogo_sort")
	assert.False(t, ok)
}
