package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		input   string
		want    Pattern
		wantErr bool
	}{
		{input: "best", want: Best},
		{input: "BEST", want: Best},
		{input: " Average ", want: Average},
		{input: "avg", want: Average},
		{input: "worst", want: Worst},
		{input: "random", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePattern(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPattern_String(t *testing.T) {
	assert.Equal(t, "BEST", Best.String())
	assert.Equal(t, "AVERAGE", Average.String())
	assert.Equal(t, "WORST", Worst.String())
	assert.Equal(t, "Pattern(7)", Pattern(7).String())
}

func TestPattern_TextRoundTrip(t *testing.T) {
	for _, p := range AllPatterns() {
		text, err := p.MarshalText()
		require.NoError(t, err)

		var back Pattern
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, p, back)
	}

	var p Pattern
	assert.Error(t, p.UnmarshalText([]byte("nope")))
}
