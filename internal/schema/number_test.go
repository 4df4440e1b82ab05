package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		expr  string
		value float64
	}{
		{"0.3048", "0.3048", 0.3048},
		{"1000", "1000", 1000},
		{"31_556_926", "31_556_926", 31_556_926},
		{"1e-7", "1e-7", 1e-7},
		{"-459.67", "-459.67", -459.67},
		{"5/9", "(5.0 / 9)", 5.0 / 9},
		{" 1 / 3 ", "(1.0 / 3)", 1.0 / 3},
		{"2.5e3/5", "(2.5e3 / 5)", 500},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			n, err := ParseNumber(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, n.Expr)
			assert.InDelta(t, tt.value, n.Value, 1e-12)
			assert.False(t, n.IsZero())
		})
	}
}

func TestParseNumber_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "abc", "1__0", "_1", "1_", "0x10", "1/0", "1/", "1e999", "Inf", "1-2"} {
		_, err := ParseNumber(in)
		assert.Error(t, err, in)
	}
}

func TestParseRatio(t *testing.T) {
	t.Parallel()

	r, err := ParseRatio("1000 per canonical")
	require.NoError(t, err)
	assert.Equal(t, UnitsPerCanonical, r.Form)
	assert.InDelta(t, 0.001, r.Factor(), 1e-15)
	assert.Equal(t, "1000 per canonical", r.String())

	r, err = ParseRatio("per   0.3048 canonical")
	require.NoError(t, err)
	assert.Equal(t, CanonicalPerUnit, r.Form)
	assert.InDelta(t, 0.3048, r.Factor(), 0)
	assert.Equal(t, "per 0.3048 canonical", r.String())

	r, err = ParseRatio("1/60 per canonical")
	require.NoError(t, err)
	assert.InDelta(t, 60, r.Factor(), 1e-12)

	// parses; the resolver rejects it
	r, err = ParseRatio("0 per canonical")
	require.NoError(t, err)
	assert.Zero(t, r.Value.Value)

	assert.True(t, Ratio{}.IsZero())
	assert.Zero(t, Ratio{}.Factor())
	assert.Empty(t, Ratio{}.String())
}

func TestParseRatio_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"",
		"1000",
		"per canonical",
		"1 per 2 canonical",
		"per per canonical",
		"1000 per meters",
		"x per canonical",
		"per 0.3048 canonical extra",
	} {
		_, err := ParseRatio(in)
		assert.Error(t, err, in)
	}
}
