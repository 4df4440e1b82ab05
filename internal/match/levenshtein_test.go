package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// identical
		{"", "", 0},
		{"meters", "meters", 0},

		// empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// single edits
		{"a", "b", 1},
		{"meter", "meters", 1},
		{"meters", "meter", 1},

		// multiple edits
		{"kitten", "sitting", 3},
		{"metres", "meters", 2},
		{"metres", "miles", 3},

		// case-sensitive
		{"Feet", "feet", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, Similarity("", ""), 0)
	assert.InDelta(t, 1.0, Similarity("MetersPerSecond", "meters_per_second"), 0)
	assert.InDelta(t, 0.8, Similarity("Kilometers", "Kilometres"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0)
}
