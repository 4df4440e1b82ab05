package quantity_test

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesAreGofmtClean(t *testing.T) {
	t.Parallel()

	names, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		src, err := os.ReadFile(name)
		require.NoError(t, err)

		formatted, err := format.Source(src)
		require.NoError(t, err, name)
		assert.Equal(t, string(formatted), string(src), "%s is not gofmt-clean", name)
	}
}
