package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFiles() []GeneratedFile {
	return []GeneratedFile{
		{Filename: "length.go", Content: []byte(generatedMarker + ". DO NOT EDIT.\n\npackage units\n")},
		{Filename: "registry.go", Content: []byte(generatedMarker + ". DO NOT EDIT.\n\npackage units\n\nvar x = 1\n")},
	}
}

func TestWriteFiles(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "units")
	files := sampleFiles()

	require.NoError(t, WriteFiles(files, dir))

	for _, f := range files {
		content, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, content)
	}
}

func TestStale(t *testing.T) {
	t.Parallel()

	t.Run("up to date", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, WriteFiles(sampleFiles(), dir))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.go"), []byte("package units\n"), filePerm))

		stale, err := Stale(sampleFiles(), dir)
		require.NoError(t, err)
		assert.Empty(t, stale)
	})

	t.Run("edited missing and orphaned", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		files := sampleFiles()
		require.NoError(t, WriteFiles(files, dir))

		edited := append([]byte{}, files[0].Content...)
		edited = append(edited, "\nvar hand = 1\n"...)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "length.go"), edited, filePerm))
		require.NoError(t, os.Remove(filepath.Join(dir, "registry.go")))

		orphan := generatedMarker + ". DO NOT EDIT.\n\npackage units\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "area.go"), []byte(orphan), filePerm))

		stale, err := Stale(files, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"length.go", "registry.go", "area.go"}, stale)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		stale, err := Stale(sampleFiles(), filepath.Join(t.TempDir(), "absent"))
		require.NoError(t, err)
		assert.Equal(t, []string{"length.go", "registry.go"}, stale)
	})
}

func TestWriteDebugUnformatted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, writeDebugUnformatted(dir, "length.go", []byte("package units\nfunc (")))

	content, err := os.ReadFile(filepath.Join(dir, "length.unformatted.go"))
	require.NoError(t, err)
	assert.Equal(t, "package units\nfunc (", string(content))

	assert.NoError(t, writeDebugUnformatted("", "length.go", nil))
}
