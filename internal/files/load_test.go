package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadText(t *testing.T) {
	t.Run("reads file contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "body.txt")
		require.NoError(t, os.WriteFile(path, []byte("hello\nworld\n"), 0644))

		text, ok := LoadText(path)
		assert.True(t, ok)
		assert.Equal(t, "hello\nworld\n", text)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		text, ok := LoadText(filepath.Join(t.TempDir(), "nope.txt"))
		assert.False(t, ok)
		assert.Empty(t, text)
	})

	t.Run("directory is unreadable", func(t *testing.T) {
		_, ok := LoadText(t.TempDir())
		assert.False(t, ok)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		text, ok := LoadText(path)
		assert.True(t, ok)
		assert.Empty(t, text)
	})
}
