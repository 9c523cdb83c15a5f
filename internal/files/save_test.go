package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniquePath(t *testing.T) {
	t.Run("free name is kept", func(t *testing.T) {
		dir := t.TempDir()
		assert.Equal(t, filepath.Join(dir, "invoice.pdf"), uniquePath(dir, "invoice.pdf"))
	})

	t.Run("collisions get a counter", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "invoice.pdf"), []byte("x"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "invoice_1.pdf"), []byte("x"), 0644))
		assert.Equal(t, filepath.Join(dir, "invoice_2.pdf"), uniquePath(dir, "invoice.pdf"))
	})

	t.Run("traversal is flattened", func(t *testing.T) {
		dir := t.TempDir()
		got := uniquePath(dir, "../../etc/passwd")
		assert.Equal(t, filepath.Join(dir, "passwd"), got)
	})

	t.Run("empty name falls back", func(t *testing.T) {
		dir := t.TempDir()
		assert.Equal(t, filepath.Join(dir, fallbackName), uniquePath(dir, "  "))
		assert.Equal(t, filepath.Join(dir, fallbackName), uniquePath(dir, ".."))
	})

	t.Run("no extension", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0644))
		assert.Equal(t, filepath.Join(dir, "README_1"), uniquePath(dir, "README"))
	})
}

func TestSaveAttachment(t *testing.T) {
	t.Run("creates nested directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b")
		path, err := SaveAttachment(dir, "note.txt", []byte("hi"))
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("writes content and keeps earlier files", func(t *testing.T) {
		dir := t.TempDir()
		first, err := SaveAttachment(dir, "note.txt", []byte("first"))
		require.NoError(t, err)
		second, err := SaveAttachment(dir, "note.txt", []byte("second"))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		got, err := os.ReadFile(first)
		require.NoError(t, err)
		assert.Equal(t, "first", string(got))
		got, err = os.ReadFile(second)
		require.NoError(t, err)
		assert.Equal(t, "second", string(got))
	})

	t.Run("binary content", func(t *testing.T) {
		data := []byte{0x00, 0xFF, 0x10}
		path, err := SaveAttachment(t.TempDir(), "blob.dat", data)
		require.NoError(t, err)
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})
}
