package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySource(t *testing.T) {
	t.Parallel()

	src := NewMemory("repo", map[string][]byte{
		"src/main.go": []byte("package main"),
	})
	defer func() { _ = src.Close() }()

	t.Run("reads stored content", func(t *testing.T) {
		t.Parallel()

		content, err := ReadAll(context.Background(), src, "src/main.go")

		require.NoError(t, err)
		assert.Equal(t, "package main", string(content))
	})

	t.Run("missing path fails per file", func(t *testing.T) {
		t.Parallel()

		_, err := ReadAll(context.Background(), src, "missing.go")

		assert.Error(t, err)
	})

	t.Run("cancelled context stops reads", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := ReadAll(ctx, src, "src/main.go")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFSSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "app.js"), []byte("module.exports = {}"), 0o644))

	src := NewFS(dir)
	defer func() { _ = src.Close() }()

	assert.Equal(t, dir, src.Root())

	content, err := ReadAll(context.Background(), src, "src/app.js")

	require.NoError(t, err)
	assert.Equal(t, "module.exports = {}", string(content))
}
