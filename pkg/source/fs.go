package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// FSSource reads files from a local directory tree.
type FSSource struct {
	root string
}

// NewFS creates a source rooted at dir.
func NewFS(dir string) *FSSource {
	return &FSSource{root: dir}
}

// Root returns the root directory path.
func (s *FSSource) Root() string { return s.root }

// Open opens the file at relPath under the root.
func (s *FSSource) Open(ctx context.Context, relPath string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(filepath.Join(s.root, relPath))
}

// Close is a no-op for filesystem sources.
func (s *FSSource) Close() error { return nil }
