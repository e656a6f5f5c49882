package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

// MemorySource serves content from an in-memory path-to-content map. It is
// the injected key-value lookup used when a boundary (tests, a hosting-API
// adapter) has already fetched blobs.
type MemorySource struct {
	root  string
	files map[string][]byte
}

// NewMemory creates a source over the given path-to-content map.
func NewMemory(root string, files map[string][]byte) *MemorySource {
	return &MemorySource{root: root, files: files}
}

// Root returns the configured root identifier.
func (s *MemorySource) Root() string { return s.root }

// Open returns a reader over the stored content for relPath.
func (s *MemorySource) Open(ctx context.Context, relPath string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, ok := s.files[relPath]
	if !ok {
		return nil, fmt.Errorf("source: no content for %s", relPath)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// Close is a no-op for memory sources.
func (s *MemorySource) Close() error { return nil }
