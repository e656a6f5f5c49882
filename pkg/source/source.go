// Package source abstracts where repository file content comes from. The
// pipeline core never talks to a hosting provider directly: it receives a
// Source and reads already-listed paths through it, so provider clients,
// caching and authentication stay outside the core.
package source

import (
	"context"
	"io"
)

// Source supplies file content for repository-relative paths.
type Source interface {
	// Root returns a human-readable identifier for the source root
	// (a directory path, repository slug, or similar).
	Root() string

	// Open returns a reader for the file at relPath. Implementations may
	// fail per file (network, permission); callers must tolerate per-file
	// failures without aborting the request.
	Open(ctx context.Context, relPath string) (io.ReadCloser, error)

	// Close releases any resources held by the source.
	Close() error
}

// ReadAll reads one file from src, honoring context cancellation.
func ReadAll(ctx context.Context, src Source, relPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := src.Open(ctx, relPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return io.ReadAll(r)
}
