package pipeline

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/caseforge/core/pkg/model"
	"github.com/caseforge/core/pkg/selector"
)

const (
	// DefaultWorkers indicates that content fetching should use
	// GOMAXPROCS as the worker count.
	DefaultWorkers = 0

	// MaxWorkers is the maximum number of concurrent fetch workers.
	MaxWorkers = 64

	// DefaultFetchTimeout bounds the content-fetch stage of one request.
	DefaultFetchTimeout = 1 * time.Minute

	// DefaultMaxContentBytes is the largest file the pipeline will fetch
	// (1MB). Prompt rendering truncates far below this; the bound exists to
	// avoid reading huge blobs at all.
	DefaultMaxContentBytes = 1 * 1024 * 1024
)

// Options configures a Generator.
type Options struct {
	// Invoker is the model collaborator. Nil means no model is available
	// and every request takes the fallback path.
	Invoker model.Invoker

	// Logger receives pipeline progress events. Disabled by default.
	Logger zerolog.Logger

	// MaxFiles bounds the selection size. Non-positive values use
	// selector.DefaultMaxFiles.
	MaxFiles int

	// Workers is the number of concurrent content fetchers. Zero or
	// negative uses GOMAXPROCS.
	Workers int

	// FetchTimeout bounds the content-fetch stage.
	FetchTimeout time.Duration

	// MaxContentBytes is the largest file content the pipeline will fetch.
	MaxContentBytes int64
}

// Option is a functional option for configuring Generator.
type Option func(*Options)

// WithInvoker sets the model collaborator.
func WithInvoker(inv model.Invoker) Option {
	return func(o *Options) {
		o.Invoker = inv
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxFiles bounds how many files are selected for deep analysis.
// Non-positive values are ignored.
func WithMaxFiles(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxFiles = n
		}
	}
}

// WithWorkers sets the number of concurrent content fetchers. Negative
// values are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Workers = n
		}
	}
}

// WithFetchTimeout bounds the content-fetch stage. Non-positive values are
// ignored.
func WithFetchTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.FetchTimeout = d
		}
	}
}

// WithMaxContentBytes caps the per-file content size fetched for analysis.
// Non-positive values are ignored.
func WithMaxContentBytes(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxContentBytes = n
		}
	}
}

func defaultOptions() Options {
	return Options{
		Logger:          zerolog.Nop(),
		MaxFiles:        selector.DefaultMaxFiles,
		Workers:         DefaultWorkers,
		FetchTimeout:    DefaultFetchTimeout,
		MaxContentBytes: DefaultMaxContentBytes,
	}
}
