// Package pipeline orchestrates one generation request end to end: select a
// bounded subset of the repository, fetch content, ask the model for test
// cases, and recover deterministically when the model fails or its output is
// unusable. A request that starts with at least one file always produces a
// result; per-file problems are collected, never fatal.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/caseforge/core/pkg/domain"
	"github.com/caseforge/core/pkg/fallback"
	"github.com/caseforge/core/pkg/prompt"
	"github.com/caseforge/core/pkg/respparse"
	"github.com/caseforge/core/pkg/selector"
	"github.com/caseforge/core/pkg/source"
)

// ErrNoFiles is returned when a request arrives with an empty file set. It is
// the pipeline's only failure mode; everything past the empty-input check
// degrades instead of erroring.
var ErrNoFiles = errors.New("pipeline: no files provided")

// Fetch phases recorded in FileError.
const (
	PhaseFetch = "fetch"
)

// FileError records a non-fatal problem with a single file. The file is
// dropped from analysis and the request continues.
type FileError struct {
	// Err is the underlying error.
	Err error

	// Path is the file the error occurred on.
	Path string

	// Phase indicates where the error occurred. Currently always "fetch".
	Phase string
}

// Error implements the error interface.
func (e FileError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Phase, e.Path, e.Err)
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e FileError) Unwrap() error { return e.Err }

// MarshalJSON renders the error message as a string since error values have
// no useful JSON form.
func (e FileError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Path  string `json:"path"`
		Phase string `json:"phase"`
		Error string `json:"error"`
	}{Path: e.Path, Phase: e.Phase, Error: e.Err.Error()})
}

// Stats describes what one request did.
type Stats struct {
	// TotalFiles is the size of the input set.
	TotalFiles int `json:"totalFiles"`

	// SelectedFiles is how many files survived selection.
	SelectedFiles int `json:"selectedFiles"`

	// AnalyzedFiles is how many selected files had content available for
	// prompt construction.
	AnalyzedFiles int `json:"analyzedFiles"`

	// FallbackReason is non-empty when the deterministic generator produced
	// the cases instead of the model.
	FallbackReason string `json:"fallbackReason,omitempty"`

	// Duration is the total request duration.
	Duration time.Duration `json:"duration"`
}

// Result is the outcome of one generation request.
type Result struct {
	// TestCases holds the generated cases, model-produced or fallback.
	TestCases []domain.TestCase `json:"testCases"`

	// ProjectStructure is what was detected over the full input set.
	ProjectStructure domain.ProjectStructure `json:"projectStructure"`

	// TestStrategy is the resolved testing convention.
	TestStrategy domain.TestStrategy `json:"testStrategy"`

	// Errors lists per-file problems encountered along the way.
	Errors []FileError `json:"errors"`

	// Stats summarizes the request.
	Stats Stats `json:"stats"`
}

// Generator runs generation requests. It is safe for concurrent use.
type Generator struct {
	options Options
}

// New creates a generator with the given options.
func New(opts ...Option) *Generator {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Generator{options: options}
}

// Generate runs one request over the given file inventory. Records may carry
// content inline; records without content are fetched from src when one is
// provided. The caller is responsible for closing src.
//
// Returns ErrNoFiles for an empty input set. Every other condition, including
// model failure and unparseable output, degrades to the deterministic
// fallback and is reported through Result.Stats and Result.Errors.
func (g *Generator) Generate(ctx context.Context, src source.Source, files []domain.FileRecord, cfg domain.GenerationConfig) (*Result, error) {
	startTime := time.Now()

	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	cfg = cfg.Normalize()
	log := g.options.Logger

	sel := selector.Select(files, g.options.MaxFiles)
	log.Debug().
		Int("total", sel.TotalFiles).
		Int("selected", len(sel.SelectedFiles)).
		Str("projectType", string(sel.ProjectStructure.Type)).
		Str("framework", sel.TestStrategy.TestFramework).
		Msg("selection complete")

	analyzed, fileErrors := g.fetchContent(ctx, src, sel.SelectedFiles)

	result := &Result{
		ProjectStructure: sel.ProjectStructure,
		TestStrategy:     sel.TestStrategy,
		Errors:           fileErrors,
		Stats: Stats{
			TotalFiles:    sel.TotalFiles,
			SelectedFiles: len(sel.SelectedFiles),
			AnalyzedFiles: len(analyzed),
		},
	}

	result.TestCases, result.Stats.FallbackReason = g.generateCases(ctx, analyzed, cfg)
	result.Stats.Duration = time.Since(startTime)

	log.Info().
		Int("cases", len(result.TestCases)).
		Int("analyzed", result.Stats.AnalyzedFiles).
		Int("fileErrors", len(result.Errors)).
		Str("fallbackReason", result.Stats.FallbackReason).
		Dur("duration", result.Stats.Duration).
		Msg("generation complete")

	return result, nil
}

// generateCases runs the model leg and maps every failure onto the
// deterministic fallback. The returned reason is empty when the cases came
// from the model.
func (g *Generator) generateCases(ctx context.Context, analyzed []domain.FileRecord, cfg domain.GenerationConfig) ([]domain.TestCase, string) {
	if g.options.Invoker == nil {
		return fallback.Generate("no model configured", analyzed, cfg), "no model configured"
	}

	p := prompt.Build(analyzed, cfg)
	raw, err := g.options.Invoker.Invoke(ctx, p)
	if err != nil {
		reason := fmt.Sprintf("model invocation failed: %v", err)
		g.options.Logger.Warn().Err(err).Msg("model invocation failed, using fallback")
		return fallback.Generate(reason, analyzed, cfg), reason
	}

	cases := respparse.Parse(raw, analyzed, cfg)
	if fromFallback(cases) {
		return cases, respparse.ReasonUnparseable
	}
	return cases, ""
}

// fromFallback reports whether parsing gave up and deferred to the fallback
// generator. Provenance is uniform within one parse result, so the first case
// speaks for all of them.
func fromFallback(cases []domain.TestCase) bool {
	return len(cases) > 0 && cases[0].GeneratedBy != domain.GeneratedByModel
}

// fetchContent fills in content for selected records that arrived without it,
// reading from src concurrently. Files whose content cannot be obtained are
// dropped with a FileError. Output preserves selection order regardless of
// goroutine completion order.
func (g *Generator) fetchContent(ctx context.Context, src source.Source, files []domain.FileRecord) ([]domain.FileRecord, []FileError) {
	workers := g.options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	if g.options.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.options.FetchTimeout)
		defer cancel()
	}

	sem := semaphore.NewWeighted(int64(workers))
	grp, gCtx := errgroup.WithContext(ctx)

	fetched := make([]domain.FileRecord, len(files))
	failed := make([]bool, len(files))

	var (
		mu         sync.Mutex
		fileErrors []FileError
	)

	for i, file := range files {
		i, file := i, file

		grp.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				// Timeout or cancellation while queued still counts as a
				// failed fetch for this file.
				failed[i] = true
				mu.Lock()
				fileErrors = append(fileErrors, FileError{Err: err, Path: file.Path, Phase: PhaseFetch})
				mu.Unlock()
				return nil
			}
			defer sem.Release(1)

			rec, fetchErr := fetchOne(gCtx, src, file, g.options.MaxContentBytes)
			if fetchErr != nil {
				failed[i] = true
				mu.Lock()
				fileErrors = append(fileErrors, *fetchErr)
				mu.Unlock()
				return nil
			}
			fetched[i] = rec
			return nil
		})
	}

	_ = grp.Wait()

	analyzed := make([]domain.FileRecord, 0, len(files))
	for i := range fetched {
		if !failed[i] && fetched[i].Path != "" {
			analyzed = append(analyzed, fetched[i])
		}
	}
	return analyzed, fileErrors
}

// fetchOne resolves content for a single record. Inline content wins; records
// without content need a source to read from. Files above maxBytes are
// dropped instead of read.
func fetchOne(ctx context.Context, src source.Source, file domain.FileRecord, maxBytes int64) (domain.FileRecord, *FileError) {
	if err := ctx.Err(); err != nil {
		return domain.FileRecord{}, &FileError{Err: err, Path: file.Path, Phase: PhaseFetch}
	}

	if maxBytes > 0 && file.Size > maxBytes {
		return domain.FileRecord{}, &FileError{
			Err:   fmt.Errorf("file size %d exceeds limit %d", file.Size, maxBytes),
			Path:  file.Path,
			Phase: PhaseFetch,
		}
	}

	if len(file.Content) > 0 {
		return file, nil
	}

	if src == nil {
		return domain.FileRecord{}, &FileError{
			Err:   errors.New("no content and no source to fetch from"),
			Path:  file.Path,
			Phase: PhaseFetch,
		}
	}

	content, err := source.ReadAll(ctx, src, file.Path)
	if err != nil {
		return domain.FileRecord{}, &FileError{Err: err, Path: file.Path, Phase: PhaseFetch}
	}

	if maxBytes > 0 && int64(len(content)) > maxBytes {
		return domain.FileRecord{}, &FileError{
			Err:   fmt.Errorf("file size %d exceeds limit %d", len(content), maxBytes),
			Path:  file.Path,
			Phase: PhaseFetch,
		}
	}

	file.Content = content
	file.Size = int64(len(content))
	return file, nil
}

// Generate runs one request with a throwaway generator. Convenience wrapper
// for callers that configure per call.
func Generate(ctx context.Context, src source.Source, files []domain.FileRecord, cfg domain.GenerationConfig, opts ...Option) (*Result, error) {
	return New(opts...).Generate(ctx, src, files, cfg)
}
