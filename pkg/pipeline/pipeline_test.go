package pipeline

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseforge/core/pkg/domain"
	"github.com/caseforge/core/pkg/model"
	"github.com/caseforge/core/pkg/source"
)

func inlineRecord(path, content string) domain.FileRecord {
	return domain.FileRecord{Path: path, Content: []byte(content)}
}

func TestGenerate_EmptyInputFails(t *testing.T) {
	t.Parallel()

	gen := New()

	_, err := gen.Generate(context.Background(), nil, nil, domain.GenerationConfig{})

	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestGenerate_ModelFailureFallsBackToSignatures(t *testing.T) {
	t.Parallel()

	// One JS file with two exported functions; the model is down.
	files := []domain.FileRecord{
		inlineRecord("src/dates.js",
			"export function parseDate(s) { return new Date(s); }\n"+
				"export function formatDate(d) { return d.toISOString(); }\n"),
	}
	invoker := model.InvokerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("upstream 503")
	})

	result, err := New(WithInvoker(invoker)).Generate(context.Background(), nil, files, domain.GenerationConfig{})

	require.NoError(t, err)
	require.Len(t, result.TestCases, 2)

	names := make([]string, 0, 2)
	for _, tc := range result.TestCases {
		assert.Equal(t, domain.GeneratedByFallbackFunction, tc.GeneratedBy)
		assert.Equal(t, domain.TestTypeUnit, tc.Type)
		assert.Equal(t, "src/dates.js", tc.File)
		names = append(names, tc.Function)
	}
	assert.ElementsMatch(t, []string{"parseDate", "formatDate"}, names)
	assert.Contains(t, result.Stats.FallbackReason, "model invocation failed")
}

func TestGenerate_SelectionBoundsPrompt(t *testing.T) {
	t.Parallel()

	// Manifest plus five source files with maxFiles 3: the manifest shapes
	// the detected structure but only three source files reach the prompt.
	files := []domain.FileRecord{
		{Path: "package.json"},
		{Path: "src/a.js"}, {Path: "src/b.js"}, {Path: "src/c.js"},
		{Path: "src/d.js"}, {Path: "src/e.js"},
	}
	src := source.NewMemory("repo", map[string][]byte{
		"package.json": []byte(`{"name":"app"}`),
		"src/a.js":     []byte("export const a = 1;"),
		"src/b.js":     []byte("export const b = 2;"),
		"src/c.js":     []byte("export const c = 3;"),
		"src/d.js":     []byte("export const d = 4;"),
		"src/e.js":     []byte("export const e = 5;"),
	})
	defer func() { _ = src.Close() }()

	var captured string
	invoker := model.InvokerFunc(func(ctx context.Context, prompt string) (string, error) {
		captured = prompt
		return `{"testCases":[{"title":"adds numbers","type":"unit","file":"src/a.js","code":"expect(a).toBe(1);"}]}`, nil
	})

	result, err := New(WithInvoker(invoker), WithMaxFiles(3)).
		Generate(context.Background(), src, files, domain.GenerationConfig{})

	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(captured, "### File:"))
	assert.NotContains(t, captured, "package.json")

	assert.Equal(t, domain.ProjectNode, result.ProjectStructure.Type)
	assert.Equal(t, 6, result.Stats.TotalFiles)
	assert.Equal(t, 3, result.Stats.SelectedFiles)
	assert.Equal(t, 3, result.Stats.AnalyzedFiles)
	assert.Empty(t, result.Stats.FallbackReason)

	require.Len(t, result.TestCases, 1)
	assert.Equal(t, "adds numbers", result.TestCases[0].Title)
	assert.Equal(t, domain.GeneratedByModel, result.TestCases[0].GeneratedBy)
}

func TestGenerate_FencedModelResponse(t *testing.T) {
	t.Parallel()

	files := []domain.FileRecord{inlineRecord("src/x.js", "export function x() {}")}
	invoker := model.InvokerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "Sure! Here are the tests:\n```json\n" +
			`{"testCases":[{"title":"x","type":"unit","file":"src/x.js","code":"expect(x()).toBeUndefined();"}]}` +
			"\n```\nLet me know if you need more.", nil
	})

	result, err := New(WithInvoker(invoker)).Generate(context.Background(), nil, files, domain.GenerationConfig{})

	require.NoError(t, err)
	require.Len(t, result.TestCases, 1)
	assert.Equal(t, "x", result.TestCases[0].Title)
	assert.Equal(t, domain.GeneratedByModel, result.TestCases[0].GeneratedBy)
	assert.Empty(t, result.Stats.FallbackReason)
}

func TestGenerate_UnparseableResponseFallsBack(t *testing.T) {
	t.Parallel()

	files := []domain.FileRecord{inlineRecord("src/y.js", "export function y() {}")}
	invoker := model.InvokerFunc(func(ctx context.Context, prompt string) (string, error) {
		return "I could not produce JSON this time, sorry.", nil
	})

	result, err := New(WithInvoker(invoker)).Generate(context.Background(), nil, files, domain.GenerationConfig{})

	require.NoError(t, err)
	require.NotEmpty(t, result.TestCases)
	for _, tc := range result.TestCases {
		assert.NotEqual(t, domain.GeneratedByModel, tc.GeneratedBy)
	}
	assert.Equal(t, "unparseable model response", result.Stats.FallbackReason)
}

func TestGenerate_NoInvokerUsesFallback(t *testing.T) {
	t.Parallel()

	files := []domain.FileRecord{inlineRecord("lib/util.py", "def helper():\n    return 1\n")}

	result, err := New().Generate(context.Background(), nil, files, domain.GenerationConfig{})

	require.NoError(t, err)
	require.NotEmpty(t, result.TestCases)
	assert.Equal(t, "no model configured", result.Stats.FallbackReason)
}

func TestGenerate_FetchErrorsAreIsolated(t *testing.T) {
	t.Parallel()

	files := []domain.FileRecord{
		{Path: "src/ok.js"},
		{Path: "src/gone.js"},
	}
	src := source.NewMemory("repo", map[string][]byte{
		"src/ok.js": []byte("export function ok() {}"),
	})
	defer func() { _ = src.Close() }()

	var captured string
	invoker := model.InvokerFunc(func(ctx context.Context, prompt string) (string, error) {
		captured = prompt
		return `{"testCases":[{"title":"ok","type":"unit","file":"src/ok.js","code":"ok();"}]}`, nil
	})

	result, err := New(WithInvoker(invoker)).Generate(context.Background(), src, files, domain.GenerationConfig{})

	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "src/gone.js", result.Errors[0].Path)
	assert.Equal(t, PhaseFetch, result.Errors[0].Phase)

	assert.Equal(t, 2, result.Stats.SelectedFiles)
	assert.Equal(t, 1, result.Stats.AnalyzedFiles)
	assert.Contains(t, captured, "src/ok.js")
	assert.NotContains(t, captured, "src/gone.js")
}

func TestGenerate_OversizedFilesAreSkipped(t *testing.T) {
	t.Parallel()

	files := []domain.FileRecord{
		{Path: "src/small.js", Content: []byte("export function small() {}"), Size: 26},
		{Path: "src/huge.js", Size: 50 * 1024 * 1024},
	}

	result, err := New(WithMaxContentBytes(1024)).
		Generate(context.Background(), nil, files, domain.GenerationConfig{})

	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "src/huge.js", result.Errors[0].Path)
	assert.Equal(t, 1, result.Stats.AnalyzedFiles)
}

func TestGenerate_MissingContentWithoutSource(t *testing.T) {
	t.Parallel()

	files := []domain.FileRecord{{Path: "src/app.rb"}}

	result, err := New().Generate(context.Background(), nil, files, domain.GenerationConfig{})

	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, PhaseFetch, result.Errors[0].Phase)
	assert.Zero(t, result.Stats.AnalyzedFiles)
	// Nothing analyzable still yields a result, just with no cases.
	assert.Empty(t, result.TestCases)
}

func TestGenerate_PreservesSelectionOrderAfterFetch(t *testing.T) {
	t.Parallel()

	contents := map[string][]byte{}
	var files []domain.FileRecord
	paths := []string{"src/main.go", "src/a.go", "src/b.go", "src/c.go"}
	for _, p := range paths {
		contents[p] = []byte("package app")
		files = append(files, domain.FileRecord{Path: p})
	}
	src := source.NewMemory("repo", contents)
	defer func() { _ = src.Close() }()

	var captured string
	invoker := model.InvokerFunc(func(ctx context.Context, prompt string) (string, error) {
		captured = prompt
		return "not json", nil
	})

	_, err := New(WithInvoker(invoker), WithWorkers(4)).
		Generate(context.Background(), src, files, domain.GenerationConfig{})

	require.NoError(t, err)
	// Equal-priority files keep input order, so main.go must lead the prompt
	// regardless of goroutine completion order.
	first := strings.Index(captured, "src/main.go")
	require.GreaterOrEqual(t, first, 0)
	for _, p := range []string{"src/a.go", "src/b.go", "src/c.go"} {
		assert.Greater(t, strings.Index(captured, p), first)
	}
}

// slowSource delays every open, for exercising the fetch timeout.
type slowSource struct {
	delay time.Duration
}

func (s *slowSource) Root() string { return "slow" }

func (s *slowSource) Open(ctx context.Context, relPath string) (io.ReadCloser, error) {
	time.Sleep(s.delay)
	return io.NopCloser(strings.NewReader("export function f() {}")), nil
}

func (s *slowSource) Close() error { return nil }

func TestGenerate_FetchTimeoutRecordsPerFileErrors(t *testing.T) {
	t.Parallel()

	files := []domain.FileRecord{
		{Path: "src/a.js"},
		{Path: "src/b.js"},
		{Path: "src/c.js"},
	}
	src := &slowSource{delay: 50 * time.Millisecond}

	result, err := New(WithWorkers(1), WithFetchTimeout(10*time.Millisecond)).
		Generate(context.Background(), src, files, domain.GenerationConfig{})

	require.NoError(t, err)
	// Every selected file is accounted for: analyzed or errored, never
	// silently dropped.
	assert.Equal(t, len(files), result.Stats.AnalyzedFiles+len(result.Errors))
	// With one worker the files queued behind the first must time out.
	assert.GreaterOrEqual(t, len(result.Errors), 2)
	for _, fe := range result.Errors {
		assert.Equal(t, PhaseFetch, fe.Phase)
		assert.NotEmpty(t, fe.Path)
	}
}

func TestFileError_Message(t *testing.T) {
	t.Parallel()

	fe := FileError{Err: errors.New("boom"), Path: "src/x.js", Phase: PhaseFetch}

	assert.Equal(t, "[fetch] src/x.js: boom", fe.Error())
	assert.EqualError(t, fe.Unwrap(), "boom")
}
