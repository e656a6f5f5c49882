package selector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseforge/core/pkg/domain"
)

func records(paths ...string) []domain.FileRecord {
	out := make([]domain.FileRecord, 0, len(paths))
	for _, p := range paths {
		out = append(out, domain.FileRecord{Path: p})
	}
	return out
}

func TestSelect_EmptyInput(t *testing.T) {
	t.Parallel()

	sel := Select(nil, 5)

	assert.Empty(t, sel.SelectedFiles)
	assert.Equal(t, domain.ProjectUnknown, sel.ProjectStructure.Type)
	assert.NotEmpty(t, sel.TestStrategy.TestFramework)
	assert.Zero(t, sel.TotalFiles)
}

func TestSelect_NeverExceedsMaxFiles(t *testing.T) {
	t.Parallel()

	var paths []string
	for i := 0; i < 30; i++ {
		paths = append(paths, fmt.Sprintf("src/mod%d.js", i))
	}

	sel := Select(records(paths...), 7)

	assert.Len(t, sel.SelectedFiles, 7)
}

func TestSelect_ManifestInformsStructureButIsNotSelected(t *testing.T) {
	t.Parallel()

	// Scenario: recognized manifest plus 5 source files, maxFiles 3.
	files := records(
		"package.json",
		"src/a.js", "src/b.js", "src/c.js", "src/d.js", "src/e.js",
	)

	sel := Select(files, 3)

	require.Len(t, sel.SelectedFiles, 3)
	for _, f := range sel.SelectedFiles {
		assert.Equal(t, domain.CategorySource, f.Category)
	}
	// The manifest still shaped the detected structure.
	assert.Equal(t, domain.ProjectNode, sel.ProjectStructure.Type)
	assert.Equal(t, "npm", sel.ProjectStructure.BuildTool)
}

func TestSelect_PriorityOrdering(t *testing.T) {
	t.Parallel()

	// Secondary source (priority 2) and a yaml config (priority 3, not
	// high-importance) around a primary source file (priority 1).
	files := records(
		"native/engine.cpp",
		"config/app.yaml",
		"src/main.go",
		"go.mod",
	)

	sel := Select(files, 10)

	require.NotEmpty(t, sel.SelectedFiles)
	assert.Equal(t, "src/main.go", sel.SelectedFiles[0].Path)
	// Plain yaml config is priority 3 and not in the candidate set.
	for _, f := range sel.SelectedFiles {
		assert.NotEqual(t, "config/app.yaml", f.Path)
	}
	// go.mod is config at priority 2 so it qualifies, after same-priority source.
	assert.Equal(t, "native/engine.cpp", sel.SelectedFiles[1].Path)
	assert.Equal(t, "go.mod", sel.SelectedFiles[2].Path)
}

func TestSelect_BackfillsWithTestFiles(t *testing.T) {
	t.Parallel()

	files := records(
		"src/auth.js",
		"src/auth.test.js",
		"src/session.spec.js",
	)

	sel := Select(files, 3)

	require.Len(t, sel.SelectedFiles, 3)
	assert.Equal(t, domain.CategorySource, sel.SelectedFiles[0].Category)
	assert.Equal(t, domain.CategoryTest, sel.SelectedFiles[1].Category)
	assert.Equal(t, domain.CategoryTest, sel.SelectedFiles[2].Category)
	// Backfill preserves input order.
	assert.Equal(t, "src/auth.test.js", sel.SelectedFiles[1].Path)
}

func TestSelect_DefaultsMaxFiles(t *testing.T) {
	t.Parallel()

	var paths []string
	for i := 0; i < 25; i++ {
		paths = append(paths, fmt.Sprintf("src/f%d.py", i))
	}

	sel := Select(records(paths...), 0)

	assert.Len(t, sel.SelectedFiles, DefaultMaxFiles)
}
