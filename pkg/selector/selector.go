// Package selector picks a bounded, priority-ordered subset of repository
// files for deep analysis. Structure detection always sees the full file set
// even though only the selected subset is fetched and analyzed.
package selector

import (
	"sort"

	"github.com/caseforge/core/pkg/classify"
	"github.com/caseforge/core/pkg/domain"
	"github.com/caseforge/core/pkg/strategy"
	"github.com/caseforge/core/pkg/structure"
)

// DefaultMaxFiles bounds the selection when the caller passes a
// non-positive limit.
const DefaultMaxFiles = 10

// Selection is the outcome of file selection.
type Selection struct {
	// SelectedFiles holds at most maxFiles classified records, most
	// important first.
	SelectedFiles []domain.FileRecord
	// ProjectStructure is detected over the full input set, not just the
	// selected subset.
	ProjectStructure domain.ProjectStructure
	// TestStrategy is resolved from ProjectStructure.
	TestStrategy domain.TestStrategy
	// TotalFiles is the size of the input set.
	TotalFiles int
}

// Select classifies every input record, detects structure and strategy over
// the full set, and returns up to maxFiles candidates sorted by ascending
// priority. Candidates are source files plus high-importance config files;
// when fewer than maxFiles exist, existing test files backfill the remainder
// since they carry convention signal. Ties keep input order (stable sort).
// Empty input returns an empty selection with a valid unknown structure.
func Select(files []domain.FileRecord, maxFiles int) Selection {
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}

	classified := make([]domain.FileRecord, 0, len(files))
	var candidates, testFiles []domain.FileRecord

	for _, f := range files {
		rec, res := classify.Apply(f)
		classified = append(classified, rec)
		if !res.ShouldAnalyze {
			continue
		}

		switch rec.Category {
		case domain.CategorySource:
			candidates = append(candidates, rec)
		case domain.CategoryConfig:
			if rec.Priority <= domain.PriorityHigh {
				candidates = append(candidates, rec)
			}
		case domain.CategoryTest:
			testFiles = append(testFiles, rec)
		}
	}

	// Structure detection needs the config/build files even when they are
	// not selected for content analysis.
	ps := structure.Detect(classified)
	ts := strategy.Resolve(ps)

	// Ascending priority; on ties source ranks before config, and input
	// order breaks any remaining tie (stable sort).
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority < candidates[j].Priority
		}
		return categoryRank(candidates[i].Category) < categoryRank(candidates[j].Category)
	})

	selected := candidates
	if len(selected) > maxFiles {
		selected = selected[:maxFiles]
	} else if len(selected) < maxFiles {
		sort.SliceStable(testFiles, func(i, j int) bool {
			return testFiles[i].Priority < testFiles[j].Priority
		})
		room := maxFiles - len(selected)
		if room > len(testFiles) {
			room = len(testFiles)
		}
		selected = append(selected, testFiles[:room]...)
	}

	return Selection{
		SelectedFiles:    selected,
		ProjectStructure: ps,
		TestStrategy:     ts,
		TotalFiles:       len(files),
	}
}

func categoryRank(c domain.Category) int {
	if c == domain.CategorySource {
		return 0
	}
	return 1
}
