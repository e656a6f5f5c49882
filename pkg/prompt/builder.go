// Package prompt renders the generation request sent to the model
// collaborator. Request size is bounded on both sides: file content is
// truncated to a fixed ceiling and the requested case count is capped.
package prompt

import (
	"fmt"
	"strings"

	"github.com/caseforge/core/pkg/domain"
)

const (
	// MaxContentChars bounds how much of each file is embedded in the
	// request. Content is never sent unbounded.
	MaxContentChars = 2000

	// CasesPerFile scales the requested case count with the selection size.
	CasesPerFile = 3

	// MaxCases caps the requested case count so response size stays
	// predictable.
	MaxCases = 20
)

const header = `You are an expert test engineer. Analyze the following source files and produce test cases for them.

## Files
`

const outputSchema = `## Output format

Respond with exactly one JSON object and nothing else. No prose before or after. The object must have a "testCases" array where each entry has this shape:

{
  "testCases": [
    {
      "title": "short test name",
      "description": "what the test verifies",
      "type": "one of the requested test types",
      "priority": "low | medium | high | critical",
      "file": "source file the test targets",
      "function": "function under test, if applicable",
      "code": "complete test code",
      "setup": "setup code, if any",
      "teardown": "teardown code, if any",
      "dependencies": ["required packages"],
      "tags": ["labels"]
    }
  ]
}`

// CaseTarget returns the number of test cases to request for a selection of
// n files: min(n * CasesPerFile, MaxCases).
func CaseTarget(n int) int {
	target := n * CasesPerFile
	if target > MaxCases {
		return MaxCases
	}
	if target < 0 {
		return 0
	}
	return target
}

// Build renders the generation request for the selected files under the
// caller configuration. The config is normalized first, so Build never needs
// to fail on odd input.
func Build(files []domain.FileRecord, cfg domain.GenerationConfig) string {
	cfg = cfg.Normalize()

	var b strings.Builder
	b.WriteString(header)

	for _, f := range files {
		fmt.Fprintf(&b, "\n### File: %s (%s)\n```\n%s\n```\n", f.Path, f.Language, truncate(f.Content))
	}

	types := make([]string, 0, len(cfg.Types))
	for _, t := range cfg.Types {
		types = append(types, string(t))
	}

	framework := cfg.Framework
	if framework == domain.FrameworkAuto {
		framework = "the most idiomatic test framework for each file's language"
	}

	fmt.Fprintf(&b, "\n## Instructions\n\n")
	fmt.Fprintf(&b, "Generate up to %d test cases.\n", CaseTarget(len(files)))
	fmt.Fprintf(&b, "Test types to cover: %s.\n", strings.Join(types, ", "))
	fmt.Fprintf(&b, "Complexity: %s.\n", cfg.Complexity)
	fmt.Fprintf(&b, "Test framework: %s.\n", framework)
	if cfg.IncludeEdgeCases {
		b.WriteString("Include edge cases and boundary conditions.\n")
	}
	if cfg.IncludeNegativeTests {
		b.WriteString("Include negative tests for failure paths.\n")
	}

	b.WriteString("\n")
	b.WriteString(outputSchema)

	return b.String()
}

func truncate(content []byte) string {
	if len(content) <= MaxContentChars {
		return string(content)
	}
	return string(content[:MaxContentChars]) + "\n... [truncated]"
}
