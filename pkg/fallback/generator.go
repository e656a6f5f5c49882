// Package fallback deterministically generates template test cases without
// any model involvement. It is the pipeline's terminal recovery path: invoked
// when the model is unavailable or its output cannot be parsed, and it always
// succeeds.
package fallback

import (
	"fmt"
	"strings"
	"time"

	"github.com/caseforge/core/pkg/domain"
	"github.com/caseforge/core/pkg/extract"
)

// Generate produces template test cases for the selected files. Files with
// extractable function signatures get one targeted case per signature and
// requested test type; files without get one generic smoke case per type.
// Output is deterministic for identical inputs apart from IDs and
// timestamps. The reason string records why the fallback ran and is attached
// as a tag for observability.
func Generate(reason string, files []domain.FileRecord, cfg domain.GenerationConfig) []domain.TestCase {
	cfg = cfg.Normalize()
	now := time.Now().UTC()

	var out []domain.TestCase
	for _, file := range files {
		sigs := extract.Signatures(file.Language, file.Content)
		tmpl := templateFor(file.Language)

		if len(sigs) == 0 {
			for _, testType := range cfg.Types {
				out = append(out, genericCase(file, testType, tmpl, now))
			}
			continue
		}

		for _, sig := range sigs {
			for _, testType := range cfg.Types {
				out = append(out, signatureCase(file, sig, testType, tmpl, now))
			}
		}
	}

	if reason != "" {
		for i := range out {
			out[i].Tags = append(out[i].Tags, "reason:"+reason)
		}
	}
	return out
}

func signatureCase(file domain.FileRecord, sig extract.Signature, testType domain.TestType, tmpl codeTemplate, now time.Time) domain.TestCase {
	priority := domain.CasePriorityMedium
	if sig.IsExported {
		priority = domain.CasePriorityHigh
	}

	return domain.TestCase{
		ID:           domain.NewCaseID(),
		Title:        fmt.Sprintf("%s test for %s", titleWord(testType), sig.Name),
		Description:  fmt.Sprintf("Verifies %s in %s behaves as expected.", sig.Name, file.Path),
		Type:         testType,
		Priority:     priority,
		File:         file.Path,
		Function:     sig.Name,
		Code:         tmpl.signature(sig.Name),
		Dependencies: []string{},
		Tags:         []string{"fallback", string(file.Language), string(testType)},
		GeneratedBy:  domain.GeneratedByFallbackFunction,
		CreatedAt:    now,
	}
}

func genericCase(file domain.FileRecord, testType domain.TestType, tmpl codeTemplate, now time.Time) domain.TestCase {
	return domain.TestCase{
		ID:           domain.NewCaseID(),
		Title:        fmt.Sprintf("%s test for %s", titleWord(testType), file.Path),
		Description:  fmt.Sprintf("Smoke-level %s coverage for %s.", testType, file.Path),
		Type:         testType,
		Priority:     domain.CasePriorityMedium,
		File:         file.Path,
		Code:         tmpl.generic(file.Path),
		Dependencies: []string{},
		Tags:         []string{"fallback", string(file.Language), string(testType)},
		GeneratedBy:  domain.GeneratedByFallbackGeneric,
		CreatedAt:    now,
	}
}

func titleWord(t domain.TestType) string {
	s := string(t)
	if s == "" {
		return "Unit"
	}
	if s == string(domain.TestTypeE2E) {
		return "E2E"
	}
	if s == string(domain.TestTypeAPI) {
		return "API"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
