// Package classify maps file names and paths to a language, category and
// analysis priority using name/path signal only. Classification never fails:
// anything the tables do not cover degrades to "do not analyze".
package classify

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/caseforge/core/pkg/domain"
)

// Result is the outcome of classifying a single file.
type Result struct {
	// ShouldAnalyze reports whether the file is worth deeper analysis.
	ShouldAnalyze bool
	// Language is the detected language, LanguageUnknown when skipped.
	Language domain.Language
	// Category is the detected role, CategoryUnknown when skipped.
	Category domain.Category
	// Priority is the analysis priority, 1..4; PriorityLow when skipped.
	Priority int
	// Reason explains the decision, for observability.
	Reason string
}

func skip(reason string) Result {
	return Result{
		ShouldAnalyze: false,
		Language:      domain.LanguageUnknown,
		Category:      domain.CategoryUnknown,
		Priority:      domain.PriorityLow,
		Reason:        reason,
	}
}

// Classify decides whether a file should be analyzed and assigns its
// language, category and priority. Order of evaluation: ignore rules,
// important-config allow-list, compound test suffixes, extension table.
// A missing path or name degrades to skip rather than failing.
func Classify(filePath, name string) Result {
	if filePath == "" && name == "" {
		return skip("missing path and name")
	}
	if name == "" {
		name = path.Base(filePath)
	}
	if filePath == "" {
		filePath = name
	}
	normalized := strings.ReplaceAll(filePath, "\\", "/")

	for _, pattern := range ignoreSubstrings {
		if strings.Contains(normalized, pattern) {
			return skip("ignored: " + pattern)
		}
	}
	for _, pattern := range ignoreWildcards {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return skip("ignored pattern: " + pattern)
		}
	}

	if importantConfigs[name] {
		return Result{
			ShouldAnalyze: true,
			Language:      configLanguage(name),
			Category:      domain.CategoryConfig,
			Priority:      domain.PriorityHigh,
			Reason:        "important config file",
		}
	}

	lower := strings.ToLower(name)

	// Compound suffixes (.test.<ext> / .spec.<ext>) must be detected as a
	// two-segment suffix before the plain extension lookup.
	if entry, ok := lookupCompoundSuffix(lower); ok {
		return Result{
			ShouldAnalyze: true,
			Language:      entry.language,
			Category:      domain.CategoryTest,
			Priority:      domain.PriorityNormal,
			Reason:        "test file suffix",
		}
	}
	if conventionalTestName(normalized, lower) {
		if entry, ok := extensionTable[lastExtension(lower)]; ok && entry.category == domain.CategorySource {
			return Result{
				ShouldAnalyze: true,
				Language:      entry.language,
				Category:      domain.CategoryTest,
				Priority:      domain.PriorityNormal,
				Reason:        "test file convention",
			}
		}
	}

	ext := lastExtension(lower)
	entry, ok := extensionTable[ext]
	if !ok {
		return skip("unknown extension: " + ext)
	}

	return Result{
		ShouldAnalyze: true,
		Language:      entry.language,
		Category:      entry.category,
		Priority:      entry.priority,
		Reason:        "extension table",
	}
}

// lookupCompoundSuffix detects two-segment test suffixes such as
// "handler.test.ts" or "auth.spec.js".
func lookupCompoundSuffix(lower string) (tableEntry, bool) {
	ext := lastExtension(lower)
	if ext == "" {
		return tableEntry{}, false
	}

	stem := strings.TrimSuffix(lower, ext)
	if !strings.HasSuffix(stem, ".test") && !strings.HasSuffix(stem, ".spec") {
		return tableEntry{}, false
	}

	entry, ok := extensionTable[ext]
	if !ok || entry.category != domain.CategorySource {
		return tableEntry{}, false
	}
	return entry, true
}

// conventionalTestName detects per-language test naming conventions that do
// not use the dotted suffix form.
func conventionalTestName(normalized, lower string) bool {
	switch {
	case strings.HasSuffix(lower, "_test.go"),
		strings.HasSuffix(lower, "_test.py"),
		strings.HasSuffix(lower, "_test.rs"),
		strings.HasSuffix(lower, "_spec.rb"),
		strings.HasPrefix(path.Base(lower), "test_") && strings.HasSuffix(lower, ".py"):
		return true
	}
	if strings.HasSuffix(lower, ".java") || strings.HasSuffix(lower, ".php") || strings.HasSuffix(lower, ".cs") {
		base := path.Base(normalized)
		stem := strings.TrimSuffix(base, path.Ext(base))
		if strings.HasSuffix(stem, "Test") || strings.HasSuffix(stem, "Tests") {
			return true
		}
	}
	return strings.Contains(normalized, "/__tests__/")
}

func lastExtension(lower string) string {
	idx := strings.LastIndex(lower, ".")
	if idx < 0 {
		return ""
	}
	return lower[idx:]
}

func configLanguage(name string) domain.Language {
	switch lastExtension(strings.ToLower(name)) {
	case ".json", ".babelrc", ".eslintrc":
		return domain.LanguageJSON
	case ".xml":
		return domain.LanguageXML
	case ".toml":
		return domain.LanguageTOML
	case ".yml", ".yaml":
		return domain.LanguageYAML
	case ".js", ".ts":
		return domain.LanguageJavaScript
	case ".py":
		return domain.LanguagePython
	case ".mod":
		return domain.LanguageGo
	case ".gradle", ".kts":
		return domain.LanguageKotlin
	default:
		return domain.LanguageUnknown
	}
}

// Apply classifies a bare record and returns a copy with Language, Category
// and Priority populated. Records that should not be analyzed keep the
// unknown markers assigned by Classify.
func Apply(rec domain.FileRecord) (domain.FileRecord, Result) {
	res := Classify(rec.Path, rec.Name)
	rec.Language = res.Language
	rec.Category = res.Category
	rec.Priority = res.Priority
	if rec.Name == "" && rec.Path != "" {
		rec.Name = path.Base(rec.Path)
	}
	return rec, res
}
