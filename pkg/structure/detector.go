// Package structure infers project shape from a repository's file name and
// path set. Detection works on weak signal only (no file contents), so the
// result is a best guess that degrades to "unknown" rather than failing.
package structure

import (
	"path"
	"strings"

	"github.com/caseforge/core/pkg/domain"
)

// fileSet is a prepared view of the input records for marker evaluation.
type fileSet struct {
	names map[string]bool
	paths []string
}

func newFileSet(files []domain.FileRecord) *fileSet {
	fs := &fileSet{
		names: make(map[string]bool, len(files)),
		paths: make([]string, 0, len(files)),
	}
	for _, f := range files {
		name := f.Name
		if name == "" {
			name = path.Base(f.Path)
		}
		fs.names[name] = true
		fs.paths = append(fs.paths, strings.ReplaceAll(f.Path, "\\", "/"))
	}
	return fs
}

func (fs *fileSet) hasName(name string) bool {
	return fs.names[name]
}

func (fs *fileSet) hasFragment(fragment string) bool {
	for _, p := range fs.paths {
		if strings.Contains(p, fragment) {
			return true
		}
	}
	return false
}

// Detect infers the project structure from the full file set. The type is
// decided by the first matching rule in priority order; framework, build
// tool and test framework are independent queries that each match at most
// one value. Empty input yields an all-unknown structure, never an error.
func Detect(files []domain.FileRecord) domain.ProjectStructure {
	out := domain.ProjectStructure{Type: domain.ProjectUnknown}
	if len(files) == 0 {
		return out
	}

	fs := newFileSet(files)

	out.Type = detectType(fs)
	out.Framework = firstMatch(fs, frameworkQueries)
	out.BuildTool = firstMatch(fs, buildToolQueries)
	out.TestFramework = firstMatch(fs, testFrameworkQueries)
	out.Language = dominantLanguage(files)

	return out
}

func detectType(fs *fileSet) domain.ProjectType {
	for _, rule := range typeRules {
		for _, marker := range rule.markers {
			if fs.hasName(marker) {
				return rule.projectType
			}
		}
	}

	// No manifest: fall back to the dominant source extension.
	counts := make(map[domain.ProjectType]int)
	for _, p := range fs.paths {
		if t, ok := extensionTypes[strings.ToLower(path.Ext(p))]; ok {
			counts[t]++
		}
	}

	best := domain.ProjectUnknown
	bestCount := 0
	for _, t := range extensionTypeOrder {
		if counts[t] > bestCount {
			best = t
			bestCount = counts[t]
		}
	}
	return best
}

// extensionTypeOrder makes the extension-share fallback deterministic when
// counts tie.
var extensionTypeOrder = []domain.ProjectType{
	domain.ProjectNode,
	domain.ProjectGo,
	domain.ProjectPython,
	domain.ProjectJavaMaven,
	domain.ProjectRust,
	domain.ProjectRuby,
	domain.ProjectPHP,
	domain.ProjectDotnet,
}

func firstMatch(fs *fileSet, queries []markerQuery) string {
	for _, q := range queries {
		for _, name := range q.names {
			if fs.hasName(name) {
				return q.value
			}
		}
		for _, fragment := range q.fragments {
			if fs.hasFragment(fragment) {
				return q.value
			}
		}
	}
	return ""
}

var sourceExtLanguages = map[string]domain.Language{
	".go":    domain.LanguageGo,
	".js":    domain.LanguageJavaScript,
	".jsx":   domain.LanguageJavaScript,
	".mjs":   domain.LanguageJavaScript,
	".ts":    domain.LanguageTypeScript,
	".tsx":   domain.LanguageTypeScript,
	".py":    domain.LanguagePython,
	".java":  domain.LanguageJava,
	".rb":    domain.LanguageRuby,
	".php":   domain.LanguagePHP,
	".rs":    domain.LanguageRust,
	".cs":    domain.LanguageCSharp,
	".kt":    domain.LanguageKotlin,
	".swift": domain.LanguageSwift,
}

func dominantLanguage(files []domain.FileRecord) domain.Language {
	counts := make(map[domain.Language]int)
	for _, f := range files {
		if lang, ok := sourceExtLanguages[strings.ToLower(path.Ext(f.Path))]; ok {
			counts[lang]++
		}
	}

	var best domain.Language
	bestCount := 0
	for _, lang := range languageOrder {
		if counts[lang] > bestCount {
			best = lang
			bestCount = counts[lang]
		}
	}
	return best
}

var languageOrder = []domain.Language{
	domain.LanguageJavaScript,
	domain.LanguageTypeScript,
	domain.LanguageGo,
	domain.LanguagePython,
	domain.LanguageJava,
	domain.LanguageRuby,
	domain.LanguagePHP,
	domain.LanguageRust,
	domain.LanguageCSharp,
	domain.LanguageKotlin,
	domain.LanguageSwift,
}
