package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/caseforge/core/pkg/domain"
)

// sigPattern is one declaration idiom. The first non-empty capture group is
// the signature name; exported decides visibility from the full match and
// the captured name.
type sigPattern struct {
	re       *regexp.Regexp
	exported func(match, name string) bool
}

func exportedAlways(string, string) bool { return true }

func exportedUpper(_ string, name string) bool {
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}

func exportedNoUnderscore(_ string, name string) bool {
	return !strings.HasPrefix(name, "_")
}

func exportedKeyword(keyword string) func(string, string) bool {
	return func(match, _ string) bool {
		return strings.Contains(match, keyword)
	}
}

// regexPatterns holds the per-language declaration idioms. The table is
// deliberately open: adding a language means adding an entry, nothing else.
var regexPatterns = map[domain.Language][]sigPattern{
	domain.LanguageJavaScript: jsPatterns,
	domain.LanguageTypeScript: jsPatterns,
	domain.LanguagePython: {
		{re: regexp.MustCompile(`(?m)^\s*(?:async\s+)?def\s+([A-Za-z_]\w*)\s*\(`), exported: exportedNoUnderscore},
	},
	domain.LanguageGo: {
		{re: regexp.MustCompile(`(?m)^func\s+(?:\([^)]+\)\s+)?([A-Za-z_]\w*)\s*\(`), exported: exportedUpper},
	},
	domain.LanguageRuby: {
		{re: regexp.MustCompile(`(?m)^\s*def\s+(?:self\.)?([a-z_]\w*[?!]?)`), exported: exportedNoUnderscore},
	},
	domain.LanguagePHP: {
		{re: regexp.MustCompile(`(?mi)function\s+(\w+)\s*\(`), exported: exportedNoUnderscore},
	},
	domain.LanguageRust: {
		{re: regexp.MustCompile(`(?m)^\s*(pub\s+)?(?:async\s+)?fn\s+(\w+)`), exported: exportedKeyword("pub")},
	},
	domain.LanguageJava: {
		{re: regexp.MustCompile(`(?m)(public|protected|private)\s+(?:static\s+)?(?:final\s+)?[\w<>\[\], ]+\s+(\w+)\s*\(`), exported: exportedKeyword("public")},
	},
	domain.LanguageCSharp: {
		{re: regexp.MustCompile(`(?m)(public|internal|protected|private)\s+(?:static\s+)?(?:async\s+)?[\w<>\[\], ]+\s+(\w+)\s*\(`), exported: exportedKeyword("public")},
	},
	domain.LanguageKotlin: {
		{re: regexp.MustCompile(`(?m)^\s*(?:(private|internal|public)\s+)?(?:suspend\s+)?fun\s+(\w+)\s*\(`), exported: func(match, _ string) bool {
			return !strings.Contains(match, "private") && !strings.Contains(match, "internal")
		}},
	},
	domain.LanguageSwift: {
		{re: regexp.MustCompile(`(?m)^\s*(?:(public|open|private|fileprivate|internal)\s+)?func\s+(\w+)\s*\(`), exported: func(match, _ string) bool {
			return !strings.Contains(match, "private") && !strings.Contains(match, "fileprivate")
		}},
	},
	domain.LanguageShell: {
		{re: regexp.MustCompile(`(?m)^\s*(?:function\s+)?(\w+)\s*\(\)\s*\{`), exported: exportedNoUnderscore},
	},
}

var jsPatterns = []sigPattern{
	// function declarations, optionally exported/async
	{re: regexp.MustCompile(`(?m)(export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s+([A-Za-z_$][\w$]*)\s*\(`), exported: exportedKeyword("export")},
	// arrow/function-expression bindings
	{re: regexp.MustCompile(`(?m)(export\s+)?(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s*)?(?:\([^)]*\)|[A-Za-z_$][\w$]*)\s*=>`), exported: exportedKeyword("export")},
	// CommonJS exports
	{re: regexp.MustCompile(`(?m)(?:module\.)?exports\.([A-Za-z_$][\w$]*)\s*=`), exported: exportedAlways},
}

// regexStrategy implements Strategy over the pattern table for one language.
type regexStrategy struct {
	lang     domain.Language
	patterns []sigPattern
}

func (s *regexStrategy) Name() string                 { return "regex" }
func (s *regexStrategy) Priority() int                { return DefaultPriority }
func (s *regexStrategy) Languages() []domain.Language { return []domain.Language{s.lang} }

func (s *regexStrategy) Extract(source []byte) []Signature {
	var out []Signature
	for _, p := range s.patterns {
		for _, match := range p.re.FindAllSubmatch(source, -1) {
			name := lastGroup(match)
			if name == "" {
				continue
			}
			out = append(out, Signature{
				Name:       name,
				IsExported: p.exported(string(match[0]), name),
			})
			// Generous local cap; the registry dedupes and trims globally.
			if len(out) >= MaxSignaturesPerFile*2 {
				return out
			}
		}
	}
	return out
}

// lastGroup returns the last non-empty capture group, which is the name in
// every pattern above.
func lastGroup(match [][]byte) string {
	for i := len(match) - 1; i >= 1; i-- {
		if len(match[i]) > 0 {
			return string(match[i])
		}
	}
	return ""
}

func init() {
	for lang, patterns := range regexPatterns {
		Register(&regexStrategy{lang: lang, patterns: patterns})
	}
}
