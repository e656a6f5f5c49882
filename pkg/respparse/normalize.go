package respparse

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/caseforge/core/pkg/domain"
)

var validPriorities = map[domain.CasePriority]bool{
	domain.CasePriorityLow:      true,
	domain.CasePriorityMedium:   true,
	domain.CasePriorityHigh:     true,
	domain.CasePriorityCritical: true,
}

// normalizeAll fills every missing field of every recovered case with its
// documented default, so each case renders even from partial model output.
func normalizeAll(cases []rawCase, files []domain.FileRecord, cfg domain.GenerationConfig) []domain.TestCase {
	now := time.Now().UTC()

	defaultFile := ""
	if len(files) > 0 {
		defaultFile = files[0].Path
	}

	out := make([]domain.TestCase, 0, len(cases))
	for i, rc := range cases {
		out = append(out, normalizeOne(i, rc, defaultFile, cfg, now))
	}
	return out
}

func normalizeOne(i int, rc rawCase, defaultFile string, cfg domain.GenerationConfig, now time.Time) domain.TestCase {
	title := strings.TrimSpace(rc.Title)
	if title == "" {
		title = fmt.Sprintf("Test Case %d", i+1)
	}

	// Any recognized type is kept as-is, even one the caller did not ask
	// for; only missing or unrecognized values default to the primary
	// requested type.
	testType := domain.TestType(strings.ToLower(strings.TrimSpace(rc.Type)))
	if !testType.Valid() {
		testType = cfg.PrimaryType()
	}

	priority := domain.CasePriority(strings.ToLower(strings.TrimSpace(rc.Priority)))
	if !validPriorities[priority] {
		priority = domain.CasePriorityMedium
	}

	file := strings.TrimSpace(rc.File)
	if file == "" {
		file = defaultFile
	}

	code := rc.Code
	if strings.TrimSpace(code) == "" {
		code = domain.PlaceholderCode
	}

	function := strings.TrimSpace(rc.Function)
	if function == "" {
		function = recoverFunction(code)
	}

	deps := rc.Dependencies
	if deps == nil {
		deps = []string{}
	}
	tags := rc.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.TestCase{
		ID:           domain.NewCaseID(),
		Title:        title,
		Description:  rc.Description,
		Type:         testType,
		Priority:     priority,
		File:         file,
		Function:     function,
		Code:         code,
		Setup:        rc.Setup,
		Teardown:     rc.Teardown,
		Dependencies: deps,
		Tags:         tags,
		GeneratedBy:  domain.GeneratedByModel,
		CreatedAt:    now,
	}
}

// functionPatterns match common test-declaration idioms whose quoted (or
// suffixed) identifier names the function under test. Best-effort
// enrichment only; no match leaves the field empty.
var functionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`describe\s*\(\s*['"` + "`" + `]([A-Za-z_$][\w$]*)['"` + "`" + `]`),
	regexp.MustCompile(`(?:\bit|\btest)\s*\(\s*['"` + "`" + `]([A-Za-z_$][\w$]*)['"` + "`" + `]`),
	regexp.MustCompile(`def\s+test_(\w+)`),
	regexp.MustCompile(`func\s+Test(\w+)\s*\(`),
}

func recoverFunction(code string) string {
	for _, p := range functionPatterns {
		if m := p.FindStringSubmatch(code); m != nil {
			return m[1]
		}
	}
	return ""
}
