// Package respparse reconstructs structured test cases from the model's raw
// text output. The output is untrusted and possibly malformed; parsing is a
// chain of strategies tried in order, and total failure defers to the
// deterministic fallback generator instead of surfacing an error.
package respparse

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/caseforge/core/pkg/domain"
	"github.com/caseforge/core/pkg/fallback"
)

// envelope is the shape the prompt instructs the model to emit.
type envelope struct {
	TestCases []rawCase `json:"testCases"`
}

// rawCase mirrors the requested schema minus generated bookkeeping fields.
// Missing fields stay zero and are filled during normalization.
type rawCase struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	Priority     string   `json:"priority"`
	File         string   `json:"file"`
	Function     string   `json:"function"`
	Code         string   `json:"code"`
	Setup        string   `json:"setup"`
	Teardown     string   `json:"teardown"`
	Dependencies []string `json:"dependencies"`
	Tags         []string `json:"tags"`
}

// ReasonUnparseable is the fallback reason recorded when every parse
// strategy fails on the model output.
const ReasonUnparseable = "unparseable model response"

// parseStrategy attempts one way of recovering the envelope from raw text.
// ok is false when the strategy does not apply or yields no cases.
type parseStrategy func(raw string) (cases []rawCase, ok bool)

// strategies are evaluated lazily in order; the first success wins.
var strategies = []parseStrategy{
	parseWholeDocument,
	parseFencedBlock,
	parseEmbeddedObject,
}

// Parse converts the model's raw output into normalized test cases. It never
// returns an error: when every strategy fails, the result comes from the
// fallback generator with the failure recorded as the reason.
func Parse(raw string, files []domain.FileRecord, cfg domain.GenerationConfig) []domain.TestCase {
	cfg = cfg.Normalize()
	trimmed := strings.TrimSpace(raw)

	for _, strat := range strategies {
		if cases, ok := strat(trimmed); ok {
			return normalizeAll(cases, files, cfg)
		}
	}

	return fallback.Generate(ReasonUnparseable, files, cfg)
}

// parseWholeDocument treats the entire response as the JSON envelope.
func parseWholeDocument(raw string) ([]rawCase, bool) {
	return decodeEnvelope(raw)
}

var fencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// parseFencedBlock extracts the first fenced code block and parses that.
func parseFencedBlock(raw string) ([]rawCase, bool) {
	m := fencePattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, false
	}
	return decodeEnvelope(strings.TrimSpace(m[1]))
}

// parseEmbeddedObject scans for the first JSON object containing the literal
// key "testCases" and parses that substring, tolerating surrounding prose.
func parseEmbeddedObject(raw string) ([]rawCase, bool) {
	keyIdx := strings.Index(raw, `"testCases"`)
	if keyIdx < 0 {
		return nil, false
	}

	start := strings.LastIndex(raw[:keyIdx], "{")
	if start < 0 {
		return nil, false
	}

	candidate, ok := balancedObject(raw[start:])
	if !ok {
		return nil, false
	}
	return decodeEnvelope(candidate)
}

// balancedObject returns the prefix of s forming one complete JSON object,
// tracking brace depth outside of string literals.
func balancedObject(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

func decodeEnvelope(raw string) ([]rawCase, bool) {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, false
	}
	if len(env.TestCases) == 0 {
		return nil, false
	}
	return env.TestCases, true
}
