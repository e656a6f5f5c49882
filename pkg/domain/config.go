package domain

// TestType identifies what kind of test a case exercises.
type TestType string

// Recognized test types. Unrecognized values in caller input are dropped
// during normalization, never rejected.
const (
	TestTypeUnit          TestType = "unit"
	TestTypeIntegration   TestType = "integration"
	TestTypeE2E           TestType = "e2e"
	TestTypePerformance   TestType = "performance"
	TestTypeSecurity      TestType = "security"
	TestTypeAPI           TestType = "api"
	TestTypeDatabase      TestType = "database"
	TestTypeVisual        TestType = "visual"
	TestTypeAccessibility TestType = "accessibility"
)

// Complexity controls how elaborate generated tests should be.
type Complexity string

// Recognized complexity levels.
const (
	ComplexitySimple   Complexity = "simple"
	ComplexityMedium   Complexity = "medium"
	ComplexityComplex  Complexity = "complex"
	ComplexityAdaptive Complexity = "adaptive"
)

// FrameworkAuto asks the pipeline to pick the most idiomatic framework for
// the detected language instead of a caller-named one.
const FrameworkAuto = "auto"

// GenerationConfig carries caller preferences for a generation request.
// Zero values are valid: Normalize fills documented defaults.
type GenerationConfig struct {
	// Types lists the requested test types, in caller preference order.
	Types []TestType `json:"types" yaml:"types"`
	// Complexity is the requested test complexity.
	Complexity Complexity `json:"complexity" yaml:"complexity"`
	// Framework is an explicit test framework name, or FrameworkAuto.
	Framework string `json:"framework" yaml:"framework"`
	// IncludeEdgeCases asks for boundary-condition coverage.
	IncludeEdgeCases bool `json:"includeEdgeCases" yaml:"include_edge_cases"`
	// IncludeNegativeTests asks for failure-path coverage.
	IncludeNegativeTests bool `json:"includeNegativeTests" yaml:"include_negative_tests"`
}

var validTestTypes = map[TestType]bool{
	TestTypeUnit:          true,
	TestTypeIntegration:   true,
	TestTypeE2E:           true,
	TestTypePerformance:   true,
	TestTypeSecurity:      true,
	TestTypeAPI:           true,
	TestTypeDatabase:      true,
	TestTypeVisual:        true,
	TestTypeAccessibility: true,
}

// Valid reports whether t is a recognized test type.
func (t TestType) Valid() bool {
	return validTestTypes[t]
}

var validComplexities = map[Complexity]bool{
	ComplexitySimple:   true,
	ComplexityMedium:   true,
	ComplexityComplex:  true,
	ComplexityAdaptive: true,
}

// Normalize returns a copy with invalid or missing fields coerced to their
// defaults: types {unit}, complexity adaptive, framework auto. Unrecognized
// test types are dropped; duplicates are removed preserving order.
func (c GenerationConfig) Normalize() GenerationConfig {
	out := c

	seen := make(map[TestType]bool, len(c.Types))
	types := make([]TestType, 0, len(c.Types))
	for _, t := range c.Types {
		if !validTestTypes[t] || seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	if len(types) == 0 {
		types = []TestType{TestTypeUnit}
	}
	out.Types = types

	if !validComplexities[c.Complexity] {
		out.Complexity = ComplexityAdaptive
	}
	if c.Framework == "" {
		out.Framework = FrameworkAuto
	}

	return out
}

// PrimaryType returns the first requested test type. Call on a normalized
// config; falls back to unit otherwise.
func (c GenerationConfig) PrimaryType() TestType {
	if len(c.Types) == 0 {
		return TestTypeUnit
	}
	return c.Types[0]
}
