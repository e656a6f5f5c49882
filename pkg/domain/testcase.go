package domain

import (
	"time"

	"github.com/google/uuid"
)

// CasePriority ranks how important a generated test case is.
type CasePriority string

// Case priorities.
const (
	CasePriorityLow      CasePriority = "low"
	CasePriorityMedium   CasePriority = "medium"
	CasePriorityHigh     CasePriority = "high"
	CasePriorityCritical CasePriority = "critical"
)

// GeneratedBy records which pipeline stage produced a test case.
type GeneratedBy string

// Generation provenance values.
const (
	// GeneratedByModel marks cases recovered from the model response.
	GeneratedByModel GeneratedBy = "model"
	// GeneratedByFallbackFunction marks deterministic cases targeted at an
	// extracted function signature.
	GeneratedByFallbackFunction GeneratedBy = "fallback-function-based"
	// GeneratedByFallbackGeneric marks deterministic whole-file smoke cases.
	GeneratedByFallbackGeneric GeneratedBy = "fallback-generic"
)

// PlaceholderCode is the code body used when the model supplied none.
const PlaceholderCode = "// TODO: implement test\nthrow new Error('not implemented');"

// TestCase is the pipeline's output unit: one test to write, with enough
// context to render it. Every field is non-null after normalization, so a
// case is always renderable even from partial model output. Cases are
// created once per request and never mutated.
type TestCase struct {
	// ID uniquely identifies the case within and across requests.
	ID string `json:"id"`
	// Title is a short human-readable name.
	Title string `json:"title"`
	// Description explains what the case verifies.
	Description string `json:"description"`
	// Type is the test type (unit, integration, ...).
	Type TestType `json:"type"`
	// Priority ranks the case.
	Priority CasePriority `json:"priority"`
	// File is the source file the case targets.
	File string `json:"file"`
	// Function is the function under test, when known.
	Function string `json:"function,omitempty"`
	// Code is the test code or skeleton.
	Code string `json:"code"`
	// Setup holds per-case setup code, when any.
	Setup string `json:"setup,omitempty"`
	// Teardown holds per-case teardown code, when any.
	Teardown string `json:"teardown,omitempty"`
	// Dependencies lists packages the test code needs, in install order.
	Dependencies []string `json:"dependencies"`
	// Tags carries free-form labels.
	Tags []string `json:"tags"`
	// GeneratedBy records provenance.
	GeneratedBy GeneratedBy `json:"generatedBy"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// NewCaseID returns a fresh unique test case ID.
func NewCaseID() string {
	return uuid.NewString()
}
