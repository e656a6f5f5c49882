package domain

// Category classifies the role a file plays within a repository.
type Category string

// File categories assigned by the classifier.
const (
	// CategorySource indicates application source code.
	CategorySource Category = "source"
	// CategoryTest indicates an existing test file.
	CategoryTest Category = "test"
	// CategoryConfig indicates a build/manifest/configuration file.
	CategoryConfig Category = "config"
	// CategoryDocs indicates documentation.
	CategoryDocs Category = "docs"
	// CategoryWeb indicates markup/styling assets.
	CategoryWeb Category = "web"
	// CategoryUnknown indicates a file the classification table does not cover.
	CategoryUnknown Category = "unknown"
)

// Analysis priorities. Lower values are analyzed first.
const (
	// PriorityCritical marks files central to analysis (primary source code).
	PriorityCritical = 1
	// PriorityHigh marks files with strong signal (manifests, secondary source).
	PriorityHigh = 2
	// PriorityNormal marks files with moderate signal (tests, templates).
	PriorityNormal = 3
	// PriorityLow marks files with weak signal (docs, styling).
	PriorityLow = 4
)

// FileRecord describes a single repository file. Records are immutable once
// classified; Content is nil for tree-listing-only records and populated once
// fetched from the source collaborator.
type FileRecord struct {
	// Path is the repository-relative file path.
	Path string `json:"path"`
	// Name is the bare file name.
	Name string `json:"name"`
	// Content is the file content, nil until fetched.
	Content []byte `json:"content,omitempty"`
	// Size is the file size in bytes as reported by the listing.
	Size int64 `json:"size"`
	// Language is the detected programming language.
	Language Language `json:"language"`
	// Category is the detected file role.
	Category Category `json:"category"`
	// Priority is the analysis priority, 1 (highest) to 4 (lowest).
	Priority int `json:"priority"`
}
