package domain

// ProjectType identifies the overall project flavor inferred from marker
// files. Detection never fails: unmatched projects are ProjectUnknown.
type ProjectType string

// Known project types, in rough order of detection precedence.
const (
	ProjectNode       ProjectType = "node"
	ProjectGo         ProjectType = "go"
	ProjectPython     ProjectType = "python"
	ProjectJavaMaven  ProjectType = "java-maven"
	ProjectJavaGradle ProjectType = "java-gradle"
	ProjectRust       ProjectType = "rust"
	ProjectRuby       ProjectType = "ruby"
	ProjectPHP        ProjectType = "php"
	ProjectDotnet     ProjectType = "dotnet"
	ProjectUnknown    ProjectType = "unknown"
)

// ProjectStructure describes what a repository looks like as a whole.
// It is derived from the classified file set per request and never persisted.
// Empty string fields mean "not detected".
type ProjectStructure struct {
	// Type is the project flavor; ProjectUnknown when no marker matched.
	Type ProjectType `json:"type"`
	// Framework is the detected application framework (e.g. "react", "django").
	Framework string `json:"framework,omitempty"`
	// BuildTool is the detected build tool (e.g. "npm", "maven").
	BuildTool string `json:"buildTool,omitempty"`
	// TestFramework is the detected test framework (e.g. "jest", "pytest").
	TestFramework string `json:"testFramework,omitempty"`
	// Language is the dominant source language, when one is clear.
	Language Language `json:"language,omitempty"`
}
