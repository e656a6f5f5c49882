// Package strategy maps a detected project structure to the test-authoring
// convention generated tests should follow.
package strategy

import "github.com/caseforge/core/pkg/domain"

// strategyTable keys test conventions by project type. One universal default
// entry covers every unrecognized type, which keeps Resolve total.
var strategyTable = map[domain.ProjectType]domain.TestStrategy{
	domain.ProjectNode: {
		TestFramework:   "jest",
		TestFilePattern: "*.test.js",
		TestDirectory:   "__tests__",
		MockingLibrary:  "jest",
	},
	domain.ProjectGo: {
		TestFramework:   "go-testing",
		TestFilePattern: "*_test.go",
		TestDirectory:   "same",
		MockingLibrary:  "testify",
	},
	domain.ProjectPython: {
		TestFramework:   "pytest",
		TestFilePattern: "test_*.py",
		TestDirectory:   "tests",
		MockingLibrary:  "unittest.mock",
	},
	domain.ProjectJavaMaven: {
		TestFramework:   "junit5",
		TestFilePattern: "*Test.java",
		TestDirectory:   "src/test/java",
		MockingLibrary:  "mockito",
	},
	domain.ProjectJavaGradle: {
		TestFramework:   "junit5",
		TestFilePattern: "*Test.java",
		TestDirectory:   "src/test/java",
		MockingLibrary:  "mockito",
	},
	domain.ProjectRust: {
		TestFramework:   "cargo-test",
		TestFilePattern: "*_test.rs",
		TestDirectory:   "tests",
		MockingLibrary:  "mockall",
	},
	domain.ProjectRuby: {
		TestFramework:   "rspec",
		TestFilePattern: "*_spec.rb",
		TestDirectory:   "spec",
		MockingLibrary:  "rspec-mocks",
	},
	domain.ProjectPHP: {
		TestFramework:   "phpunit",
		TestFilePattern: "*Test.php",
		TestDirectory:   "tests",
		MockingLibrary:  "phpunit",
	},
	domain.ProjectDotnet: {
		TestFramework:   "xunit",
		TestFilePattern: "*Tests.cs",
		TestDirectory:   "Tests",
		MockingLibrary:  "moq",
	},
}

// defaultStrategy is used for unrecognized project types. Generic enough to
// render for any language the generation templates support.
var defaultStrategy = domain.TestStrategy{
	TestFramework:   "generic",
	TestFilePattern: "*.test.*",
	TestDirectory:   "tests",
	MockingLibrary:  "none",
}

// Resolve returns the test-authoring convention for a project structure.
// Resolution is a pure lookup and is total: unrecognized types get the
// universal default. A test framework already detected from the file set
// overrides the table's framework value but not the naming pattern,
// directory or mocking library.
func Resolve(s domain.ProjectStructure) domain.TestStrategy {
	out, ok := strategyTable[s.Type]
	if !ok {
		out = defaultStrategy
	}

	if s.TestFramework != "" {
		out.TestFramework = s.TestFramework
	}

	return out
}
