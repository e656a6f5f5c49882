package domain

// TestStrategy captures the idiomatic test-authoring convention for a
// project type. Resolution is total: every ProjectType, recognized or not,
// yields a fully populated strategy.
type TestStrategy struct {
	// TestFramework is the framework generated tests should target.
	TestFramework string `json:"testFramework"`
	// TestFilePattern is the conventional test file naming pattern
	// (e.g. "*.test.js", "*_test.go").
	TestFilePattern string `json:"testFilePattern"`
	// TestDirectory is the conventional test directory ("same" means
	// tests sit next to the code under test).
	TestDirectory string `json:"testDirectory"`
	// MockingLibrary is the conventional mocking library.
	MockingLibrary string `json:"mockingLibrary"`
}
