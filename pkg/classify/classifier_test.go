package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caseforge/core/pkg/domain"
)

func TestClassify_IgnoreRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		file string
	}{
		{"node_modules dependency", "node_modules/react/index.js", "index.js"},
		{"nested node_modules", "packages/app/node_modules/lodash/lodash.js", "lodash.js"},
		{"git internals", ".git/HEAD", "HEAD"},
		{"vendor directory", "vendor/github.com/pkg/errors/errors.go", "errors.go"},
		{"build output", "dist/bundle.js", "bundle.js"},
		{"lockfile", "package-lock.json", "package-lock.json"},
		{"go checksum", "go.sum", "go.sum"},
		{"OS artifact", "images/.DS_Store", ".DS_Store"},
		{"minified asset", "public/app.min.js", "app.min.js"},
		{"source map", "public/app.js.map", "app.js.map"},
		{"binary image", "assets/logo.png", "logo.png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Classify(tt.path, tt.file)

			assert.False(t, res.ShouldAnalyze, "reason: %s", res.Reason)
			assert.Equal(t, domain.CategoryUnknown, res.Category)
		})
	}
}

func TestClassify_ImportantConfigs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		file string
		lang domain.Language
	}{
		{"node manifest", "package.json", "package.json", domain.LanguageJSON},
		{"go module", "go.mod", "go.mod", domain.LanguageGo},
		{"maven pom", "backend/pom.xml", "pom.xml", domain.LanguageXML},
		{"cargo manifest", "Cargo.toml", "Cargo.toml", domain.LanguageTOML},
		{"makefile", "Makefile", "Makefile", domain.LanguageUnknown},
		{"dockerfile", "deploy/Dockerfile", "Dockerfile", domain.LanguageUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Classify(tt.path, tt.file)

			assert.True(t, res.ShouldAnalyze)
			assert.Equal(t, domain.CategoryConfig, res.Category)
			assert.Equal(t, domain.PriorityHigh, res.Priority)
			assert.Equal(t, tt.lang, res.Language)
		})
	}
}

func TestClassify_CompoundTestSuffixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		lang domain.Language
	}{
		{"jest test", "src/auth.test.js", domain.LanguageJavaScript},
		{"vitest spec", "src/auth.spec.ts", domain.LanguageTypeScript},
		{"tsx spec", "src/components/Button.spec.tsx", domain.LanguageTypeScript},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Classify(tt.path, "")

			assert.True(t, res.ShouldAnalyze)
			assert.Equal(t, domain.CategoryTest, res.Category)
			assert.Equal(t, tt.lang, res.Language)
			assert.Equal(t, domain.PriorityNormal, res.Priority)
		})
	}
}

func TestClassify_ConventionalTestNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		lang domain.Language
	}{
		{"pkg/server/server_test.go", domain.LanguageGo},
		{"tests/test_models.py", domain.LanguagePython},
		{"spec/user_spec.rb", domain.LanguageRuby},
		{"src/test/java/UserServiceTest.java", domain.LanguageJava},
		{"src/__tests__/helpers.js", domain.LanguageJavaScript},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			res := Classify(tt.path, "")

			assert.True(t, res.ShouldAnalyze)
			assert.Equal(t, domain.CategoryTest, res.Category, "reason: %s", res.Reason)
			assert.Equal(t, tt.lang, res.Language)
		})
	}
}

func TestClassify_ExtensionTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		lang     domain.Language
		category domain.Category
		priority int
	}{
		{"src/index.js", domain.LanguageJavaScript, domain.CategorySource, domain.PriorityCritical},
		{"cmd/server/main.go", domain.LanguageGo, domain.CategorySource, domain.PriorityCritical},
		{"app/models.py", domain.LanguagePython, domain.CategorySource, domain.PriorityCritical},
		{"native/engine.cpp", domain.LanguageCpp, domain.CategorySource, domain.PriorityHigh},
		{"config/settings.yaml", domain.LanguageYAML, domain.CategoryConfig, domain.PriorityNormal},
		{"public/index.html", domain.LanguageHTML, domain.CategoryWeb, domain.PriorityLow},
		{"docs/README.md", domain.LanguageMarkdown, domain.CategoryDocs, domain.PriorityLow},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			res := Classify(tt.path, "")

			assert.True(t, res.ShouldAnalyze)
			assert.Equal(t, tt.lang, res.Language)
			assert.Equal(t, tt.category, res.Category)
			assert.Equal(t, tt.priority, res.Priority)
		})
	}
}

func TestClassify_NeverFails(t *testing.T) {
	t.Parallel()

	t.Run("unknown extension is skipped, not an error", func(t *testing.T) {
		t.Parallel()

		res := Classify("data/weights.bin", "weights.bin")

		assert.False(t, res.ShouldAnalyze)
		assert.NotEmpty(t, res.Reason)
		assert.NotZero(t, res.Priority)
	})

	t.Run("missing name falls back to path base", func(t *testing.T) {
		t.Parallel()

		res := Classify("src/app.ts", "")

		assert.True(t, res.ShouldAnalyze)
		assert.Equal(t, domain.LanguageTypeScript, res.Language)
	})

	t.Run("missing path falls back to name", func(t *testing.T) {
		t.Parallel()

		res := Classify("", "main.go")

		assert.True(t, res.ShouldAnalyze)
		assert.Equal(t, domain.LanguageGo, res.Language)
	})

	t.Run("empty input degrades to skip", func(t *testing.T) {
		t.Parallel()

		res := Classify("", "")

		assert.False(t, res.ShouldAnalyze)
		assert.Equal(t, domain.CategoryUnknown, res.Category)
		assert.Equal(t, domain.LanguageUnknown, res.Language)
	})

	t.Run("extensionless file is skipped", func(t *testing.T) {
		t.Parallel()

		res := Classify("LICENSE", "LICENSE")

		assert.False(t, res.ShouldAnalyze)
	})
}
