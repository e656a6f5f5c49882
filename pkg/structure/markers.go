package structure

import "github.com/caseforge/core/pkg/domain"

// typeRule maps marker file names to a project type. Rules are evaluated in
// order and only the first match wins: manifest detection takes precedence
// over language-extension inference, which avoids contradictory multi-type
// results for polyglot repositories.
type typeRule struct {
	projectType domain.ProjectType
	markers     []string
}

var typeRules = []typeRule{
	{domain.ProjectNode, []string{"package.json"}},
	{domain.ProjectGo, []string{"go.mod"}},
	{domain.ProjectRust, []string{"Cargo.toml"}},
	{domain.ProjectJavaMaven, []string{"pom.xml"}},
	{domain.ProjectJavaGradle, []string{"build.gradle", "build.gradle.kts"}},
	{domain.ProjectPython, []string{"pyproject.toml", "requirements.txt", "setup.py", "Pipfile"}},
	{domain.ProjectRuby, []string{"Gemfile"}},
	{domain.ProjectPHP, []string{"composer.json"}},
}

// extensionTypes backs the lowest-precedence rule: infer the type from the
// dominant source extension when no manifest matched.
var extensionTypes = map[string]domain.ProjectType{
	".js":   domain.ProjectNode,
	".jsx":  domain.ProjectNode,
	".ts":   domain.ProjectNode,
	".tsx":  domain.ProjectNode,
	".go":   domain.ProjectGo,
	".py":   domain.ProjectPython,
	".rs":   domain.ProjectRust,
	".rb":   domain.ProjectRuby,
	".php":  domain.ProjectPHP,
	".java": domain.ProjectJavaMaven,
	".cs":   domain.ProjectDotnet,
}

// markerQuery is an independent single-value detection: the first matching
// entry supplies the value, absence of any match leaves the field empty.
type markerQuery struct {
	value string
	// names match the bare file name exactly.
	names []string
	// fragments match anywhere in the slash-normalized path.
	fragments []string
}

var frameworkQueries = []markerQuery{
	{value: "nextjs", fragments: []string{"next.config."}},
	{value: "nuxt", fragments: []string{"nuxt.config."}},
	{value: "angular", names: []string{"angular.json"}},
	{value: "svelte", fragments: []string{"svelte.config."}},
	{value: "vue", fragments: []string{"vue.config.", ".vue"}},
	{value: "react", fragments: []string{".jsx", ".tsx"}},
	{value: "django", names: []string{"manage.py"}},
	{value: "rails", fragments: []string{"config/routes.rb"}},
	{value: "spring-boot", names: []string{"application.properties", "application.yml"}},
	{value: "laravel", names: []string{"artisan"}},
}

var buildToolQueries = []markerQuery{
	{value: "pnpm", names: []string{"pnpm-lock.yaml"}},
	{value: "yarn", names: []string{"yarn.lock"}},
	{value: "npm", names: []string{"package-lock.json", "package.json"}},
	{value: "maven", names: []string{"pom.xml"}},
	{value: "gradle", names: []string{"build.gradle", "build.gradle.kts", "settings.gradle"}},
	{value: "cargo", names: []string{"Cargo.toml"}},
	{value: "go", names: []string{"go.mod"}},
	{value: "poetry", names: []string{"poetry.lock"}},
	{value: "pip", names: []string{"requirements.txt", "setup.py", "Pipfile"}},
	{value: "composer", names: []string{"composer.json"}},
	{value: "bundler", names: []string{"Gemfile"}},
	{value: "make", names: []string{"Makefile"}},
}

var testFrameworkQueries = []markerQuery{
	{value: "vitest", fragments: []string{"vitest.config."}},
	{value: "jest", fragments: []string{"jest.config.", "jest.setup."}},
	{value: "playwright", fragments: []string{"playwright.config."}},
	{value: "cypress", fragments: []string{"cypress.config.", "cypress/e2e/"}},
	{value: "mocha", names: []string{".mocharc.js", ".mocharc.json", ".mocharc.yml", "mocha.opts"}},
	{value: "pytest", names: []string{"pytest.ini", "conftest.py", "tox.ini"}},
	{value: "go-testing", fragments: []string{"_test.go"}},
	{value: "rspec", names: []string{".rspec"}, fragments: []string{"_spec.rb"}},
	{value: "phpunit", names: []string{"phpunit.xml", "phpunit.xml.dist"}},
	{value: "junit", fragments: []string{"src/test/java/"}},
}
