package classify

import "github.com/caseforge/core/pkg/domain"

// ignoreSubstrings are path fragments that always exclude a file. Matching is
// plain substring containment against the slash-normalized path.
var ignoreSubstrings = []string{
	"node_modules/",
	".git/",
	"vendor/",
	"dist/",
	"build/",
	"out/",
	"target/",
	".next/",
	".nuxt/",
	"__pycache__/",
	".pytest_cache/",
	"coverage/",
	".cache/",
	".idea/",
	".vscode/",
	"bower_components/",
	".DS_Store",
	"Thumbs.db",
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"Cargo.lock",
	"composer.lock",
	"Gemfile.lock",
	"poetry.lock",
	"go.sum",
}

// ignoreWildcards are glob-style patterns matched against the bare file name.
// Only literal "*" wildcards are relied upon; no full glob semantics.
var ignoreWildcards = []string{
	"*.min.js",
	"*.min.css",
	"*.map",
	"*.log",
	"*.lock",
	"*.pyc",
	"*.class",
	"*.o",
	"*.exe",
	"*.dll",
	"*.so",
	"*.dylib",
	"*.zip",
	"*.tar.gz",
	"*.png",
	"*.jpg",
	"*.jpeg",
	"*.gif",
	"*.svg",
	"*.ico",
	"*.woff",
	"*.woff2",
	"*.ttf",
	"*.eot",
	"*.pdf",
}

// importantConfigs are bare file names force-included at PriorityHigh
// regardless of extension: they carry structure-detection signal
// disproportionate to their size.
var importantConfigs = map[string]bool{
	"package.json":       true,
	"go.mod":             true,
	"Cargo.toml":         true,
	"pom.xml":            true,
	"build.gradle":       true,
	"build.gradle.kts":   true,
	"settings.gradle":    true,
	"requirements.txt":   true,
	"pyproject.toml":     true,
	"setup.py":           true,
	"Pipfile":            true,
	"Gemfile":            true,
	"composer.json":      true,
	"tsconfig.json":      true,
	"jest.config.js":     true,
	"jest.config.ts":     true,
	"vitest.config.js":   true,
	"vitest.config.ts":   true,
	"webpack.config.js":  true,
	"vite.config.js":     true,
	"vite.config.ts":     true,
	"babel.config.js":    true,
	"pytest.ini":         true,
	"phpunit.xml":        true,
	"Makefile":           true,
	"Dockerfile":         true,
	"docker-compose.yml": true,
	".babelrc":           true,
	".eslintrc.json":     true,
}

type tableEntry struct {
	language domain.Language
	category domain.Category
	priority int
}

// extensionTable maps a file extension (last path segment after the final
// dot, lowercased, including the dot) to its classification.
var extensionTable = map[string]tableEntry{
	// Primary source languages.
	".go":     {domain.LanguageGo, domain.CategorySource, domain.PriorityCritical},
	".js":     {domain.LanguageJavaScript, domain.CategorySource, domain.PriorityCritical},
	".jsx":    {domain.LanguageJavaScript, domain.CategorySource, domain.PriorityCritical},
	".mjs":    {domain.LanguageJavaScript, domain.CategorySource, domain.PriorityCritical},
	".cjs":    {domain.LanguageJavaScript, domain.CategorySource, domain.PriorityCritical},
	".ts":     {domain.LanguageTypeScript, domain.CategorySource, domain.PriorityCritical},
	".tsx":    {domain.LanguageTypeScript, domain.CategorySource, domain.PriorityCritical},
	".py":     {domain.LanguagePython, domain.CategorySource, domain.PriorityCritical},
	".java":   {domain.LanguageJava, domain.CategorySource, domain.PriorityCritical},
	".rb":     {domain.LanguageRuby, domain.CategorySource, domain.PriorityCritical},
	".php":    {domain.LanguagePHP, domain.CategorySource, domain.PriorityCritical},
	".rs":     {domain.LanguageRust, domain.CategorySource, domain.PriorityCritical},
	".cs":     {domain.LanguageCSharp, domain.CategorySource, domain.PriorityCritical},
	".vue":    {domain.LanguageJavaScript, domain.CategorySource, domain.PriorityHigh},
	".svelte": {domain.LanguageJavaScript, domain.CategorySource, domain.PriorityHigh},

	// Secondary source languages.
	".cpp":   {domain.LanguageCpp, domain.CategorySource, domain.PriorityHigh},
	".cc":    {domain.LanguageCpp, domain.CategorySource, domain.PriorityHigh},
	".cxx":   {domain.LanguageCpp, domain.CategorySource, domain.PriorityHigh},
	".c":     {domain.LanguageC, domain.CategorySource, domain.PriorityHigh},
	".h":     {domain.LanguageC, domain.CategorySource, domain.PriorityHigh},
	".hpp":   {domain.LanguageCpp, domain.CategorySource, domain.PriorityHigh},
	".kt":    {domain.LanguageKotlin, domain.CategorySource, domain.PriorityHigh},
	".kts":   {domain.LanguageKotlin, domain.CategorySource, domain.PriorityHigh},
	".swift": {domain.LanguageSwift, domain.CategorySource, domain.PriorityHigh},
	".scala": {domain.LanguageScala, domain.CategorySource, domain.PriorityHigh},

	// Scripts and queries.
	".sh":  {domain.LanguageShell, domain.CategorySource, domain.PriorityNormal},
	".sql": {domain.LanguageSQL, domain.CategorySource, domain.PriorityNormal},

	// Configuration formats.
	".json": {domain.LanguageJSON, domain.CategoryConfig, domain.PriorityNormal},
	".yaml": {domain.LanguageYAML, domain.CategoryConfig, domain.PriorityNormal},
	".yml":  {domain.LanguageYAML, domain.CategoryConfig, domain.PriorityNormal},
	".toml": {domain.LanguageTOML, domain.CategoryConfig, domain.PriorityNormal},
	".xml":  {domain.LanguageXML, domain.CategoryConfig, domain.PriorityNormal},

	// Web assets.
	".html": {domain.LanguageHTML, domain.CategoryWeb, domain.PriorityLow},
	".htm":  {domain.LanguageHTML, domain.CategoryWeb, domain.PriorityLow},
	".css":  {domain.LanguageCSS, domain.CategoryWeb, domain.PriorityLow},
	".scss": {domain.LanguageCSS, domain.CategoryWeb, domain.PriorityLow},
	".less": {domain.LanguageCSS, domain.CategoryWeb, domain.PriorityLow},

	// Documentation.
	".md":  {domain.LanguageMarkdown, domain.CategoryDocs, domain.PriorityLow},
	".rst": {domain.LanguageMarkdown, domain.CategoryDocs, domain.PriorityLow},
	".txt": {domain.LanguageMarkdown, domain.CategoryDocs, domain.PriorityLow},
}
