// Package domain defines the core types for repository analysis and
// test-case generation.
package domain

// Language represents a programming language.
type Language string

// Languages known to the classification table. Files outside this set fall
// through to LanguageUnknown and are excluded from analysis.
const (
	LanguageC          Language = "c"
	LanguageCpp        Language = "cpp"
	LanguageCSharp     Language = "csharp"
	LanguageCSS        Language = "css"
	LanguageGo         Language = "go"
	LanguageHTML       Language = "html"
	LanguageJava       Language = "java"
	LanguageJavaScript Language = "javascript"
	LanguageJSON       Language = "json"
	LanguageKotlin     Language = "kotlin"
	LanguageMarkdown   Language = "markdown"
	LanguagePHP        Language = "php"
	LanguagePython     Language = "python"
	LanguageRuby       Language = "ruby"
	LanguageRust       Language = "rust"
	LanguageScala      Language = "scala"
	LanguageShell      Language = "shell"
	LanguageSQL        Language = "sql"
	LanguageSwift      Language = "swift"
	LanguageTOML       Language = "toml"
	LanguageTypeScript Language = "typescript"
	LanguageUnknown    Language = "unknown"
	LanguageXML        Language = "xml"
	LanguageYAML       Language = "yaml"
)
