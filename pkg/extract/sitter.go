package extract

import (
	"context"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/caseforge/core/pkg/domain"
)

// maxTreeDepth bounds AST recursion.
const maxTreeDepth = 1000

// astPriority puts AST-backed strategies ahead of the regex fallback for the
// languages that have a grammar wired in.
const astPriority = 200

// astStrategy extracts signatures by walking a tree-sitter AST. Parse
// failures return nil so the registry falls through to the regex strategy
// for the same language.
type astStrategy struct {
	lang       domain.Language
	sitterLang *sitter.Language
	collect    func(root *sitter.Node, source []byte) []Signature
}

func (s *astStrategy) Name() string                 { return "tree-sitter" }
func (s *astStrategy) Priority() int                { return astPriority }
func (s *astStrategy) Languages() []domain.Language { return []domain.Language{s.lang} }

func (s *astStrategy) Extract(source []byte) []Signature {
	// A fresh parser per call: tree-sitter parsers are not safe for
	// concurrent use and do not recover cleanly after cancellation.
	parser := sitter.NewParser()
	parser.SetLanguage(s.sitterLang)
	defer parser.Close()

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil
	}
	defer tree.Close()

	return s.collect(tree.RootNode(), source)
}

// nodeText returns the source text for node with bounds checking; malformed
// trees yield empty strings instead of panics.
func nodeText(node *sitter.Node, source []byte) (text string) {
	if node == nil {
		return ""
	}
	if node.StartByte() > uint32(len(source)) || node.EndByte() > uint32(len(source)) {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()
	return node.Content(source)
}

func walk(node *sitter.Node, depth int, visit func(*sitter.Node) bool) {
	if node == nil || depth > maxTreeDepth {
		return
	}
	if !visit(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walk(node.Child(i), depth+1, visit)
	}
}

func collectGo(root *sitter.Node, source []byte) []Signature {
	var out []Signature
	walk(root, 0, func(n *sitter.Node) bool {
		switch n.Type() {
		case "function_declaration", "method_declaration":
			name := nodeText(n.ChildByFieldName("name"), source)
			if name != "" {
				out = append(out, Signature{Name: name, IsExported: startsUpper(name)})
			}
			return false
		}
		return true
	})
	return out
}

func collectPython(root *sitter.Node, source []byte) []Signature {
	var out []Signature
	walk(root, 0, func(n *sitter.Node) bool {
		if n.Type() == "function_definition" {
			name := nodeText(n.ChildByFieldName("name"), source)
			if name != "" {
				out = append(out, Signature{Name: name, IsExported: !strings.HasPrefix(name, "_")})
			}
			return false
		}
		return true
	})
	return out
}

func collectJS(root *sitter.Node, source []byte) []Signature {
	var out []Signature
	walk(root, 0, func(n *sitter.Node) bool {
		switch n.Type() {
		case "function_declaration", "generator_function_declaration":
			name := nodeText(n.ChildByFieldName("name"), source)
			if name != "" {
				out = append(out, Signature{Name: name, IsExported: underExport(n)})
			}
			return false
		case "method_definition":
			name := nodeText(n.ChildByFieldName("name"), source)
			if name != "" && name != "constructor" {
				out = append(out, Signature{Name: name, IsExported: underExport(n)})
			}
			return false
		case "variable_declarator":
			value := n.ChildByFieldName("value")
			if value != nil && (value.Type() == "arrow_function" || value.Type() == "function_expression" || value.Type() == "function") {
				name := nodeText(n.ChildByFieldName("name"), source)
				if name != "" {
					out = append(out, Signature{Name: name, IsExported: underExport(n)})
				}
			}
			return false
		}
		return true
	})
	return out
}

// underExport reports whether the node sits inside an export statement.
func underExport(n *sitter.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == "export_statement" {
			return true
		}
		// Stop at statement containers; exports wrap declarations directly.
		if p.Type() == "program" || p.Type() == "statement_block" {
			return false
		}
	}
	return false
}

func startsUpper(name string) bool {
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}

func init() {
	Register(&astStrategy{lang: domain.LanguageGo, sitterLang: golang.GetLanguage(), collect: collectGo})
	Register(&astStrategy{lang: domain.LanguagePython, sitterLang: python.GetLanguage(), collect: collectPython})
	Register(&astStrategy{lang: domain.LanguageJavaScript, sitterLang: javascript.GetLanguage(), collect: collectJS})
	Register(&astStrategy{lang: domain.LanguageTypeScript, sitterLang: typescript.GetLanguage(), collect: collectJS})
}
