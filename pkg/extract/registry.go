// Package extract provides lightweight per-language function/method
// signature extraction for fallback test generation. Extraction is heuristic
// and best-effort: strategies are consulted in priority order, duplicates are
// suppressed, and output is capped to keep generated suites bounded.
package extract

import (
	"sort"
	"sync"

	"github.com/caseforge/core/pkg/domain"
)

// MaxSignaturesPerFile caps how many signatures a single file contributes.
const MaxSignaturesPerFile = 10

// DefaultPriority is the default strategy priority. Higher priority
// strategies are consulted first.
const DefaultPriority = 100

// Signature is one extracted function or method declaration.
type Signature struct {
	// Name is the declared identifier.
	Name string
	// IsExported reports whether the declaration looks externally visible
	// under the language's rules (capitalized, public, not underscore-prefixed).
	IsExported bool
}

// Strategy extracts signatures from source content for one or more languages.
type Strategy interface {
	// Name returns the strategy identifier (e.g. "regex", "tree-sitter").
	Name() string
	// Priority returns the strategy priority (higher = consulted first).
	Priority() int
	// Languages returns the languages this strategy supports.
	Languages() []domain.Language
	// Extract returns the signatures found in source. An empty result means
	// the strategy found nothing; the next strategy is consulted.
	Extract(source []byte) []Signature
}

// Registry manages registered strategies keyed by language.
type Registry struct {
	mu         sync.RWMutex
	strategies []Strategy
}

var defaultRegistry = &Registry{}

// NewRegistry creates an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns the global default registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a strategy to the default registry.
func Register(s Strategy) {
	defaultRegistry.Register(s)
}

// Register adds a strategy to the registry.
func (r *Registry) Register(s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies = append(r.strategies, s)
	sort.SliceStable(r.strategies, func(i, j int) bool {
		return r.strategies[i].Priority() > r.strategies[j].Priority()
	})
}

// ForLanguage returns all strategies supporting lang, highest priority first.
func (r *Registry) ForLanguage(lang domain.Language) []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Strategy
	for _, s := range r.strategies {
		for _, l := range s.Languages() {
			if l == lang {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// Signatures extracts signatures for lang from source using the registry's
// strategies in priority order; the first strategy producing any result
// wins. The result is deduplicated by name (first occurrence kept) and
// capped at MaxSignaturesPerFile. A language with no strategy, or source
// with no recognizable declarations, yields nil rather than an error.
func (r *Registry) Signatures(lang domain.Language, source []byte) []Signature {
	if len(source) == 0 {
		return nil
	}

	for _, s := range r.ForLanguage(lang) {
		if sigs := dedupe(s.Extract(source)); len(sigs) > 0 {
			return sigs
		}
	}
	return nil
}

// Signatures extracts from the default registry.
func Signatures(lang domain.Language, source []byte) []Signature {
	return defaultRegistry.Signatures(lang, source)
}

func dedupe(sigs []Signature) []Signature {
	if len(sigs) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(sigs))
	out := make([]Signature, 0, len(sigs))
	for _, sig := range sigs {
		if sig.Name == "" || seen[sig.Name] {
			continue
		}
		seen[sig.Name] = true
		out = append(out, sig)
		if len(out) == MaxSignaturesPerFile {
			break
		}
	}
	return out
}
