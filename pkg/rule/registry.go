package rule

import (
	"sort"

	"github.com/agnivade/levenshtein"

	fverrors "github.com/fieldvet/fieldvet/pkg/errors"
)

// Canonical identifiers for the built-in rule kinds.
const (
	KindSize    = "size"
	KindRange   = "range"
	KindPattern = "pattern"
	KindEnum    = "enum"
)

// maxSuggestionDistance bounds how far an unknown kind may be from a
// registered one before the error stops suggesting it.
const maxSuggestionDistance = 2

type entry struct {
	factory  Factory
	template string
}

// Registry maps rule-kind identifiers to evaluator factories and default
// message templates. Registration happens at process start; the registry is
// treated as immutable afterwards, so the read path takes no locks.
type Registry struct {
	entries map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Builtin returns a registry preloaded with the built-in rule kinds.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(KindSize, func() Evaluator { return &SizeEvaluator{} }, "")
	r.Register(KindRange, func() Evaluator { return &RangeEvaluator{} }, "")
	r.Register(KindPattern, func() Evaluator { return &PatternEvaluator{} }, "")
	r.Register(KindEnum, func() Evaluator { return &EnumEvaluator{} }, "")
	return r
}

// Register adds a rule kind. An empty defaultTemplate defers to the
// evaluator's own DefaultMessageTemplate. Registering a kind twice replaces
// the earlier entry; call this only during startup wiring.
func (r *Registry) Register(kind string, factory Factory, defaultTemplate string) {
	r.entries[kind] = entry{factory: factory, template: defaultTemplate}
}

// Resolve looks up a rule kind, returning its factory and the registry-level
// default template (may be empty). An unknown kind is a configuration error
// and includes a nearest-match suggestion when one is close enough.
func (r *Registry) Resolve(kind string) (Factory, string, error) {
	e, ok := r.entries[kind]
	if !ok {
		if suggestion := r.nearestKind(kind); suggestion != "" {
			return nil, "", fverrors.Newf(fverrors.ErrCodeUnknownRuleKind,
				"unknown rule kind %q (did you mean %q?): registered kinds are %v", kind, suggestion, r.Kinds())
		}
		return nil, "", fverrors.Newf(fverrors.ErrCodeUnknownRuleKind,
			"unknown rule kind %q: registered kinds are %v", kind, r.Kinds())
	}
	return e.factory, e.template, nil
}

// Kinds returns the registered kind identifiers in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.entries))
	for kind := range r.entries {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// nearestKind returns the registered kind closest to the given identifier,
// or "" when nothing is within maxSuggestionDistance.
func (r *Registry) nearestKind(kind string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range r.Kinds() {
		if d := levenshtein.ComputeDistance(kind, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}
