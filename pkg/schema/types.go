package schema

import (
	"github.com/fieldvet/fieldvet/pkg/rule"
)

// RuleDecl is one declared rule on a field: the rule kind, its parameter
// bag, and an optional message-template override. Immutable once built.
type RuleDecl struct {
	Kind   string      `json:"kind" yaml:"kind"`
	Params rule.Params `json:"params,omitempty" yaml:"params,omitempty"`

	// Message overrides the registry's default template when non-empty.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// WithMessage returns a copy of the declaration with a template override.
func (d RuleDecl) WithMessage(message string) RuleDecl {
	d.Message = message
	return d
}

// Field is one declared field and its ordered rule declarations.
type Field struct {
	Name  string     `json:"name" yaml:"name"`
	Rules []RuleDecl `json:"rules" yaml:"rules"`
}

// Definition is the declarative table for one record type.
type Definition struct {
	Name   string  `json:"name" yaml:"name"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Size declares a rune-count length bound, inclusive both ends.
func Size(min, max int) RuleDecl {
	return RuleDecl{Kind: rule.KindSize, Params: rule.Params{"min": min, "max": max}}
}

// Range declares a two-sided numeric bound, inclusive both ends.
func Range(min, max float64) RuleDecl {
	return RuleDecl{Kind: rule.KindRange, Params: rule.Params{"min": min, "max": max}}
}

// Min declares a lower numeric bound.
func Min(min float64) RuleDecl {
	return RuleDecl{Kind: rule.KindRange, Params: rule.Params{"min": min}}
}

// Max declares an upper numeric bound.
func Max(max float64) RuleDecl {
	return RuleDecl{Kind: rule.KindRange, Params: rule.Params{"max": max}}
}

// Pattern declares a full-string regular expression match.
func Pattern(expr string) RuleDecl {
	return RuleDecl{Kind: rule.KindPattern, Params: rule.Params{"pattern": expr}}
}

// OneOf declares enum membership over the given allowed values.
func OneOf(values ...string) RuleDecl {
	return RuleDecl{Kind: rule.KindEnum, Params: rule.Params{"values": values}}
}
