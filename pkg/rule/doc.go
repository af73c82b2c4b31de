// Package rule defines the rule-evaluator contract, the rule registry, and
// the built-in rule kinds.
//
// # Overview
//
// A rule kind pairs an identifier (e.g. "size") with an evaluator
// implementation and a default message template. Evaluators are created per
// declaration: the registry hands out a fresh instance, Initialize consumes
// the declaration's parameter bag, and IsValid is then a pure boolean check
// over non-null field values.
//
// # Contract
//
// Initialize may fail loudly: missing or malformed parameters (min > max, an
// unparsable regular expression, an empty enum value set) are configuration
// errors raised at metadata-compile time. IsValid must never fail loudly:
// any internal fault normalizes to false and becomes a violation.
//
// # Built-in Kinds
//
//	size    - rune-count length bounds for text values (min, max; inclusive)
//	range   - numeric bounds (min and/or max; inclusive)
//	pattern - full-string regular expression match (pattern)
//	enum    - membership in a fixed value set after uppercase folding (values)
//
// Custom kinds implement Evaluator and are registered alongside the
// built-ins before the first validation.
package rule
