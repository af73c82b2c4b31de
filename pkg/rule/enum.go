package rule

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	fverrors "github.com/fieldvet/fieldvet/pkg/errors"
)

// fold normalizes a value to the canonical uppercase casing of the allowed
// set. A Caser is stateful, so one is created per call rather than shared
// across concurrent validations.
func fold(s string) string {
	return cases.Upper(language.Und).String(s)
}

// EnumEvaluator checks membership in a fixed value set. Values are folded to
// uppercase before comparison, matching the canonical casing of the allowed
// set. A value outside the set is invalid, never an error.
type EnumEvaluator struct {
	members map[string]struct{}
}

// Initialize reads the values parameter and builds the normalized member set.
func (e *EnumEvaluator) Initialize(params Params) error {
	values, err := params.Strings("values")
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fverrors.New(fverrors.ErrCodeBadParameter, "enum: values must not be empty")
	}
	e.members = make(map[string]struct{}, len(values))
	for _, v := range values {
		e.members[fold(v)] = struct{}{}
	}
	return nil
}

// IsValid reports whether the value, uppercase-folded, is a member of the
// allowed set. Lookup misses are ordinary false results.
func (e *EnumEvaluator) IsValid(value any) bool {
	s, ok := textOf(value)
	if !ok {
		return false
	}
	return e.lookup(s)
}

// lookup is the fallible membership check. It reports false for unmatched
// values instead of surfacing an error across the evaluator contract.
func (e *EnumEvaluator) lookup(value string) bool {
	_, ok := e.members[fold(value)]
	return ok
}

// DefaultMessageTemplate returns the enum-membership template.
func (e *EnumEvaluator) DefaultMessageTemplate() string {
	return "must be one of {values}"
}
