package rule

import (
	"fmt"
	"regexp"

	fverrors "github.com/fieldvet/fieldvet/pkg/errors"
)

// PatternEvaluator checks that a text value matches a regular expression in
// full. The expression is compiled once at initialization.
type PatternEvaluator struct {
	re *regexp.Regexp
}

// Initialize compiles the pattern parameter. The expression is anchored so a
// partial match never passes.
func (e *PatternEvaluator) Initialize(params Params) error {
	expr, err := params.String("pattern")
	if err != nil {
		return err
	}
	re, err := regexp.Compile(fmt.Sprintf(`\A(?:%s)\z`, expr))
	if err != nil {
		return fverrors.Wrap(fverrors.ErrCodeBadParameter, fmt.Sprintf("pattern: compiling %q", expr), err)
	}
	e.re = re
	return nil
}

// IsValid reports whether the full value matches the pattern.
func (e *PatternEvaluator) IsValid(value any) bool {
	s, ok := textOf(value)
	if !ok {
		return false
	}
	return e.re.MatchString(s)
}

// DefaultMessageTemplate returns the pattern template.
func (e *PatternEvaluator) DefaultMessageTemplate() string {
	return "must match pattern {pattern}"
}
