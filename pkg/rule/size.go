package rule

import (
	"fmt"
	"unicode/utf8"

	fverrors "github.com/fieldvet/fieldvet/pkg/errors"
)

// SizeEvaluator checks that a text value's length in runes lies within
// inclusive bounds.
type SizeEvaluator struct {
	min int
	max int
}

// Initialize reads the min and max parameters and validates their ordering.
func (e *SizeEvaluator) Initialize(params Params) error {
	min, err := params.Int("min")
	if err != nil {
		return err
	}
	max, err := params.Int("max")
	if err != nil {
		return err
	}
	if min < 0 {
		return fverrors.Newf(fverrors.ErrCodeBadParameter, "size: min %d must not be negative", min)
	}
	if min > max {
		return fverrors.Newf(fverrors.ErrCodeBadParameter, "size: min %d must not exceed max %d", min, max)
	}
	e.min = min
	e.max = max
	return nil
}

// IsValid reports whether the value's rune count is within bounds.
// Non-text values fail the check rather than erroring out.
func (e *SizeEvaluator) IsValid(value any) bool {
	s, ok := textOf(value)
	if !ok {
		return false
	}
	n := utf8.RuneCountInString(s)
	return n >= e.min && n <= e.max
}

// DefaultMessageTemplate returns the size template.
func (e *SizeEvaluator) DefaultMessageTemplate() string {
	return "size must be between {min} and {max}"
}

// textOf extracts a string representation for length and pattern checks.
func textOf(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}
