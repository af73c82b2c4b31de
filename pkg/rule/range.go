package rule

import (
	"reflect"

	fverrors "github.com/fieldvet/fieldvet/pkg/errors"
)

// RangeEvaluator checks that an ordered numeric value lies within inclusive
// bounds. Either bound may be omitted for a one-sided range; at least one
// must be declared.
type RangeEvaluator struct {
	hasMin bool
	hasMax bool
	min    float64
	max    float64
}

// Initialize reads the min and/or max parameters and validates their ordering.
func (e *RangeEvaluator) Initialize(params Params) error {
	if params.Has("min") {
		min, err := params.Float("min")
		if err != nil {
			return err
		}
		e.min = min
		e.hasMin = true
	}
	if params.Has("max") {
		max, err := params.Float("max")
		if err != nil {
			return err
		}
		e.max = max
		e.hasMax = true
	}
	if !e.hasMin && !e.hasMax {
		return fverrors.New(fverrors.ErrCodeBadParameter, "range: at least one of min or max is required")
	}
	if e.hasMin && e.hasMax && e.min > e.max {
		return fverrors.Newf(fverrors.ErrCodeBadParameter, "range: min %v must not exceed max %v", e.min, e.max)
	}
	return nil
}

// IsValid reports whether the value is numeric and within bounds.
func (e *RangeEvaluator) IsValid(value any) bool {
	n, ok := numberOf(value)
	if !ok {
		return false
	}
	if e.hasMin && n < e.min {
		return false
	}
	if e.hasMax && n > e.max {
		return false
	}
	return true
}

// DefaultMessageTemplate depends on which bounds were declared, so one-sided
// ranges never reference an undeclared parameter.
func (e *RangeEvaluator) DefaultMessageTemplate() string {
	switch {
	case e.hasMin && e.hasMax:
		return "must be between {min} and {max}"
	case e.hasMin:
		return "must be at least {min}"
	default:
		return "must be at most {max}"
	}
}

// numberOf coerces the supported numeric kinds to float64.
func numberOf(value any) (float64, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
