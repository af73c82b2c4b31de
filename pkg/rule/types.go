package rule

import (
	fverrors "github.com/fieldvet/fieldvet/pkg/errors"
)

// Evaluator is the contract implemented by every rule kind, built-in or
// custom. Instances are created per declaration and initialized once with
// that declaration's parameters before any IsValid call.
type Evaluator interface {
	// Initialize consumes the declaration's parameter bag. Parameter
	// problems are configuration errors and must be returned here, never
	// deferred to IsValid.
	Initialize(params Params) error

	// IsValid reports whether a non-null value satisfies the rule. It must
	// never panic; implementations convert internal faults to false.
	IsValid(value any) bool

	// DefaultMessageTemplate returns the message template used when a
	// declaration carries no override. Called after Initialize.
	DefaultMessageTemplate() string
}

// Factory creates a fresh, uninitialized Evaluator instance.
type Factory func() Evaluator

// Params is the parameter bag attached to a rule declaration.
type Params map[string]any

// Has reports whether a parameter is present.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Int returns an integer parameter. Whole-valued floats are accepted since
// YAML and JSON decoders may deliver numbers as float64.
func (p Params) Int(name string) (int, error) {
	raw, ok := p[name]
	if !ok {
		return 0, fverrors.Newf(fverrors.ErrCodeBadParameter, "missing required parameter %q", name)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fverrors.Newf(fverrors.ErrCodeBadParameter, "parameter %q: %v is not an integer", name, v)
		}
		return int(v), nil
	default:
		return 0, fverrors.Newf(fverrors.ErrCodeBadParameter, "parameter %q: expected integer, got %T", name, raw)
	}
}

// Float returns a numeric parameter as float64.
func (p Params) Float(name string) (float64, error) {
	raw, ok := p[name]
	if !ok {
		return 0, fverrors.Newf(fverrors.ErrCodeBadParameter, "missing required parameter %q", name)
	}
	switch v := raw.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fverrors.Newf(fverrors.ErrCodeBadParameter, "parameter %q: expected number, got %T", name, raw)
	}
}

// String returns a string parameter.
func (p Params) String(name string) (string, error) {
	raw, ok := p[name]
	if !ok {
		return "", fverrors.Newf(fverrors.ErrCodeBadParameter, "missing required parameter %q", name)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fverrors.Newf(fverrors.ErrCodeBadParameter, "parameter %q: expected string, got %T", name, raw)
	}
	return s, nil
}

// Strings returns a string-list parameter. YAML decoding delivers lists as
// []any, so both forms are accepted.
func (p Params) Strings(name string) ([]string, error) {
	raw, ok := p[name]
	if !ok {
		return nil, fverrors.Newf(fverrors.ErrCodeBadParameter, "missing required parameter %q", name)
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fverrors.Newf(fverrors.ErrCodeBadParameter, "parameter %q: expected string list, found %T element", name, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fverrors.Newf(fverrors.ErrCodeBadParameter, "parameter %q: expected string list, got %T", name, raw)
	}
}
