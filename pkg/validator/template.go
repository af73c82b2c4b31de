package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	fverrors "github.com/fieldvet/fieldvet/pkg/errors"
	"github.com/fieldvet/fieldvet/pkg/rule"
)

var tokenPattern = regexp.MustCompile(`\{([A-Za-z][A-Za-z0-9_]*)\}`)

// renderTemplate substitutes each {param} token with the stringified value
// of that parameter. A token with no matching parameter is a configuration
// error; a partially rendered message is never returned.
func renderTemplate(template string, params rule.Params) (string, error) {
	var missing []string
	rendered := tokenPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1 : len(token)-1]
		raw, ok := params[name]
		if !ok {
			missing = append(missing, name)
			return token
		}
		return stringify(raw)
	})

	if len(missing) > 0 {
		return "", fverrors.Newf(fverrors.ErrCodeBadTemplate,
			"template %q references undeclared parameters %v", template, missing)
	}
	return rendered, nil
}

// stringify renders a parameter value for message substitution. Lists join
// with ", "; floats drop trailing zeros so integral bounds read naturally.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ", ")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
