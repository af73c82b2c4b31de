package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fverrors "github.com/fieldvet/fieldvet/pkg/errors"
	"github.com/fieldvet/fieldvet/pkg/rule"
)

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   rule.Params
		want     string
	}{
		{
			name:     "integer parameters",
			template: "size must be between {min} and {max}",
			params:   rule.Params{"min": 1, "max": 20},
			want:     "size must be between 1 and 20",
		},
		{
			name:     "integral float renders without decimals",
			template: "must be at most {max}",
			params:   rule.Params{"max": 150.0},
			want:     "must be at most 150",
		},
		{
			name:     "fractional float keeps precision",
			template: "must be at least {min}",
			params:   rule.Params{"min": 0.5},
			want:     "must be at least 0.5",
		},
		{
			name:     "string list joins with comma",
			template: "must be one of {values}",
			params:   rule.Params{"values": []string{"RED", "BLUE", "GREEN"}},
			want:     "must be one of RED, BLUE, GREEN",
		},
		{
			name:     "any list joins with comma",
			template: "must be one of {values}",
			params:   rule.Params{"values": []any{"RED", "BLUE"}},
			want:     "must be one of RED, BLUE",
		},
		{
			name:     "no tokens passes through",
			template: "must be a valid postal code (e.g. 123-4567)",
			params:   rule.Params{"pattern": `^\d{3}-\d{4}$`},
			want:     "must be a valid postal code (e.g. 123-4567)",
		},
		{
			name:     "repeated token",
			template: "{min} to {max}, at least {min}",
			params:   rule.Params{"min": 2, "max": 4},
			want:     "2 to 4, at least 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderTemplate(tt.template, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderTemplate_UnresolvedTokenIsConfigurationError(t *testing.T) {
	_, err := renderTemplate("must be under {limit}", rule.Params{"max": 10})
	require.Error(t, err)

	var se *fverrors.StructuredError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, fverrors.ErrCodeBadTemplate, se.Code)
	assert.Contains(t, err.Error(), "limit")
}
