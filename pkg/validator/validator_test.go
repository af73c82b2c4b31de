package validator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fverrors "github.com/fieldvet/fieldvet/pkg/errors"
	"github.com/fieldvet/fieldvet/pkg/rule"
	"github.com/fieldvet/fieldvet/pkg/schema"
)

// SampleForm mirrors the demonstration record the schema in
// metadata_test.go describes.
type SampleForm struct {
	Name       string
	Age        *int
	PostalCode string
	Color      *string
}

func intp(v int) *int { return &v }

func validForm() map[string]any {
	return map[string]any{
		"name":       "name",
		"age":        20,
		"postalCode": "123-4567",
		"color":      "RED",
	}
}

func TestValidate_FullyValidRecord(t *testing.T) {
	v := New()

	result, err := v.Validate(context.Background(), sampleFormDef(), Map(validForm()))
	require.NoError(t, err)

	assert.True(t, result.Valid())
	assert.Empty(t, result.Violations)
	assert.Equal(t, StatusPass, result.Summary.Status)
	assert.Equal(t, 4, result.Summary.Fields)
}

func TestValidate_NameSizeBounds(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		violations int
	}{
		{name: "empty name fails", value: "", violations: 1},
		{name: "one rune passes", value: "a", violations: 0},
		{name: "twenty runes passes", value: strings.Repeat("a", 20), violations: 0},
		{name: "twentyone runes fails", value: strings.Repeat("a", 21), violations: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			record := validForm()
			record["name"] = tt.value

			result, err := v.Validate(context.Background(), sampleFormDef(), Map(record))
			require.NoError(t, err)
			require.Len(t, result.Violations, tt.violations)

			if tt.violations > 0 {
				assert.Equal(t, "name", result.Violations[0].PropertyPath)
				assert.Equal(t, "size must be between 1 and 20", result.Violations[0].Message)
			}
		})
	}
}

func TestValidate_EnumMembership(t *testing.T) {
	v := New()

	record := validForm()
	record["color"] = "ORANGE"

	result, err := v.Validate(context.Background(), sampleFormDef(), Map(record))
	require.NoError(t, err)

	require.Len(t, result.Violations, 1)
	assert.Equal(t, "color", result.Violations[0].PropertyPath)
	assert.Equal(t, "must be one of RED, BLUE, GREEN", result.Violations[0].Message)
	assert.Equal(t, "ORANGE", result.Violations[0].Value)
}

func TestValidate_NullSkipPolicy(t *testing.T) {
	v := New()

	// Absence is never a violation, whatever the rule kinds on the field.
	record := map[string]any{
		"name":       "name",
		"age":        nil,
		"postalCode": "123-4567",
		"color":      nil,
	}

	result, err := v.Validate(context.Background(), sampleFormDef(), Map(record))
	require.NoError(t, err)
	assert.True(t, result.Valid())
}

func TestValidate_StructRecord(t *testing.T) {
	v := New()

	form := SampleForm{
		Name:       "name",
		Age:        intp(200),
		PostalCode: "1234567",
		Color:      nil, // null color is valid
	}

	result, err := v.Validate(context.Background(), sampleFormDef(), Struct(&form))
	require.NoError(t, err)

	assert.ElementsMatch(t, []Violation{
		{PropertyPath: "age", Message: "must be at most 150", Value: 200},
		{PropertyPath: "postalCode", Message: "must be a valid postal code (e.g. 123-4567)", Value: "1234567"},
	}, result.Violations)
}

func TestValidate_MultipleRulesFailIndependently(t *testing.T) {
	// Two one-sided bounds that cannot both hold: every value yields one
	// violation per failing rule, not a merged one.
	def := &schema.Definition{
		Name: "Impossible",
		Fields: []schema.Field{
			{Name: "n", Rules: []schema.RuleDecl{schema.Min(10), schema.Max(5)}},
		},
	}

	v := New()
	result, err := v.Validate(context.Background(), def, Map(map[string]any{"n": 7}))
	require.NoError(t, err)

	assert.ElementsMatch(t, []Violation{
		{PropertyPath: "n", Message: "must be at least 10", Value: 7},
		{PropertyPath: "n", Message: "must be at most 5", Value: 7},
	}, result.Violations)
}

func TestValidate_IsIdempotent(t *testing.T) {
	v := New()
	record := validForm()
	record["name"] = ""
	record["color"] = "ORANGE"

	first, err := v.Validate(context.Background(), sampleFormDef(), Map(record))
	require.NoError(t, err)
	second, err := v.Validate(context.Background(), sampleFormDef(), Map(record))
	require.NoError(t, err)

	assert.Equal(t, first.Violations, second.Violations)
	assert.Equal(t, first.Summary.Status, second.Summary.Status)
}

func TestValidate_ConfigurationErrorIsNotAViolation(t *testing.T) {
	def := &schema.Definition{
		Name: "Broken",
		Fields: []schema.Field{
			{Name: "a", Rules: []schema.RuleDecl{{Kind: "no-such-kind"}}},
		},
	}

	v := New()
	result, err := v.Validate(context.Background(), def, Map(map[string]any{"a": "x"}))
	require.Error(t, err)
	assert.Nil(t, result)

	var se *fverrors.StructuredError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, fverrors.ErrCodeUnknownRuleKind, se.Code)
}

type panickyEvaluator struct{}

func (panickyEvaluator) Initialize(rule.Params) error { return nil }
func (panickyEvaluator) IsValid(any) bool             { panic("hostile evaluator") }
func (panickyEvaluator) DefaultMessageTemplate() string {
	return "rejected by custom rule"
}

func TestValidate_PanickingEvaluatorBecomesViolation(t *testing.T) {
	registry := rule.Builtin()
	registry.Register("hostile", func() rule.Evaluator { return panickyEvaluator{} }, "")

	def := &schema.Definition{
		Name: "Hostile",
		Fields: []schema.Field{
			{Name: "a", Rules: []schema.RuleDecl{{Kind: "hostile"}}},
		},
	}

	v := New(WithRegistry(registry))
	result, err := v.Validate(context.Background(), def, Map(map[string]any{"a": "x"}))
	require.NoError(t, err)

	require.Len(t, result.Violations, 1)
	assert.Equal(t, "rejected by custom rule", result.Violations[0].Message)
}

func TestValidate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := New()
	result, err := v.Validate(ctx, sampleFormDef(), Map(validForm()))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMetadata_ConcurrentFirstUseCompilesOnce(t *testing.T) {
	v := New()
	def := sampleFormDef()

	const n = 50
	metadatas := make([]*Metadata, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			metadatas[i], errs[i] = v.Metadata(def)
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, metadatas[i])
	}

	first := metadatas[0]
	for i := 1; i < n; i++ {
		assert.Same(t, first, metadatas[i], "all callers must observe one immutable metadata")
	}
	assert.Equal(t, uint64(1), v.CompileCount())
}

func TestValidate_DoesNotMutateRecord(t *testing.T) {
	v := New()
	record := map[string]any{
		"name":       "",
		"age":        300,
		"postalCode": "nope",
		"color":      "ORANGE",
	}
	snapshot := map[string]any{
		"name":       "",
		"age":        300,
		"postalCode": "nope",
		"color":      "ORANGE",
	}

	_, err := v.Validate(context.Background(), sampleFormDef(), Map(record))
	require.NoError(t, err)
	assert.Equal(t, snapshot, record)
}
