package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRecord(t *testing.T) {
	r := Map(map[string]any{"name": "a", "color": nil})

	v, ok := r.Value("name")
	require.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = r.Value("color")
	assert.False(t, ok, "nil value is absent")

	_, ok = r.Value("missing")
	assert.False(t, ok, "missing key is absent")
}

func TestStructRecord(t *testing.T) {
	form := SampleForm{Name: "a", Age: intp(7), PostalCode: "123-4567"}
	r := Struct(&form)

	v, ok := r.Value("name")
	require.True(t, ok, "schema field name matches exported struct field")
	assert.Equal(t, "a", v)

	v, ok = r.Value("postalCode")
	require.True(t, ok)
	assert.Equal(t, "123-4567", v)

	v, ok = r.Value("age")
	require.True(t, ok)
	assert.Equal(t, 7, v, "pointer values dereference")

	_, ok = r.Value("color")
	assert.False(t, ok, "nil pointer is absent")

	_, ok = r.Value("unknown")
	assert.False(t, ok)
}

func TestStructRecord_NonStructValues(t *testing.T) {
	_, ok := Struct(42).Value("anything")
	assert.False(t, ok)

	var form *SampleForm
	_, ok = Struct(form).Value("name")
	assert.False(t, ok, "nil struct pointer has no values")
}
