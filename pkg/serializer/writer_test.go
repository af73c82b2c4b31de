package serializer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tableThing struct {
	Name string `json:"name" yaml:"name"`
}

func (t tableThing) MarshalTable() ([]byte, error) {
	return []byte("NAME\n" + t.Name + "\n"), nil
}

func TestFormat_IsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.False(t, FormatTable.IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestMarshal(t *testing.T) {
	v := tableThing{Name: "x"}

	jsonOut, err := Marshal(v, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(jsonOut), `"name": "x"`)

	yamlOut, err := Marshal(v, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(yamlOut), "name: x")

	tableOut, err := Marshal(v, FormatTable)
	require.NoError(t, err)
	assert.Equal(t, "NAME\nx\n", string(tableOut))

	_, err = Marshal(v, Format("xml"))
	assert.Error(t, err)
}

func TestMarshal_TableFallsBackToYAML(t *testing.T) {
	out, err := Marshal(map[string]string{"a": "b"}, FormatTable)
	require.NoError(t, err)
	assert.Contains(t, string(out), "a: b")
}

func TestWriter_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	w := NewFileWriterOrStdout(FormatYAML, path)
	require.NoError(t, w.Serialize(tableThing{Name: "x"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: x")
}
