package serializer

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Serializer writes a value to an output destination in a chosen format.
type Serializer interface {
	Serialize(v any) error
}

// TableMarshaler is implemented by types that can render themselves as a
// human-readable table. Other types fall back to YAML when the table format
// is requested.
type TableMarshaler interface {
	MarshalTable() ([]byte, error)
}

// Writer serializes values to a file, or to stdout when the path is empty
// or the stdout URI.
type Writer struct {
	format Format
	path   string
}

// NewFileWriterOrStdout creates a Writer for the given format and output
// path. An empty path or "-" writes to stdout.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	return &Writer{format: format, path: path}
}

// Serialize encodes the value and writes it to the configured destination.
func (w *Writer) Serialize(v any) error {
	data, err := Marshal(v, w.format)
	if err != nil {
		return err
	}

	if w.path == "" || w.path == StdoutURI {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", w.path, err)
	}
	return nil
}

// Marshal encodes a value in the given format.
func Marshal(v any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to serialize to json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return data, nil
	case FormatTable:
		if tm, ok := v.(TableMarshaler); ok {
			return tm.MarshalTable()
		}
		return Marshal(v, FormatYAML)
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}
