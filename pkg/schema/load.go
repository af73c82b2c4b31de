package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	fverrors "github.com/fieldvet/fieldvet/pkg/errors"
	"github.com/fieldvet/fieldvet/pkg/header"
)

// SchemaKind is the expected kind in a schema document envelope.
const SchemaKind = "ValidationSchema"

// Document is the serialized form of a schema file: a Kubernetes-style
// envelope wrapping a Definition.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec Definition `json:"spec" yaml:"spec"`
}

// Load reads and parses a schema definition from a YAML file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a schema document and validates its structure. Structural
// problems (wrong kind, missing names, duplicate fields) are configuration
// errors; rule parameters are only checked later, at metadata compile.
func Parse(data []byte) (*Definition, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fverrors.Wrap(fverrors.ErrCodeBadSchema, "parsing schema document", err)
	}

	if doc.Kind != SchemaKind {
		return nil, fverrors.Newf(fverrors.ErrCodeBadSchema, "unexpected document kind %q, want %q", doc.Kind, SchemaKind)
	}

	def := doc.Spec
	if err := Check(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// Check validates a definition's structure: a non-empty type name, named
// fields, no duplicate field names, and a kind on every rule declaration.
func Check(def *Definition) error {
	if def.Name == "" {
		return fverrors.New(fverrors.ErrCodeBadSchema, "definition name must not be empty")
	}

	seen := make(map[string]struct{}, len(def.Fields))
	for _, f := range def.Fields {
		if f.Name == "" {
			return fverrors.Newf(fverrors.ErrCodeBadSchema, "definition %q: field name must not be empty", def.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return fverrors.Newf(fverrors.ErrCodeBadSchema, "definition %q: duplicate field %q", def.Name, f.Name)
		}
		seen[f.Name] = struct{}{}

		for _, r := range f.Rules {
			if r.Kind == "" {
				return fverrors.Newf(fverrors.ErrCodeBadSchema, "definition %q: field %q has a rule with no kind", def.Name, f.Name)
			}
		}
	}
	return nil
}
