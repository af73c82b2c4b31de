/*
Copyright © 2025 Fieldvet Authors
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"

	fverrors "github.com/fieldvet/fieldvet/pkg/errors"
	"github.com/fieldvet/fieldvet/pkg/rule"
	"github.com/fieldvet/fieldvet/pkg/schema"
)

// Metadata is the compiled form of one definition: per field, the
// initialized evaluators and fully rendered messages, in declaration order.
// Metadata is immutable after Compile and shared across validations.
type Metadata struct {
	TypeName string

	fields []compiledField
}

type compiledField struct {
	name  string
	rules []compiledRule
}

type compiledRule struct {
	kind      string
	evaluator rule.Evaluator
	message   string
}

// Fields returns the declared field names in declaration order.
func (m *Metadata) Fields() []string {
	names := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		names = append(names, f.name)
	}
	return names
}

// Compile builds metadata from a definition against a registry. All
// configuration errors surface here: unknown rule kinds, malformed
// parameters, and message templates that reference undeclared parameters.
// Compile never inspects field values and is pure; compiling the same
// definition twice yields equivalent metadata.
func Compile(def *schema.Definition, registry *rule.Registry) (*Metadata, error) {
	if err := schema.Check(def); err != nil {
		return nil, err
	}

	md := &Metadata{TypeName: def.Name, fields: make([]compiledField, 0, len(def.Fields))}

	for _, f := range def.Fields {
		cf := compiledField{name: f.Name, rules: make([]compiledRule, 0, len(f.Rules))}

		for _, decl := range f.Rules {
			cr, err := compileRule(decl, registry)
			if err != nil {
				return nil, fmt.Errorf("compiling %q field %q: %w", def.Name, f.Name, err)
			}
			cf.rules = append(cf.rules, cr)
		}
		md.fields = append(md.fields, cf)
	}

	return md, nil
}

// compileRule resolves the evaluator, initializes it with the declaration's
// parameters, and renders the message once. Each rule renders only from its
// own parameter bag; parameters are never merged across rules.
func compileRule(decl schema.RuleDecl, registry *rule.Registry) (compiledRule, error) {
	factory, registryTemplate, err := registry.Resolve(decl.Kind)
	if err != nil {
		return compiledRule{}, err
	}

	evaluator := factory()
	if err := evaluator.Initialize(decl.Params); err != nil {
		return compiledRule{}, fmt.Errorf("rule %q: %w", decl.Kind, err)
	}

	template := decl.Message
	if template == "" {
		template = registryTemplate
	}
	if template == "" {
		template = evaluator.DefaultMessageTemplate()
	}

	message, err := renderTemplate(template, decl.Params)
	if err != nil {
		return compiledRule{}, fmt.Errorf("rule %q: %w", decl.Kind, err)
	}
	if message == "" {
		return compiledRule{}, fverrors.Newf(fverrors.ErrCodeBadTemplate,
			"rule %q: rendered message must not be empty", decl.Kind)
	}

	return compiledRule{kind: decl.Kind, evaluator: evaluator, message: message}, nil
}
