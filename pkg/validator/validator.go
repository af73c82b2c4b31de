/*
Copyright © 2025 Fieldvet Authors
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/fieldvet/fieldvet/pkg/rule"
	"github.com/fieldvet/fieldvet/pkg/schema"
)

// Validator evaluates schema definitions against record instances. A single
// Validator is safe for unrestricted concurrent use; each Validate call is a
// pure function of the compiled metadata and the record snapshot. The only
// shared state is the metadata cache.
type Validator struct {
	registry *rule.Registry

	cache    sync.Map // definition name -> *Metadata
	group    singleflight.Group
	compiles atomic.Uint64
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithRegistry returns an Option that sets the rule registry. Use it to add
// custom rule kinds on top of (or instead of) the built-ins.
func WithRegistry(registry *rule.Registry) Option {
	return func(v *Validator) {
		v.registry = registry
	}
}

// New creates a new Validator with the provided options. Without options it
// uses the built-in rule registry.
func New(opts ...Option) *Validator {
	v := &Validator{registry: rule.Builtin()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate evaluates every declared rule against the record and returns the
// aggregated result. The error return is non-nil only for configuration
// errors surfaced on first use of a definition (or context cancellation);
// for well-formed metadata Validate always returns a result, possibly with
// violations, and never mutates the record.
func (v *Validator) Validate(ctx context.Context, def *schema.Definition, record Record) (*Result, error) {
	start := time.Now()

	md, err := v.metadataFor(def)
	if err != nil {
		return nil, err
	}

	result := NewResult(md.TypeName)

	for _, field := range md.fields {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result.Summary.Fields++

		value, ok := record.Value(field.name)
		if !ok {
			// Null-skip policy: an absent value satisfies every rule on the
			// field, whatever the kind. No evaluator runs.
			continue
		}

		for _, cr := range field.rules {
			result.Summary.RulesEvaluated++

			if safeIsValid(cr.evaluator, value) {
				continue
			}
			result.Violations = append(result.Violations, Violation{
				PropertyPath: field.name,
				Message:      cr.message,
				Value:        value,
			})
			violationsTotal.WithLabelValues(cr.kind).Inc()
		}
	}

	result.Summary.Violations = len(result.Violations)
	result.Summary.Duration = time.Since(start)
	if result.Valid() {
		result.Summary.Status = StatusPass
	} else {
		result.Summary.Status = StatusFail
	}

	validationDuration.Observe(result.Summary.Duration.Seconds())
	validationsTotal.WithLabelValues(string(result.Summary.Status)).Inc()

	slog.Debug("validation completed",
		"type", md.TypeName,
		"fields", result.Summary.Fields,
		"rules", result.Summary.RulesEvaluated,
		"violations", result.Summary.Violations,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

// Metadata returns the compiled metadata for a definition, building and
// caching it on first use.
func (v *Validator) Metadata(def *schema.Definition) (*Metadata, error) {
	return v.metadataFor(def)
}

// CompileCount reports how many metadata compilations this Validator has
// performed. Racing first uses of one definition still compile it once.
func (v *Validator) CompileCount() uint64 {
	return v.compiles.Load()
}

// metadataFor returns cached metadata for the definition, compiling it at
// most once even under concurrent first use. A failed compile is not cached:
// every use of a broken definition keeps failing loudly.
func (v *Validator) metadataFor(def *schema.Definition) (*Metadata, error) {
	if cached, ok := v.cache.Load(def.Name); ok {
		return cached.(*Metadata), nil
	}

	built, err, _ := v.group.Do(def.Name, func() (any, error) {
		if cached, ok := v.cache.Load(def.Name); ok {
			return cached, nil
		}

		md, err := Compile(def, v.registry)
		if err != nil {
			return nil, err
		}

		v.compiles.Add(1)
		metadataCompilesTotal.Inc()
		v.cache.Store(def.Name, md)
		return md, nil
	})
	if err != nil {
		return nil, err
	}
	return built.(*Metadata), nil
}

// safeIsValid invokes an evaluator behind a panic guard. A panicking
// evaluator is an internal fault of that rule and normalizes to false; it
// never propagates to the engine or the caller.
func safeIsValid(evaluator rule.Evaluator, value any) (valid bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("evaluator panicked, treating value as invalid", "panic", r)
			valid = false
		}
	}()
	return evaluator.IsValid(value)
}
