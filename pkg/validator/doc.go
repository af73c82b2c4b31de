/*
Copyright © 2025 Fieldvet Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package validator evaluates declared field rules against record instances.
//
// # Overview
//
// The validator compiles a schema definition into immutable type metadata
// (initialized evaluators plus fully rendered messages), memoizes it per
// type, and walks a record field by field evaluating every declared rule.
// Failed rules become violations; the aggregated result is returned to the
// caller, never raised.
//
// # Usage
//
//	v := validator.New()
//	result, err := v.Validate(ctx, def, validator.Map(map[string]any{
//	    "name":  "",
//	    "color": "ORANGE",
//	}))
//	if err != nil {
//	    log.Fatal(err) // configuration error, not a record problem
//	}
//	for _, viol := range result.Violations {
//	    fmt.Printf("%s: %s\n", viol.PropertyPath, viol.Message)
//	}
//
// # Null Handling
//
// An absent or nil field value satisfies every rule declared on that field,
// whatever the rule kind. No built-in kind expresses a presence requirement;
// absence is never itself a violation.
//
// # Error Handling
//
// Two disjoint failure classes exist. Configuration errors (unknown rule
// kind, malformed parameters, unresolved template tokens) surface as the
// error return of Validate on first use of a definition and are never
// reported as violations. Evaluation always terminates in a boolean: a
// panicking evaluator is recovered at the evaluator boundary and treated as
// a failed check.
package validator
