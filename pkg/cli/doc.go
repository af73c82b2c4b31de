/*
Copyright © 2025 Fieldvet Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the fieldvet tool.
//
// # Overview
//
// The fieldvet CLI is a thin demonstration surface over the validation
// engine: it loads a schema definition and a record document from files,
// validates the record, and serializes the resulting report. The core
// packages carry no CLI, file, or network coupling.
//
// # Commands
//
// validate - validate a record against a schema:
//
//	fieldvet validate --schema form.yaml --record record.yaml
//	fieldvet validate -s form.yaml -r record.yaml --format table
//	fieldvet validate -s form.yaml -r record.yaml --fail-on-violation
//
// The record document is a YAML mapping of field name to value. Use
// --fail-on-violation for CI pipelines (non-zero exit when the record is
// invalid). Configuration errors (unknown rule kinds, malformed
// parameters) always exit non-zero.
//
// lint - check that a schema compiles:
//
//	fieldvet lint --schema form.yaml
//
// Compiles the schema against the built-in rule registry and reports
// configuration errors without validating any record.
//
// # Global Flags
//
//	--format   Output format: yaml, json, table (default: yaml)
//	--output   Output file path (default: stdout)
//	--debug    Enable debug logging
//
// # Exit Codes
//
//	0  Success (record valid, or violations reported without --fail-on-violation)
//	1  Configuration error, I/O error, or violations with --fail-on-violation
package cli
