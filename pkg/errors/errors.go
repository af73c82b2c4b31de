/*
Copyright © 2025 Fieldvet Authors
SPDX-License-Identifier: Apache-2.0
*/

package errors

import "fmt"

// Error codes for configuration failures. Configuration failures are fatal
// at registry-setup or metadata-compile time and are never reported as
// per-record violations.
const (
	// ErrCodeUnknownRuleKind indicates a declaration references a rule kind
	// that was never registered.
	ErrCodeUnknownRuleKind = "UNKNOWN_RULE_KIND"

	// ErrCodeBadParameter indicates a rule declaration carries a missing or
	// malformed parameter (e.g. min > max, unparsable regexp).
	ErrCodeBadParameter = "BAD_PARAMETER"

	// ErrCodeBadTemplate indicates a message template contains a token that
	// does not resolve to any declared parameter.
	ErrCodeBadTemplate = "BAD_TEMPLATE"

	// ErrCodeBadSchema indicates a schema document is structurally invalid.
	ErrCodeBadSchema = "BAD_SCHEMA"

	// ErrCodeInternal indicates an unexpected internal state.
	ErrCodeInternal = "INTERNAL_ERROR"
)

// StructuredError is an error with a stable machine-readable code.
type StructuredError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *StructuredError) Unwrap() error {
	return e.Err
}

// New creates a StructuredError with the given code and message.
func New(code, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// Newf creates a StructuredError with a formatted message.
func Newf(code, format string, args ...any) *StructuredError {
	return &StructuredError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a StructuredError wrapping an underlying cause.
func Wrap(code, message string, err error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Err: err}
}
