package validator

import (
	"bytes"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fieldvet/fieldvet/pkg/header"
)

const (
	// APIVersion is the API version for validation reports.
	APIVersion = "validationreport.fieldvet.io/v1"

	// Kind is the kind for validation reports.
	Kind = "ValidationReport"
)

// Status is the overall outcome of one validation run.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// Violation records one failed rule evaluation: the field it refers to and
// the fully rendered message. The offending value is carried for reporting.
type Violation struct {
	PropertyPath string `json:"propertyPath" yaml:"propertyPath"`
	Message      string `json:"message" yaml:"message"`
	Value        any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// Summary aggregates counts for one validation run.
type Summary struct {
	Fields         int           `json:"fields" yaml:"fields"`
	RulesEvaluated int           `json:"rulesEvaluated" yaml:"rulesEvaluated"`
	Violations     int           `json:"violations" yaml:"violations"`
	Duration       time.Duration `json:"duration" yaml:"duration"`
	Status         Status        `json:"status" yaml:"status"`
}

// Result is the outcome of validating one record. An empty Violations list
// means the record is fully valid. Violations appear in field declaration
// order; the order carries no meaning and callers should compare results as
// multisets.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	Type       string      `json:"type" yaml:"type"`
	Violations []Violation `json:"violations" yaml:"violations"`
	Summary    Summary     `json:"summary" yaml:"summary"`
}

// NewResult creates an empty result for the given record type.
func NewResult(typeName string) *Result {
	r := &Result{Type: typeName, Violations: []Violation{}}
	r.Set(Kind)
	return r
}

// Valid reports whether the run produced no violations.
func (r *Result) Valid() bool {
	return len(r.Violations) == 0
}

// MarshalTable renders the result as a human-readable table, one violation
// per row, for terminal output.
func (r *Result) MarshalTable() ([]byte, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "TYPE\tSTATUS\tFIELDS\tRULES\tVIOLATIONS\n")
	fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n\n",
		r.Type, r.Summary.Status, r.Summary.Fields, r.Summary.RulesEvaluated, r.Summary.Violations)

	if len(r.Violations) > 0 {
		fmt.Fprintf(w, "PROPERTY\tMESSAGE\tVALUE\n")
		for _, v := range r.Violations {
			fmt.Fprintf(w, "%s\t%s\t%v\n", v.PropertyPath, v.Message, v.Value)
		}
	}

	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
