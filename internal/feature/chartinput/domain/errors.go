// Package domain defines domain-level errors for the chartinput feature.
package domain

import (
	"errors"
	"sort"
	"strings"
)

// Field names used as keys in ValidationError. They match the JSON/query parameter names.
const (
	FieldSymbol     = "symbol"
	FieldChartType  = "chart_type"
	FieldTimeSeries = "time_series"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
)

// QueryFields returns the chart query fields in request order.
func QueryFields() []string {
	return []string{FieldSymbol, FieldChartType, FieldTimeSeries, FieldStartDate, FieldEndDate}
}

// Domain errors for chart input validation.
var (
	// ErrInvalidSymbol indicates that the symbol is not 1-7 uppercase letters.
	ErrInvalidSymbol = errors.New("symbol must be 1-7 uppercase letters")

	// ErrInvalidChartType indicates that the chart type is not 1 (bar) or 2 (line).
	ErrInvalidChartType = errors.New("chart type must be 1 or 2")

	// ErrInvalidTimeSeries indicates that the time series is not in 1-4.
	ErrInvalidTimeSeries = errors.New("time series must be between 1 and 4")

	// ErrInvalidStartDate indicates that the start date is not an existing YYYY-MM-DD date.
	ErrInvalidStartDate = errors.New("start date must be a valid YYYY-MM-DD date")

	// ErrInvalidEndDate indicates that the end date is not an existing YYYY-MM-DD date.
	ErrInvalidEndDate = errors.New("end date must be a valid YYYY-MM-DD date")

	// ErrDateRangeReversed indicates that the end date precedes the start date.
	ErrDateRangeReversed = errors.New("end date must not be before start date")

	// ErrUnknownSymbol indicates that the symbol is well-formed but not in the active symbol registry.
	ErrUnknownSymbol = errors.New("symbol is not an active registered symbol")
)

// ValidationError collects every rejected field of a chart query.
// errors.Is reports true for each sentinel error it contains.
type ValidationError struct {
	Fields map[string]error
}

// NewValidationError returns an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]error)}
}

// Add records err for field. The first error recorded for a field wins.
func (e *ValidationError) Add(field string, err error) {
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = err
}

// HasErrors reports whether any field was rejected.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Messages returns the field → message map used in API responses.
func (e *ValidationError) Messages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for f, err := range e.Fields {
		out[f] = err.Error()
	}
	return out
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.sortedFields() {
		parts = append(parts, f+": "+e.Fields[f].Error())
	}
	return "invalid chart query: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error {
	out := make([]error, 0, len(e.Fields))
	for _, f := range e.sortedFields() {
		out = append(out, e.Fields[f])
	}
	return out
}

func (e *ValidationError) sortedFields() []string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
