// Package apierror defines the closed set of failure kinds the service can
// report and the single response envelope every one of them is rendered into.
// Nothing else (stack traces, driver errors, raw parse errors) may reach a
// response body.
package apierror

import (
	"fmt"
	"strings"
	"time"
)

// FieldError is one field name + localized message pair.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Response is the uniform error payload. Message and FieldErrors are mutually
// exclusive; whichever is unset is omitted from the JSON entirely.
type Response struct {
	Timestamp   time.Time    `json:"timestamp"`
	Status      int          `json:"status"`
	Error       string       `json:"error"`
	Message     string       `json:"message,omitempty"`
	FieldErrors []FieldError `json:"fieldErrors,omitempty"`
	Path        string       `json:"path"`
}

// ValidationError carries structural field validation failures, one entry per
// offending field, in declaration order. Messages are already localized.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d field validation errors", len(e.Fields))
}

// InvalidEnumError reports a value that does not match any enum token exactly.
type InvalidEnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid value %s for enum field %s", e.Value, e.Field)
}

// AllowedList is the comma-joined allowed token set, in declaration order.
func (e *InvalidEnumError) AllowedList() string {
	return strings.Join(e.Allowed, ", ")
}

// InvalidDateError reports a date field whose value does not parse as
// yyyy-MM-dd.
type InvalidDateError struct {
	Field string
}

func (e *InvalidDateError) Error() string {
	return "invalid date format for field " + e.Field
}

// MalformedBodyError covers request bodies that fail to parse for any reason
// other than a bad enum or date value. It is attributed to the synthetic
// field "requestBody".
type MalformedBodyError struct {
	Cause error
}

func (e *MalformedBodyError) Error() string {
	if e.Cause != nil {
		return "malformed request body: " + e.Cause.Error()
	}
	return "malformed request body"
}

func (e *MalformedBodyError) Unwrap() error { return e.Cause }

// NotFoundError covers unresolved references, absent records and empty search
// results. Key selects the catalog message; Args fill its placeholders.
type NotFoundError struct {
	Key  string
	Args map[string]interface{}
}

func (e *NotFoundError) Error() string { return "not found: " + e.Key }
