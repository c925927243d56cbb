package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the requested vehicle does not exist.
	ErrNotFound = errors.New("vehicle not found")

	// ErrValidation indicates a vehicle broke one or more business rules.
	ErrValidation = errors.New("vehicle is invalid")

	// ErrMalformedInput indicates a filter parameter has the wrong shape or range.
	ErrMalformedInput = errors.New("malformed input")
)

// Violation describes a single broken rule.
type Violation struct {
	Field   string
	Message string
}

// ValidationError reports every rule a vehicle violated.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Fields returns the names of the violated fields, in rule order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return fields
}

// MalformedInputError reports a filter parameter that could not be accepted.
type MalformedInputError struct {
	Param  string
	Value  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: %s=%q: %s", ErrMalformedInput, e.Param, e.Value, e.Reason)
}

func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }
