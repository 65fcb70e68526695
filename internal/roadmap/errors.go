// Package roadmap validates, imports and exports roadmap documents.
package roadmap

import "fmt"

// MissingFieldError is returned when a required top-level field is absent or empty
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("roadmap is missing required field %q", e.Field)
}

// InvalidShapeError is returned when the document does not have the roadmap structure
type InvalidShapeError struct {
	Message string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid roadmap: %s", e.Message)
}

// EmptyRoadmapError is returned when the technologies list has no entries
type EmptyRoadmapError struct{}

func (e *EmptyRoadmapError) Error() string {
	return "roadmap contains no technologies"
}

// ParseError represents input text that is not well-formed JSON
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
