package apperror

import (
	"errors"
	"fmt"
)

// NotFoundError marks a missing student, report, category, attempt or session.
// Controllers map it to 404 via the NotFound() marker method.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found (id=%v)", e.Resource, e.ID)
}

func (e *NotFoundError) NotFound() {}

func NewNotFound(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError marks a malformed or semantically invalid request payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Validation() {}

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IntegrityError marks a state-machine violation, e.g. re-evaluating an
// already evaluated skill test attempt.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string { return e.Message }

func (e *IntegrityError) Conflict() {}

func NewIntegrity(message string) *IntegrityError {
	return &IntegrityError{Message: message}
}

// ExtractionError wraps a document text extraction failure.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string { return fmt.Sprintf("document extraction failed: %v", e.Err) }
func (e *ExtractionError) Unwrap() error { return e.Err }

func NewExtraction(err error) *ExtractionError { return &ExtractionError{Err: err} }

// FetchError wraps an external profile fetch failure.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("profile fetch failed: %v", e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

func NewFetch(err error) *FetchError { return &FetchError{Err: err} }

// AnalysisError wraps a failed or unparsable AI analysis call.
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string { return fmt.Sprintf("ai analysis failed: %v", e.Err) }
func (e *AnalysisError) Unwrap() error { return e.Err }

func NewAnalysis(err error) *AnalysisError { return &AnalysisError{Err: err} }

func IsNotFound(err error) bool {
	var marker interface{ NotFound() }
	return errors.As(err, &marker)
}

func IsValidation(err error) bool {
	var marker interface{ Validation() }
	return errors.As(err, &marker)
}

func IsConflict(err error) bool {
	var marker interface{ Conflict() }
	return errors.As(err, &marker)
}
