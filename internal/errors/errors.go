// Package errors defines the typed failure kinds surfaced by the pipeline.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind categorizes pipeline failures.
type ErrorKind string

const (
	// KindInvalidInput marks a malformed or zero-sized input raster.
	KindInvalidInput ErrorKind = "invalid_input"

	// KindUnavailableAlgorithm marks a missing algorithm implementation.
	// It is raised during startup configuration, never per call.
	KindUnavailableAlgorithm ErrorKind = "unavailable_algorithm"

	// KindComputation marks an unexpected numeric failure inside a stage.
	KindComputation ErrorKind = "computation"
)

// JSON-RPC error codes used when a PipelineError crosses the MCP boundary.
const (
	CodeInvalidInput         = -32602
	CodeUnavailableAlgorithm = -32001
	CodeComputation          = -32000
)

// PipelineError is a structured pipeline failure.
type PipelineError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// NewInvalidInput creates an invalid-input error.
func NewInvalidInput(message string, cause error) *PipelineError {
	return &PipelineError{
		Kind:    KindInvalidInput,
		Message: message,
		Code:    CodeInvalidInput,
		Cause:   cause,
	}
}

// NewUnavailableAlgorithm creates a missing-algorithm startup error.
func NewUnavailableAlgorithm(message string, cause error) *PipelineError {
	return &PipelineError{
		Kind:    KindUnavailableAlgorithm,
		Message: message,
		Code:    CodeUnavailableAlgorithm,
		Cause:   cause,
	}
}

// NewComputation creates a computation error.
func NewComputation(message string, cause error) *PipelineError {
	return &PipelineError{
		Kind:    KindComputation,
		Message: message,
		Code:    CodeComputation,
		Cause:   cause,
	}
}

// IsKind reports whether err is, or wraps, a PipelineError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *PipelineError
	if stderrors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

// RPCCode extracts the JSON-RPC error code from an error, unwrapping as
// needed and defaulting to the generic computation code for untyped errors.
func RPCCode(err error) int {
	var pe *PipelineError
	if stderrors.As(err, &pe) {
		return pe.Code
	}
	return CodeComputation
}
