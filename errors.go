// Package mlmath structured error types for precondition violations
package mlmath

import (
	"errors"
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Shape errors (dimension disagreements)
	ErrTypeShape ErrorType = iota
	// Invalid argument errors
	ErrTypeInvalidArg
	// State errors (operation invalid in current state)
	ErrTypeState
	// Numerical errors
	ErrTypeNumerical
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying sentinel or cause
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mlmath %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("mlmath %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeShape:
		return "Shape"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeState:
		return "State"
	case ErrTypeNumerical:
		return "Numerical"
	default:
		return "Unknown"
	}
}

// Sentinel errors. All precondition violations surface one of these;
// callers match with errors.Is.

var (
	// ErrShapeMismatch indicates a dimension disagreement, e.g. an
	// Unfold vector whose length differs from the sum of the requested
	// shapes, or MatMul operands with incompatible inner dimensions.
	ErrShapeMismatch = errors.New("mlmath: shape mismatch")

	// ErrModelNotTrained indicates a classification call on a model
	// value that never went through training (a nil or zero model).
	ErrModelNotTrained = errors.New("mlmath: model not trained")

	// ErrInputCardinality indicates a label vector whose length does
	// not match the document count of the training matrix.
	ErrInputCardinality = errors.New("mlmath: label count does not match document count")

	// ErrInvalidLabel indicates a negative class label, which would
	// corrupt class-count inference.
	ErrInvalidLabel = errors.New("mlmath: negative class label")
)

// Error constructors. Each wraps the matching sentinel so errors.Is
// keeps working across the structured type.

// NewShapeError creates a dimension mismatch error
func NewShapeError(op string, message string) error {
	return &Error{
		Type:    ErrTypeShape,
		Op:      op,
		Message: message,
		Err:     ErrShapeMismatch,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &Error{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewStateError creates an invalid state error
func NewStateError(op string, message string, cause error) error {
	return &Error{
		Type:    ErrTypeState,
		Op:      op,
		Message: message,
		Err:     cause,
	}
}

// NewNumericalError creates a numerical error
func NewNumericalError(op string, message string) error {
	return &Error{
		Type:    ErrTypeNumerical,
		Op:      op,
		Message: message,
	}
}

// IsShapeError checks if an error is a shape error
func IsShapeError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == ErrTypeShape
	}
	return errors.Is(err, ErrShapeMismatch)
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}
