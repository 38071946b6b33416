package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArithmetic matches any CalcError of type InvalidArithmetic via errors.Is.
var ErrInvalidArithmetic = errors.New("invalid arithmetic")

// CalcError represents errors raised while interpreting calculator input
type CalcError struct {
	Type    ErrorType
	Message string
	Line    int
	Cause   error
}

func (e *CalcError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func (e *CalcError) Unwrap() error {
	return e.Cause
}

// Is reports InvalidArithmetic errors as ErrInvalidArithmetic.
func (e *CalcError) Is(target error) bool {
	return target == ErrInvalidArithmetic && e.Type == InvalidArithmetic
}

type ErrorType int

const (
	InvalidArithmetic ErrorType = iota
	InvalidInput
	TapeError
)

func (t ErrorType) String() string {
	switch t {
	case InvalidArithmetic:
		return "InvalidArithmetic"
	case InvalidInput:
		return "InvalidInput"
	case TapeError:
		return "TapeError"
	default:
		return "Unknown"
	}
}

// ValidationError collects every problem found in one pass over an input
type ValidationError struct {
	Errors []error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation failed: %v", e.Errors[0])
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "validation failed with %d errors:", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&buf, "\n  %d. %v", i+1, err)
	}
	return buf.String()
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Errors
}

// NewValidationError returns nil when errs is empty.
func NewValidationError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}

func invalidArithmetic(format string, args ...any) *CalcError {
	return &CalcError{Type: InvalidArithmetic, Message: fmt.Sprintf(format, args...)}
}
