package types

import (
	"errors"
	"strings"
	"testing"
)

func TestCalcError_Error(t *testing.T) {
	testCases := []struct {
		name     string
		err      *CalcError
		expected string
	}{
		{
			name: "With line",
			err: &CalcError{
				Type:    TapeError,
				Message: `unknown key "q"`,
				Line:    3,
			},
			expected: `line 3: unknown key "q"`,
		},
		{
			name: "Without line",
			err: &CalcError{
				Type:    InvalidArithmetic,
				Message: "division by zero",
			},
			expected: "division by zero",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.err.Error()
			if result != tc.expected {
				t.Errorf("Expected error message '%s', got '%s'", tc.expected, result)
			}
		})
	}
}

func TestCalcError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	err := &CalcError{
		Type:    TapeError,
		Message: "read tape",
		Cause:   cause,
	}

	if !errors.Is(err, cause) {
		t.Errorf("Expected errors.Is to find the cause")
	}

	errNoCause := &CalcError{Type: InvalidInput, Message: "bad"}
	if errNoCause.Unwrap() != nil {
		t.Errorf("Expected unwrapped error to be nil, got %v", errNoCause.Unwrap())
	}
}

func TestCalcError_IsInvalidArithmetic(t *testing.T) {
	_, err := Reciprocal.Apply(0)
	if !errors.Is(err, ErrInvalidArithmetic) {
		t.Fatalf("Expected reciprocal of zero to be ErrInvalidArithmetic, got %v", err)
	}

	var calcErr *CalcError
	if !errors.As(err, &calcErr) {
		t.Fatalf("Expected a *CalcError, got %T", err)
	}
	if calcErr.Type != InvalidArithmetic {
		t.Errorf("Expected InvalidArithmetic, got %v", calcErr.Type)
	}

	other := &CalcError{Type: InvalidInput, Message: "nope"}
	if errors.Is(other, ErrInvalidArithmetic) {
		t.Errorf("Expected InvalidInput not to match ErrInvalidArithmetic")
	}
}

func TestErrorType_String(t *testing.T) {
	testCases := []struct {
		errType  ErrorType
		expected string
	}{
		{InvalidArithmetic, "InvalidArithmetic"},
		{InvalidInput, "InvalidInput"},
		{TapeError, "TapeError"},
		{ErrorType(42), "Unknown"},
	}

	for _, tc := range testCases {
		if got := tc.errType.String(); got != tc.expected {
			t.Errorf("Expected %d to be %s, got %s", tc.errType, tc.expected, got)
		}
	}
}

func TestValidationError(t *testing.T) {
	if NewValidationError(nil) != nil {
		t.Errorf("Expected nil for no errors")
	}

	first := &CalcError{Type: TapeError, Message: "first", Line: 1}
	second := &CalcError{Type: TapeError, Message: "second", Line: 2}

	single := NewValidationError([]error{first})
	if single.Error() != "validation failed: line 1: first" {
		t.Errorf("Unexpected single error message: %s", single.Error())
	}

	multi := NewValidationError([]error{first, second})
	msg := multi.Error()
	if !strings.HasPrefix(msg, "validation failed with 2 errors:") {
		t.Errorf("Unexpected multi error message: %s", msg)
	}
	if !strings.Contains(msg, "2. line 2: second") {
		t.Errorf("Expected numbered second error in: %s", msg)
	}

	var calcErr *CalcError
	if !errors.As(multi, &calcErr) || calcErr != first {
		t.Errorf("Expected errors.As to reach the first collected error")
	}
}
