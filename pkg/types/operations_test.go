package types

import (
	"errors"
	"math"
	"testing"
)

func TestBinaryOp_Apply(t *testing.T) {
	testCases := []struct {
		op       BinaryOp
		a, b     float64
		expected float64
	}{
		{Add, 3, 4, 7},
		{Subtract, 9, 16, -7},
		{Multiply, 1.5, 4, 6},
		{Divide, 10, 4, 2.5},
	}

	for _, tc := range testCases {
		t.Run(tc.op.String(), func(t *testing.T) {
			if got := tc.op.Apply(tc.a, tc.b); got != tc.expected {
				t.Errorf("Expected %v %s %v = %v, got %v", tc.a, tc.op.Symbol(), tc.b, tc.expected, got)
			}
		})
	}
}

func TestBinaryOp_Style(t *testing.T) {
	expected := map[BinaryOp]Style{
		Add:      StyleAdd,
		Subtract: StyleSubtract,
		Multiply: StyleMultiply,
		Divide:   StyleDivide,
	}
	for _, op := range BinaryOps {
		if op.Style() != expected[op] {
			t.Errorf("Expected %s to style as %s, got %s", op, expected[op], op.Style())
		}
	}
}

func TestParseBinaryOp(t *testing.T) {
	testCases := []struct {
		input    string
		expected BinaryOp
	}{
		{"+", Add},
		{"add", Add},
		{"-", Subtract},
		{"*", Multiply},
		{"x", Multiply},
		{"X", Multiply},
		{"×", Multiply},
		{"/", Divide},
		{"÷", Divide},
		{" divide ", Divide},
	}

	for _, tc := range testCases {
		got, err := ParseBinaryOp(tc.input)
		if err != nil {
			t.Errorf("ParseBinaryOp(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseBinaryOp(%q) = %s, expected %s", tc.input, got, tc.expected)
		}
	}

	_, err := ParseBinaryOp("%")
	var calcErr *CalcError
	if !errors.As(err, &calcErr) || calcErr.Type != InvalidInput {
		t.Errorf("Expected InvalidInput error for %%, got %v", err)
	}
}

func TestUnaryOp_Apply(t *testing.T) {
	testCases := []struct {
		name     string
		op       UnaryOp
		x        float64
		expected float64
		wantErr  bool
	}{
		{"reciprocal", Reciprocal, 4, 0.25, false},
		{"reciprocal negative", Reciprocal, -2, -0.5, false},
		{"reciprocal zero", Reciprocal, 0, 0, true},
		{"reciprocal negative zero", Reciprocal, math.Copysign(0, -1), 0, true},
		{"square", Square, -3, 9, false},
		{"square root", SquareRoot, 16, 4, false},
		{"square root zero", SquareRoot, 0, 0, false},
		{"square root negative", SquareRoot, -7, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op.Apply(tc.x)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidArithmetic) {
					t.Errorf("Expected ErrInvalidArithmetic, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestUnaryOp_SquareRootOfNaN(t *testing.T) {
	got, err := SquareRoot.Apply(math.NaN())
	if err != nil {
		t.Fatalf("Expected NaN to pass through, got error %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Expected NaN, got %v", got)
	}
}

func TestParseUnaryOp(t *testing.T) {
	testCases := []struct {
		input    string
		expected UnaryOp
	}{
		{"reciprocal", Reciprocal},
		{"1/x", Reciprocal},
		{"inverse", Reciprocal},
		{"square", Square},
		{"x²", Square},
		{"sqrt", SquareRoot},
		{"√", SquareRoot},
		{"ROOT", SquareRoot},
	}

	for _, tc := range testCases {
		got, err := ParseUnaryOp(tc.input)
		if err != nil || got != tc.expected {
			t.Errorf("ParseUnaryOp(%q) = %s, %v; expected %s", tc.input, got, err, tc.expected)
		}
	}

	if _, err := ParseUnaryOp("cube"); err == nil {
		t.Errorf("Expected error for unknown unary operator")
	}
}

func TestEntry(t *testing.T) {
	zero := ZeroEntry()
	if zero.Text() != "0" || zero.IsError() || zero.Value() != 0 {
		t.Errorf("Unexpected zero entry: %+v", zero)
	}

	typed := NumericEntry("12.")
	if !typed.HasPoint() {
		t.Errorf("Expected 12. to have a point")
	}
	if typed.Value() != 12 {
		t.Errorf("Expected 12. to parse as 12, got %v", typed.Value())
	}

	errEntry := ErrorEntry()
	if !errEntry.IsError() || errEntry.Text() != ErrorText {
		t.Errorf("Unexpected error entry: %+v", errEntry)
	}
	if errEntry.HasPoint() {
		t.Errorf("Error entry should not report a point")
	}
	if !math.IsNaN(errEntry.Value()) {
		t.Errorf("Expected error entry value to be NaN, got %v", errEntry.Value())
	}
	if errEntry.Len() != len(ErrorText) {
		t.Errorf("Expected error entry length %d, got %d", len(ErrorText), errEntry.Len())
	}
}

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		input string
		check func(float64) bool
	}{
		{"-7", func(v float64) bool { return v == -7 }},
		{"1e+21", func(v float64) bool { return v == 1e21 }},
		{"Infinity", func(v float64) bool { return math.IsInf(v, 1) }},
		{"-Infinity", func(v float64) bool { return math.IsInf(v, -1) }},
		{"1e999", func(v float64) bool { return math.IsInf(v, 1) }},
		{"NaN", math.IsNaN},
		{"Error", math.IsNaN},
	}

	for _, tc := range testCases {
		if got := ParseNumber(tc.input); !tc.check(got) {
			t.Errorf("ParseNumber(%q) = %v", tc.input, got)
		}
	}
}

func TestAction_String(t *testing.T) {
	testCases := []struct {
		action   Action
		expected string
	}{
		{DigitAction('7'), "digit(7)"},
		{PointAction(), "point"},
		{OperatorAction(Divide), "operator(÷)"},
		{EqualsAction(), "equals"},
		{UnaryAction(SquareRoot), "unary(sqrt)"},
		{BackspaceAction(), "backspace"},
		{ClearEntryAction(), "clear_entry"},
		{ClearAllAction(), "clear_all"},
	}

	for _, tc := range testCases {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Expected %s, got %s", tc.expected, got)
		}
	}
}
