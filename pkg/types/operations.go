package types

import (
	"fmt"
	"math"
	"strings"
)

// BinaryOp is an operator that waits for a second operand
type BinaryOp int

const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide
)

// BinaryOps lists every binary operator in button order.
var BinaryOps = []BinaryOp{Add, Subtract, Multiply, Divide}

// Apply evaluates a <op> b. Division by zero is the caller's concern.
func (op BinaryOp) Apply(a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	default:
		panic(fmt.Sprintf("unknown binary operator %d", int(op)))
	}
}

// Symbol returns the button label.
func (op BinaryOp) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return "?"
	}
}

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "unknown"
	}
}

// Style is the operation identifier attached to a result of op.
func (op BinaryOp) Style() Style {
	switch op {
	case Add:
		return StyleAdd
	case Subtract:
		return StyleSubtract
	case Multiply:
		return StyleMultiply
	case Divide:
		return StyleDivide
	default:
		return StyleNormal
	}
}

// ParseBinaryOp accepts symbols (+ - * x × / ÷) and names (add, subtract, multiply, divide).
func ParseBinaryOp(s string) (BinaryOp, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add", "plus":
		return Add, nil
	case "-", "subtract", "minus":
		return Subtract, nil
	case "*", "x", "×", "multiply", "times":
		return Multiply, nil
	case "/", "÷", "divide":
		return Divide, nil
	}
	return 0, &CalcError{Type: InvalidInput, Message: fmt.Sprintf("unknown binary operator %q", s)}
}

// UnaryOp is an immediate operation on the current entry
type UnaryOp int

const (
	Reciprocal UnaryOp = iota
	Square
	SquareRoot
)

// UnaryOps lists every unary operator in button order.
var UnaryOps = []UnaryOp{Reciprocal, Square, SquareRoot}

// Apply evaluates op on x. Reciprocal of zero and square root of a negative
// number return an InvalidArithmetic error.
func (op UnaryOp) Apply(x float64) (float64, error) {
	switch op {
	case Reciprocal:
		if x == 0 {
			return 0, invalidArithmetic("reciprocal of zero")
		}
		return 1 / x, nil
	case Square:
		return x * x, nil
	case SquareRoot:
		if x < 0 {
			return 0, invalidArithmetic("square root of negative number %v", x)
		}
		return math.Sqrt(x), nil
	default:
		return 0, &CalcError{Type: InvalidInput, Message: fmt.Sprintf("unknown unary operator %d", int(op))}
	}
}

func (op UnaryOp) Symbol() string {
	switch op {
	case Reciprocal:
		return "1/x"
	case Square:
		return "x²"
	case SquareRoot:
		return "√"
	default:
		return "?"
	}
}

func (op UnaryOp) String() string {
	switch op {
	case Reciprocal:
		return "reciprocal"
	case Square:
		return "square"
	case SquareRoot:
		return "sqrt"
	default:
		return "unknown"
	}
}

func (op UnaryOp) Style() Style {
	switch op {
	case Reciprocal:
		return StyleReciprocal
	case Square:
		return StyleSquare
	case SquareRoot:
		return StyleSquareRoot
	default:
		return StyleNormal
	}
}

// ParseUnaryOp accepts reciprocal|inverse|1/x, square|sq|x², sqrt|squareroot|root|√.
func ParseUnaryOp(s string) (UnaryOp, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reciprocal", "inverse", "1/x":
		return Reciprocal, nil
	case "square", "sq", "x²", "x^2":
		return Square, nil
	case "sqrt", "squareroot", "square_root", "root", "√":
		return SquareRoot, nil
	}
	return 0, &CalcError{Type: InvalidInput, Message: fmt.Sprintf("unknown unary operator %q", s)}
}
