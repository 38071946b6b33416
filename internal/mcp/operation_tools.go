package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/types"
)

// --- select_operator ---

type SelectOperatorInput struct {
	Session  string `json:"session,omitempty" jsonschema:"session name; the default session when empty"`
	Operator string `json:"operator" jsonschema:"add, subtract, multiply or divide (or + - * /)"`
}

// --- apply_unary ---

type ApplyUnaryInput struct {
	Session   string `json:"session,omitempty" jsonschema:"session name; the default session when empty"`
	Operation string `json:"operation" jsonschema:"reciprocal, square or sqrt"`
}

func registerOperationTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "select_operator",
		Description: "Choose a binary operator. A pending operation with a typed second operand is evaluated first, so 3 + 4 + shows 7.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in SelectOperatorInput) (*mcpsdk.CallToolResult, any, error) {
		op, err := types.ParseBinaryOp(in.Operator)
		if err != nil {
			return errResult(err), nil, nil
		}
		var d types.Display
		session := state.WithSession(in.Session, func(e calculator.Engine) {
			d = e.SelectOperator(op)
		})
		return textResult(DisplayResult{Session: session, Display: d}), nil, nil
	})

	displayTool(s, state, "evaluate",
		"Apply the pending operation to the entry. Division by zero shows Error.",
		calculator.Engine.Evaluate)

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "apply_unary",
		Description: "Apply a unary operation to the entry. 1/0 and the square root of a negative number show Error.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ApplyUnaryInput) (*mcpsdk.CallToolResult, any, error) {
		op, err := types.ParseUnaryOp(in.Operation)
		if err != nil {
			return errResult(err), nil, nil
		}
		var d types.Display
		session := state.WithSession(in.Session, func(e calculator.Engine) {
			d = e.ApplyUnary(op)
		})
		return textResult(DisplayResult{Session: session, Display: d}), nil, nil
	})
}
