package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// EvaluateTool handles equals requests
type EvaluateTool struct {
	calc types.Calculator
}

// NewEvaluateTool creates a new evaluate tool
func NewEvaluateTool(calc types.Calculator) *EvaluateTool {
	return &EvaluateTool{
		calc: calc,
	}
}

// GetTool returns the MCP tool definition
func (t *EvaluateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolEvaluate,
		mcp.WithDescription("Apply the pending operator to the stored operand and the display (the = key). "+
			"Does nothing when no operator is pending. Division by zero yields Infinity or NaN."),
	)
	return tool
}

// Handle processes the tool request
func (t *EvaluateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, evaluated := t.calc.Evaluate()
	if !evaluated {
		return NewStateToolResult("No operation is pending; the display is unchanged.", nil, state), nil
	}

	return NewStateToolResult(fmt.Sprintf("The result is %s.", state.Display), nil, state), nil
}
