package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// SelectOperatorTool handles operator selection requests
type SelectOperatorTool struct {
	calc types.Calculator
}

// NewSelectOperatorTool creates a new select operator tool
func NewSelectOperatorTool(calc types.Calculator) *SelectOperatorTool {
	return &SelectOperatorTool{
		calc: calc,
	}
}

// GetTool returns the MCP tool definition
func (t *SelectOperatorTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolSelectOperator,
		mcp.WithDescription("Select the pending arithmetic operator. "+
			"The display becomes the left-hand operand and is reset to 0. "+
			"A previously pending operator is replaced without being evaluated."),
		mcp.WithString("operator",
			mcp.Required(),
			mcp.Description("Arithmetic operator"),
			mcp.Enum(
				string(types.OperatorAdd),
				string(types.OperatorSubtract),
				string(types.OperatorMultiply),
				string(types.OperatorDivide),
			),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *SelectOperatorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operator, err := ParseStringArgument(req, "operator")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	op := types.Operator(operator)
	if !op.Valid() {
		return mcp.NewToolResultError(fmt.Sprintf("invalid operator %q: expected one of + - * /", operator)), nil
	}

	state := t.calc.SelectOperator(op)
	return NewStateToolResult(
		fmt.Sprintf("Selected %s. Enter the right-hand operand, then evaluate.", operator),
		results.SelectOperatorToolArgs{Operator: operator},
		state,
	), nil
}
