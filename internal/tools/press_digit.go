package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressDigitTool handles digit entry requests
type PressDigitTool struct {
	calc types.Calculator
}

// NewPressDigitTool creates a new press digit tool
func NewPressDigitTool(calc types.Calculator) *PressDigitTool {
	return &PressDigitTool{
		calc: calc,
	}
}

// GetTool returns the MCP tool definition
func (t *PressDigitTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolPressDigit,
		mcp.WithDescription("Append a digit to the calculator display. "+
			"A display showing 0 is replaced by the digit. "+
			"Use '.' for the decimal separator and '-' for a leading sign."),
		mcp.WithString("digit", mcp.Required(), mcp.Description("Digit token: 0-9, '.' or '-'")),
	)
	return tool
}

// Handle processes the tool request
func (t *PressDigitTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	digit, err := ParseStringArgument(req, "digit")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !calculator.IsDigitToken(digit) {
		return mcp.NewToolResultError(fmt.Sprintf("invalid digit %q: expected 0-9, '.' or '-'", digit)), nil
	}

	state := t.calc.AppendDigit(digit)
	return NewStateToolResult(
		fmt.Sprintf("Appended %s. The display shows %s.", digit, state.Display),
		results.PressDigitToolArgs{Digit: digit},
		state,
	), nil
}
