package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressButtonTool handles keypad button presses by label
type PressButtonTool struct {
	calc types.Calculator
}

// NewPressButtonTool creates a new press button tool
func NewPressButtonTool(calc types.Calculator) *PressButtonTool {
	return &PressButtonTool{
		calc: calc,
	}
}

// GetTool returns the MCP tool definition
func (t *PressButtonTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolPressButton,
		mcp.WithDescription("Press one keypad button by its label, exactly as a user would. "+
			"Labels: 0-9, ',', '±', '+', '−', '×', '÷', '=', '%', 'C', 'CE'. "+
			"ASCII aliases '-', '*', 'x', '/' and '.' are accepted."),
		mcp.WithString("label", mcp.Required(), mcp.Description("Button label")),
	)
	return tool
}

// Handle processes the tool request
func (t *PressButtonTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	label, err := ParseStringArgument(req, "label")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	state, err := t.calc.Press(label)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press button: %v", err)), nil
	}

	return NewStateToolResult(
		fmt.Sprintf("Pressed %s. The display shows %s.", label, state.Display),
		results.PressButtonToolArgs{Label: label},
		state,
	), nil
}
