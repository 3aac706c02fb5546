package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressSequenceTool handles presses of several buttons at once
type PressSequenceTool struct {
	calc types.Calculator
}

// NewPressSequenceTool creates a new press sequence tool
func NewPressSequenceTool(calc types.Calculator) *PressSequenceTool {
	return &PressSequenceTool{
		calc: calc,
	}
}

// GetTool returns the MCP tool definition
func (t *PressSequenceTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolPressSequence,
		mcp.WithDescription("Press several keypad buttons in order, e.g. [\"7\", \"+\", \"3\", \"=\"]. "+
			"If any label is unknown, no button is pressed."),
		mcp.WithArray("buttons",
			mcp.Required(),
			mcp.Description("Button labels in press order"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *PressSequenceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	buttons, err := ParseStringListArgument(req, "buttons")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	state, err := t.calc.PressSequence(buttons)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press buttons: %v", err)), nil
	}

	return NewStateToolResult(
		fmt.Sprintf("Pressed %d button(s). The display shows %s.", len(buttons), state.Display),
		results.PressSequenceToolArgs{Buttons: buttons},
		state,
	), nil
}
