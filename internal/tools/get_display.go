package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetDisplayTool reports the calculator state without changing it
type GetDisplayTool struct {
	calc types.Calculator
}

// NewGetDisplayTool creates a new get display tool
func NewGetDisplayTool(calc types.Calculator) *GetDisplayTool {
	return &GetDisplayTool{
		calc: calc,
	}
}

// GetTool returns the MCP tool definition
func (t *GetDisplayTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolGetDisplay,
		mcp.WithDescription("Read the calculator display, pending operator and stored operand"),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	return tool
}

// Handle processes the tool request
func (t *GetDisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state := t.calc.State()

	message := "The display shows " + state.Display + "."
	if state.Mode == types.ModeOperatorPending {
		message += " An operation is pending."
	}
	return NewStateToolResult(message, nil, state), nil
}
