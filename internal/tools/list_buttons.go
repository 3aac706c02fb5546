package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListButtonsTool describes the keypad
type ListButtonsTool struct{}

// NewListButtonsTool creates a new list buttons tool
func NewListButtonsTool() *ListButtonsTool {
	return &ListButtonsTool{}
}

// GetTool returns the MCP tool definition
func (t *ListButtonsTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolListButtons,
		mcp.WithDescription("List the keypad buttons with their kind and grid position"),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	return tool
}

// Handle processes the tool request
func (t *ListButtonsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	buttons := results.NewButtonEntries(calculator.Keypad(), calculator.KeypadColumns)

	return NewJSONToolResult(results.ListButtonsToolResult{
		Message: fmt.Sprintf("The keypad has %d buttons in %d columns.", len(buttons), calculator.KeypadColumns),
		Columns: calculator.KeypadColumns,
		Buttons: buttons,
	}), nil
}
