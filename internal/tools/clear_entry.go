package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearEntryTool handles clear-entry requests
type ClearEntryTool struct {
	calc types.Calculator
}

// NewClearEntryTool creates a new clear entry tool
func NewClearEntryTool(calc types.Calculator) *ClearEntryTool {
	return &ClearEntryTool{
		calc: calc,
	}
}

// GetTool returns the MCP tool definition
func (t *ClearEntryTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolClearEntry,
		mcp.WithDescription("Reset only the display to 0, keeping any pending operator and stored operand (the CE key)"),
		mcp.WithIdempotentHintAnnotation(true),
	)
	return tool
}

// Handle processes the tool request
func (t *ClearEntryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state := t.calc.ClearEntry()
	return NewStateToolResult("Current entry cleared.", nil, state), nil
}
