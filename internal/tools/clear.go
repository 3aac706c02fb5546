package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearTool handles full reset requests
type ClearTool struct {
	calc types.Calculator
}

// NewClearTool creates a new clear tool
func NewClearTool(calc types.Calculator) *ClearTool {
	return &ClearTool{
		calc: calc,
	}
}

// GetTool returns the MCP tool definition
func (t *ClearTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolClear,
		mcp.WithDescription("Reset the calculator: display 0, no pending operator, no stored operand (the C key)"),
		mcp.WithIdempotentHintAnnotation(true),
	)
	return tool
}

// Handle processes the tool request
func (t *ClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state := t.calc.Clear()
	return NewStateToolResult("Calculator cleared.", nil, state), nil
}
