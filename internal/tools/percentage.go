package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PercentageTool handles percent key requests
type PercentageTool struct {
	calc types.Calculator
}

// NewPercentageTool creates a new percentage tool
func NewPercentageTool(calc types.Calculator) *PercentageTool {
	return &PercentageTool{
		calc: calc,
	}
}

// GetTool returns the MCP tool definition
func (t *PercentageTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolPercentage,
		mcp.WithDescription("Divide the display by 100 (the % key). The pending operation is not consulted."),
	)
	return tool
}

// Handle processes the tool request
func (t *PercentageTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state := t.calc.Percentage()
	return NewStateToolResult(fmt.Sprintf("The display shows %s.", state.Display), nil, state), nil
}
