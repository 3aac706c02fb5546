package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool name prefix for all MCP tools
const ToolPrefix = "calculator."

// Tool names
const (
	ToolPressDigit     = ToolPrefix + "press_digit"
	ToolSelectOperator = ToolPrefix + "select_operator"
	ToolEvaluate       = ToolPrefix + "evaluate"
	ToolClear          = ToolPrefix + "clear"
	ToolClearEntry     = ToolPrefix + "clear_entry"
	ToolPercentage     = ToolPrefix + "percentage"
	ToolPressButton    = ToolPrefix + "press_button"
	ToolPressSequence  = ToolPrefix + "press_sequence"
	ToolGetDisplay     = ToolPrefix + "get_display"
	ToolListButtons    = ToolPrefix + "list_buttons"
)

// Tool is implemented by every calculator tool
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every calculator tool bound to calc
func All(calc types.Calculator) []Tool {
	return []Tool{
		NewPressDigitTool(calc),
		NewSelectOperatorTool(calc),
		NewEvaluateTool(calc),
		NewClearTool(calc),
		NewClearEntryTool(calc),
		NewPercentageTool(calc),
		NewPressButtonTool(calc),
		NewPressSequenceTool(calc),
		NewGetDisplayTool(calc),
		NewListButtonsTool(),
	}
}
