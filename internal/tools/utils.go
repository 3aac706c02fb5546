package tools

import (
	"encoding/json"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// ParseStringArgument extracts a required scalar argument as a string.
// Numbers are accepted so that a digit may be sent as 7 or "7".
func ParseStringArgument(req mcp.CallToolRequest, key string) (string, error) {
	raw := mcp.ParseArgument(req, key, nil)
	if raw == nil {
		return "", fmt.Errorf("%s parameter is required", key)
	}

	value, err := cast.ToStringE(raw)
	if err != nil {
		return "", fmt.Errorf("%s parameter must be a string: %w", key, err)
	}
	if value == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return value, nil
}

// ParseStringListArgument extracts a required list argument. A single string
// is split on whitespace, so "7 + 3 =" and ["7", "+", "3", "="] are equivalent.
func ParseStringListArgument(req mcp.CallToolRequest, key string) ([]string, error) {
	raw := mcp.ParseArgument(req, key, nil)
	if raw == nil {
		return nil, fmt.Errorf("%s parameter is required", key)
	}

	values, err := cast.ToStringSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("%s parameter must be a list of strings: %w", key, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s parameter must not be empty", key)
	}
	return values, nil
}

// NewJSONToolResult marshals v into an indented JSON text result
func NewJSONToolResult(v any) *mcp.CallToolResult {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err))
	}

	return mcp.NewToolResultText(string(jsonBytes))
}

// NewStateToolResult wraps a calculator state into a tool result
func NewStateToolResult(message string, args any, state types.State) *mcp.CallToolResult {
	return NewJSONToolResult(results.CalculatorToolResult{
		Message:   message,
		Arguments: args,
		State:     state,
	})
}
