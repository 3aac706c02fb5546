package tools

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
)

func newRequest(arguments map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = arguments
	return request
}

func TestParseStringArgument(t *testing.T) {
	tests := []struct {
		name          string
		arguments     map[string]interface{}
		expected      string
		errorContains string
	}{
		{
			name:      "String value",
			arguments: map[string]interface{}{"digit": "7"},
			expected:  "7",
		},
		{
			name:      "Number value",
			arguments: map[string]interface{}{"digit": float64(7)},
			expected:  "7",
		},
		{
			name:          "Missing argument",
			arguments:     map[string]interface{}{},
			errorContains: "digit parameter is required",
		},
		{
			name:          "Empty string",
			arguments:     map[string]interface{}{"digit": ""},
			errorContains: "digit parameter is required",
		},
		{
			name:          "Object value",
			arguments:     map[string]interface{}{"digit": map[string]interface{}{"value": 7}},
			errorContains: "digit parameter must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseStringArgument(newRequest(tt.arguments), "digit")

			if tt.errorContains != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestParseStringListArgument(t *testing.T) {
	tests := []struct {
		name          string
		arguments     map[string]interface{}
		expected      []string
		errorContains string
	}{
		{
			name:      "JSON array",
			arguments: map[string]interface{}{"buttons": []interface{}{"7", "+", "3", "="}},
			expected:  []string{"7", "+", "3", "="},
		},
		{
			name:      "Mixed array",
			arguments: map[string]interface{}{"buttons": []interface{}{float64(4), "×", float64(2)}},
			expected:  []string{"4", "×", "2"},
		},
		{
			name:      "Whitespace separated string",
			arguments: map[string]interface{}{"buttons": "7 + 3 ="},
			expected:  []string{"7", "+", "3", "="},
		},
		{
			name:          "Missing argument",
			arguments:     map[string]interface{}{},
			errorContains: "buttons parameter is required",
		},
		{
			name:          "Empty array",
			arguments:     map[string]interface{}{"buttons": []interface{}{}},
			errorContains: "buttons parameter must not be empty",
		},
		{
			name:          "Object value",
			arguments:     map[string]interface{}{"buttons": map[string]interface{}{"a": 1}},
			errorContains: "buttons parameter must be a list of strings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseStringListArgument(newRequest(tt.arguments), "buttons")

			if tt.errorContains != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestNewJSONToolResult_MarshalError(t *testing.T) {
	result := NewJSONToolResult(map[string]interface{}{"bad": make(chan int)})
	assert.True(t, result.IsError)
}
