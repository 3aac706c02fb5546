package results

import (
	"github.com/averycrespi/calc-mcp/pkg/types"
)

// CalculatorToolResult represents the result of every tool that touches the calculator state
type CalculatorToolResult struct {
	Message   string      `json:"message"`
	Arguments any         `json:"arguments,omitempty"`
	State     types.State `json:"state"`
}

// PressDigitToolArgs represents the arguments for the press digit tool
type PressDigitToolArgs struct {
	Digit string `json:"digit"`
}

// SelectOperatorToolArgs represents the arguments for the select operator tool
type SelectOperatorToolArgs struct {
	Operator string `json:"operator"`
}

// PressButtonToolArgs represents the arguments for the press button tool
type PressButtonToolArgs struct {
	Label string `json:"label"`
}

// PressSequenceToolArgs represents the arguments for the press sequence tool
type PressSequenceToolArgs struct {
	Buttons []string `json:"buttons"`
}
