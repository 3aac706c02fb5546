package results

import "github.com/averycrespi/calc-mcp/internal/calculator"

// ButtonKind represents the kind of a keypad button as an enum
type ButtonKind string

const (
	ButtonKindDigit      ButtonKind = "digit"
	ButtonKindOperator   ButtonKind = "operator"
	ButtonKindEquals     ButtonKind = "equals"
	ButtonKindClear      ButtonKind = "clear"
	ButtonKindClearEntry ButtonKind = "clear_entry"
	ButtonKindPercent    ButtonKind = "percent"
	ButtonKindUnknown    ButtonKind = "unknown"
)

// NewButtonKind converts a calculator button kind to a ButtonKind enum
func NewButtonKind(kind calculator.ButtonKind) ButtonKind {
	switch kind {
	case calculator.ButtonDigit:
		return ButtonKindDigit
	case calculator.ButtonOperator:
		return ButtonKindOperator
	case calculator.ButtonEquals:
		return ButtonKindEquals
	case calculator.ButtonClear:
		return ButtonKindClear
	case calculator.ButtonClearEntry:
		return ButtonKindClearEntry
	case calculator.ButtonPercent:
		return ButtonKindPercent
	default:
		return ButtonKindUnknown
	}
}
