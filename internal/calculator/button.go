package calculator

import (
	"errors"
	"fmt"

	"github.com/averycrespi/calc-mcp/pkg/types"
)

// ErrUnknownButton is returned when a label matches no keypad button
var ErrUnknownButton = errors.New("unknown button")

// ButtonKind identifies which engine operation a button invokes
type ButtonKind int

const (
	ButtonDigit ButtonKind = iota
	ButtonOperator
	ButtonEquals
	ButtonClear
	ButtonClearEntry
	ButtonPercent
)

func (k ButtonKind) String() string {
	switch k {
	case ButtonDigit:
		return "digit"
	case ButtonOperator:
		return "operator"
	case ButtonEquals:
		return "equals"
	case ButtonClear:
		return "clear"
	case ButtonClearEntry:
		return "clear_entry"
	case ButtonPercent:
		return "percent"
	default:
		return fmt.Sprintf("ButtonKind(%d)", int(k))
	}
}

// Button is one key of the keypad. Token carries the digit for ButtonDigit
// and the operator for ButtonOperator; it is empty for the other kinds.
type Button struct {
	Kind  ButtonKind
	Label string
	Token string
}

// Apply invokes the engine operation the button stands for
func (b Button) Apply(e *Engine) {
	switch b.Kind {
	case ButtonDigit:
		e.AppendDigit(b.Token)
	case ButtonOperator:
		e.SelectOperator(types.Operator(b.Token))
	case ButtonEquals:
		e.Evaluate()
	case ButtonClear:
		e.Clear()
	case ButtonClearEntry:
		e.ClearEntry()
	case ButtonPercent:
		e.Percentage()
	}
}

// KeypadColumns is the width of the keypad grid
const KeypadColumns = 4

// The sign key appends a leading sign marker and the comma key appends the
// decimal separator; both go through AppendDigit.
var keypad = []Button{
	{Kind: ButtonClearEntry, Label: "CE"},
	{Kind: ButtonClear, Label: "C"},
	{Kind: ButtonPercent, Label: "%"},
	{Kind: ButtonOperator, Label: "÷", Token: string(types.OperatorDivide)},
	{Kind: ButtonDigit, Label: "7", Token: "7"},
	{Kind: ButtonDigit, Label: "8", Token: "8"},
	{Kind: ButtonDigit, Label: "9", Token: "9"},
	{Kind: ButtonOperator, Label: "×", Token: string(types.OperatorMultiply)},
	{Kind: ButtonDigit, Label: "4", Token: "4"},
	{Kind: ButtonDigit, Label: "5", Token: "5"},
	{Kind: ButtonDigit, Label: "6", Token: "6"},
	{Kind: ButtonOperator, Label: "−", Token: string(types.OperatorSubtract)},
	{Kind: ButtonDigit, Label: "1", Token: "1"},
	{Kind: ButtonDigit, Label: "2", Token: "2"},
	{Kind: ButtonDigit, Label: "3", Token: "3"},
	{Kind: ButtonOperator, Label: "+", Token: string(types.OperatorAdd)},
	{Kind: ButtonDigit, Label: "±", Token: "-"},
	{Kind: ButtonDigit, Label: "0", Token: "0"},
	{Kind: ButtonDigit, Label: ",", Token: "."},
	{Kind: ButtonEquals, Label: "="},
}

// ASCII spellings for labels that are awkward to type
var labelAliases = map[string]string{
	"/": "÷",
	"*": "×",
	"x": "×",
	"-": "−",
	".": ",",
}

// Keypad returns the keypad buttons in row order
func Keypad() []Button {
	return append([]Button(nil), keypad...)
}

// LookupButton finds the button with the given label or ASCII alias
func LookupButton(label string) (Button, error) {
	if alias, ok := labelAliases[label]; ok {
		label = alias
	}
	for _, b := range keypad {
		if b.Label == label {
			return b, nil
		}
	}
	return Button{}, fmt.Errorf("%w: %q", ErrUnknownButton, label)
}

// Press looks up a button by label and applies it
func (e *Engine) Press(label string) error {
	b, err := LookupButton(label)
	if err != nil {
		return err
	}
	b.Apply(e)
	return nil
}

// IsDigitToken reports whether s is a token the digit keys can produce
func IsDigitToken(s string) bool {
	for _, b := range keypad {
		if b.Kind == ButtonDigit && b.Token == s {
			return true
		}
	}
	return false
}
