package types

// Operator is a pending arithmetic operator
type Operator string

const (
	OperatorNone     Operator = ""
	OperatorAdd      Operator = "+"
	OperatorSubtract Operator = "-"
	OperatorMultiply Operator = "*"
	OperatorDivide   Operator = "/"
)

// Valid reports whether the operator is one of + - * /
func (o Operator) Valid() bool {
	switch o {
	case OperatorAdd, OperatorSubtract, OperatorMultiply, OperatorDivide:
		return true
	default:
		return false
	}
}

// Mode is the coarse state of the calculator
type Mode string

const (
	ModeEntering        Mode = "entering"
	ModeOperatorPending Mode = "operator_pending"
)

// State is a snapshot of the calculator as seen by a keypad surface
type State struct {
	Display  string   `json:"display"`
	Operator Operator `json:"operator,omitempty"`
	Previous *string  `json:"previous,omitempty"`
	Mode     Mode     `json:"mode"`
}

// Calculator defines the operations a keypad surface may invoke
type Calculator interface {
	AppendDigit(digit string) State
	SelectOperator(op Operator) State
	Evaluate() (State, bool)
	Clear() State
	ClearEntry() State
	Percentage() State
	Press(label string) (State, error)
	PressSequence(labels []string) (State, error)
	State() State
}
