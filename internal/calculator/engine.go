// Package calculator implements the keypad calculator state machine.
//
// An Engine holds the display, an optional pending operator and an optional
// previous operand. It is not safe for concurrent use; keypad surfaces that
// receive input concurrently go through the session package.
package calculator

import (
	"github.com/averycrespi/calc-mcp/pkg/types"
)

const initialDisplay = "0"

// Observer is called with the new state after every applied operation
type Observer func(types.State)

type subscription struct {
	id int
	fn Observer
}

// Engine is the calculator state machine
type Engine struct {
	display     string
	operator    types.Operator
	previous    string
	hasPrevious bool

	observers []subscription
	nextID    int
}

// NewEngine creates an engine in its initial state
func NewEngine() *Engine {
	return &Engine{display: initialDisplay}
}

// Subscribe registers an observer and returns a func that removes it
func (e *Engine) Subscribe(fn Observer) (unsubscribe func()) {
	e.nextID++
	id := e.nextID
	e.observers = append(e.observers, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range e.observers {
			if sub.id == id {
				e.observers = append(e.observers[:i], e.observers[i+1:]...)
				return
			}
		}
	}
}

// Display returns the current display value
func (e *Engine) Display() string {
	return e.display
}

// Mode returns the coarse state of the engine
func (e *Engine) Mode() types.Mode {
	if e.hasPrevious {
		return types.ModeOperatorPending
	}
	return types.ModeEntering
}

// State returns a snapshot of the engine
func (e *Engine) State() types.State {
	state := types.State{
		Display:  e.display,
		Operator: e.operator,
		Mode:     e.Mode(),
	}
	if e.hasPrevious {
		previous := e.previous
		state.Previous = &previous
	}
	return state
}

// AppendDigit appends a digit token to the display, replacing a lone "0".
// The token is not validated.
func (e *Engine) AppendDigit(digit string) {
	if e.display == initialDisplay {
		e.display = digit
	} else {
		e.display += digit
	}
	e.notify()
}

// SelectOperator stores the display as the previous operand and starts a new
// entry. A pending operator is replaced without being evaluated.
func (e *Engine) SelectOperator(op types.Operator) {
	e.previous = e.display
	e.hasPrevious = true
	e.display = initialDisplay
	e.operator = op
	e.notify()
}

// Evaluate applies the pending operator to the previous operand and the
// display and reports whether it did. It does nothing when no operation is
// pending or the operator is not one of + - * /.
func (e *Engine) Evaluate() bool {
	if e.operator == types.OperatorNone || !e.hasPrevious {
		return false
	}

	result, ok := compute(e.operator, ParseNumber(e.previous), ParseNumber(e.display))
	if !ok {
		return false
	}

	e.display = FormatNumber(result)
	e.operator = types.OperatorNone
	e.previous = ""
	e.hasPrevious = false
	e.notify()
	return true
}

// Clear resets the engine to its initial state
func (e *Engine) Clear() {
	e.display = initialDisplay
	e.operator = types.OperatorNone
	e.previous = ""
	e.hasPrevious = false
	e.notify()
}

// ClearEntry resets the display only
func (e *Engine) ClearEntry() {
	e.display = initialDisplay
	e.notify()
}

// Percentage divides the display by 100
func (e *Engine) Percentage() {
	e.display = FormatNumber(ParseNumber(e.display) / 100)
	e.notify()
}

func (e *Engine) notify() {
	if len(e.observers) == 0 {
		return
	}
	state := e.State()
	// Copy so an observer may unsubscribe while being notified.
	observers := append([]subscription(nil), e.observers...)
	for _, sub := range observers {
		sub.fn(state)
	}
}

func compute(op types.Operator, lhs, rhs float64) (float64, bool) {
	switch op {
	case types.OperatorAdd:
		return lhs + rhs, true
	case types.OperatorSubtract:
		return lhs - rhs, true
	case types.OperatorMultiply:
		return lhs * rhs, true
	case types.OperatorDivide:
		return lhs / rhs, true
	default:
		return 0, false
	}
}
