package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/logging"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/google/uuid"
)

var _ types.Calculator = &Session{}

type subscriber struct {
	id string
	fn func(types.State)
}

// Session serialises keypad input from concurrent surfaces onto one engine
// and fans state changes out to subscribers
type Session struct {
	mu sync.Mutex
	// notifyMu keeps deliveries in the order the changes were applied.
	// Subscribers must not call back into the session.
	notifyMu    sync.Mutex
	engine      *calculator.Engine
	changes     []types.State
	subscribers []subscriber
	logger      *slog.Logger
}

// New creates a session around a fresh engine. A nil logger discards logs.
func New(logger *slog.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}

	s := &Session{
		engine: calculator.NewEngine(),
		logger: logger,
	}
	s.engine.Subscribe(func(state types.State) {
		s.changes = append(s.changes, state)
	})
	return s
}

// Subscribe registers fn to receive every state change and returns its subscription ID
func (s *Session) Subscribe(fn func(types.State)) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	s.logger.Debug("Added display subscriber", "subscription_id", id, "subscribers", len(s.subscribers))
	return id
}

// Unsubscribe removes a subscription; it reports whether the ID was known
func (s *Session) Unsubscribe(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subscribers {
		if sub.id == id {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			s.logger.Debug("Removed display subscriber", "subscription_id", id)
			return true
		}
	}
	return false
}

func (s *Session) AppendDigit(digit string) types.State {
	return s.apply("append_digit", func(e *calculator.Engine) error {
		e.AppendDigit(digit)
		return nil
	})
}

func (s *Session) SelectOperator(op types.Operator) types.State {
	return s.apply("select_operator", func(e *calculator.Engine) error {
		e.SelectOperator(op)
		return nil
	})
}

// Evaluate applies the pending operation; evaluated is false when there was
// nothing to apply
func (s *Session) Evaluate() (state types.State, evaluated bool) {
	state = s.apply("evaluate", func(e *calculator.Engine) error {
		evaluated = e.Evaluate()
		return nil
	})
	return state, evaluated
}

func (s *Session) Clear() types.State {
	return s.apply("clear", func(e *calculator.Engine) error {
		e.Clear()
		return nil
	})
}

func (s *Session) ClearEntry() types.State {
	return s.apply("clear_entry", func(e *calculator.Engine) error {
		e.ClearEntry()
		return nil
	})
}

func (s *Session) Percentage() types.State {
	return s.apply("percentage", func(e *calculator.Engine) error {
		e.Percentage()
		return nil
	})
}

// Press applies the button with the given label
func (s *Session) Press(label string) (types.State, error) {
	var err error
	state := s.apply("press", func(e *calculator.Engine) error {
		err = e.Press(label)
		return err
	})
	return state, err
}

// PressSequence applies the buttons in order. Every label is resolved before
// any is applied, so an unknown label leaves the state untouched.
func (s *Session) PressSequence(labels []string) (types.State, error) {
	buttons := make([]calculator.Button, 0, len(labels))
	for i, label := range labels {
		b, err := calculator.LookupButton(label)
		if err != nil {
			return s.State(), fmt.Errorf("failed to resolve button %d: %w", i+1, err)
		}
		buttons = append(buttons, b)
	}

	state := s.apply("press_sequence", func(e *calculator.Engine) error {
		for _, b := range buttons {
			b.Apply(e)
		}
		return nil
	})
	return state, nil
}

// State returns a snapshot of the calculator
func (s *Session) State() types.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.State()
}

// apply runs op under the lock, then notifies subscribers outside it
func (s *Session) apply(operation string, op func(*calculator.Engine) error) types.State {
	s.mu.Lock()
	err := op(s.engine)
	state := s.engine.State()
	changes := s.changes
	s.changes = nil
	subscribers := append([]subscriber(nil), s.subscribers...)
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	if err != nil {
		s.logger.Debug("Calculator operation rejected", "operation", operation, "error", err)
		return state
	}

	s.logger.Debug("Applied calculator operation",
		"operation", operation,
		"display", state.Display,
		"mode", state.Mode,
		"changes", len(changes))

	for _, change := range changes {
		for _, sub := range subscribers {
			sub.fn(change)
		}
	}
	return state
}
