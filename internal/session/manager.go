package session

import (
	"log/slog"
	"sync"

	"github.com/averycrespi/calc-mcp/internal/logging"
)

// Manager manages the lifecycle of the shared calculator session
type Manager struct {
	session     *Session
	logger      *slog.Logger
	initialized bool
	mu          sync.RWMutex
}

// NewManager creates a new session manager
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Manager{
		logger: logger,
	}
}

// Initialize creates the session if it does not exist yet
func (m *Manager) Initialize() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return m.session
	}

	m.logger.Debug("Initializing calculator session")
	m.session = New(m.logger)
	m.initialized = true
	return m.session
}

// GetSession returns the session, or nil before Initialize
func (m *Manager) GetSession() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return nil
	}

	return m.session
}

// Shutdown drops the session; the next Initialize starts from a cleared calculator
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.logger.Debug("Shutting down calculator session", "display", m.session.State().Display)
	m.initialized = false
	m.session = nil
}

// IsInitialized returns whether the session exists
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.initialized
}
