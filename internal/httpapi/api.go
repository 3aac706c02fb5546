// Package httpapi serves the calculator keypad over a small JSON REST API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/averycrespi/calc-mcp/internal/logging"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/julienschmidt/httprouter"
)

const shutdownTimeout = 5 * time.Second

var _ types.Server = &Server{}

// API holds the handlers of the REST keypad
type API struct {
	calc   *session.Session
	logger *slog.Logger
}

// New creates the REST keypad for a calculator session. A nil logger discards logs.
func New(calc *session.Session, logger *slog.Logger) *API {
	if logger == nil {
		logger = logging.Discard()
	}
	return &API{
		calc:   calc,
		logger: logger,
	}
}

// Routes returns the router wrapped in request logging
func (api *API) Routes() http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(api.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, v any) {
		api.serverErrorResponse(w, r, fmt.Errorf("panic: %v", v))
	}

	router.HandlerFunc(http.MethodGet, "/v1/state", api.stateHandler)
	router.HandlerFunc(http.MethodGet, "/v1/buttons", api.buttonsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/buttons/:label", api.pressButtonHandler)
	router.HandlerFunc(http.MethodPost, "/v1/sequence", api.pressSequenceHandler)
	router.HandlerFunc(http.MethodPost, "/v1/clear", api.clearHandler)

	return NewRequestLoggingMiddleware(api.logger)(router)
}

// Server runs the REST keypad on an address
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a server for api listening on addr
func NewServer(addr string, api *API, logger *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           api.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
		logger: logger,
	}
}

// Start serves until ctx is done or the listener fails
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting REST keypad", "addr", s.httpServer.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve REST keypad: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down REST keypad: %w", err)
	}
	s.logger.Info("REST keypad stopped")
	return nil
}
