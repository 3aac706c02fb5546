package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/averycrespi/calc-mcp/internal/logging"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/internal/transport"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	// DisplayResourceURI is the resource holding the current display as plain text
	DisplayResourceURI = "calculator://display"

	// NotificationDisplayChanged is sent to every client after each state change
	NotificationDisplayChanged = "notifications/calculator/display_changed"
)

const instructions = "A keypad calculator with one display and one pending operation. " +
	"Press buttons with calculator.press_button or calculator.press_sequence, " +
	"or drive the engine directly with press_digit, select_operator and evaluate. " +
	"Pressing a second operator replaces the first without evaluating it."

var _ types.Server = &CalculatorServer{}

// CalculatorServer represents the calculator MCP server
type CalculatorServer struct {
	mcpServer    *server.MCPServer
	manager      *session.Manager
	subscription string
	config       types.Config
	logger       *slog.Logger
	feed         *transport.FeedWriter
	stdin        io.Reader
	stdout       io.Writer
}

// Option configures a CalculatorServer
type Option func(*CalculatorServer)

// WithFeed publishes every state change to the given display feed
func WithFeed(feed *transport.FeedWriter) Option {
	return func(s *CalculatorServer) {
		s.feed = feed
	}
}

// WithStdio replaces os.Stdin and os.Stdout for the stdio transport
func WithStdio(stdin io.Reader, stdout io.Writer) Option {
	return func(s *CalculatorServer) {
		s.stdin = stdin
		s.stdout = stdout
	}
}

// NewCalculatorServer creates a new calculator MCP server
func NewCalculatorServer(config types.Config, logger *slog.Logger, opts ...Option) *CalculatorServer {
	if logger == nil {
		logger = logging.Discard()
	}

	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(true, false),
		server.WithInstructions(instructions),
		server.WithRecovery(),
	)

	s := &CalculatorServer{
		mcpServer: mcpServer,
		manager:   session.NewManager(logger),
		config:    config,
		logger:    logger,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	calc := s.manager.Initialize()
	s.subscription = calc.Subscribe(s.onStateChange)
	s.registerTools(calc)
	s.registerResources(calc)

	return s
}

// Session returns the calculator session shared by every client
func (s *CalculatorServer) Session() *session.Session {
	return s.manager.GetSession()
}

// Start serves MCP on the configured transport until ctx is done
func (s *CalculatorServer) Start(ctx context.Context) error {
	s.logger.Info("Starting calculator MCP server",
		"transport", s.config.Transport,
		"addr", s.config.Addr,
		"version", project.Version)

	switch s.config.Transport {
	case "", types.TransportStdio:
		return s.serveStdio(ctx)
	case types.TransportSSE:
		sseServer := server.NewSSEServer(s.mcpServer)
		return s.serveHTTP(ctx, sseServer.Start, sseServer.Shutdown)
	case types.TransportStreamableHTTP:
		httpServer := server.NewStreamableHTTPServer(s.mcpServer)
		return s.serveHTTP(ctx, httpServer.Start, httpServer.Shutdown)
	default:
		return fmt.Errorf("unknown transport: %s", s.config.Transport)
	}
}

func (s *CalculatorServer) serveStdio(ctx context.Context) error {
	stdioServer := server.NewStdioServer(s.mcpServer)
	stdioServer.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	if err := stdioServer.Listen(ctx, s.stdin, s.stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to serve MCP over stdio: %w", err)
	}
	return nil
}

func (s *CalculatorServer) serveHTTP(ctx context.Context, start func(string) error, shutdown func(context.Context) error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- start(s.config.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve MCP over %s: %w", s.config.Transport, err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Debug("Context done, shutting down MCP HTTP transport", "transport", s.config.Transport)
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			return fmt.Errorf("failed to shut down MCP %s transport: %w", s.config.Transport, err)
		}
		return nil
	}
}

func (s *CalculatorServer) registerTools(calc types.Calculator) {
	for _, tool := range tools.All(calc) {
		s.mcpServer.AddTool(tool.GetTool(), tool.Handle)
	}
}

func (s *CalculatorServer) registerResources(calc types.Calculator) {
	resource := mcp.NewResource(DisplayResourceURI, "Calculator display",
		mcp.WithResourceDescription("The value currently shown on the calculator display"),
		mcp.WithMIMEType("text/plain"),
	)

	s.mcpServer.AddResource(resource, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      DisplayResourceURI,
				MIMEType: "text/plain",
				Text:     calc.State().Display,
			},
		}, nil
	})
}

// onStateChange forwards a state change to MCP clients and the display feed
func (s *CalculatorServer) onStateChange(state types.State) {
	params := map[string]any{
		"display": state.Display,
		"mode":    string(state.Mode),
	}
	if state.Operator != types.OperatorNone {
		params["operator"] = string(state.Operator)
	}
	if state.Previous != nil {
		params["previous"] = *state.Previous
	}

	s.mcpServer.SendNotificationToAllClients(NotificationDisplayChanged, params)
	s.mcpServer.SendNotificationToAllClients(mcp.MethodNotificationResourceUpdated, map[string]any{
		"uri": DisplayResourceURI,
	})

	if s.feed != nil {
		if err := s.feed.Publish(state); err != nil {
			logging.LogError(s.logger, "failed to publish display change", err,
				slog.String("display", state.Display),
				slog.String("component", "display_feed"))
		}
	}
}

// Shutdown detaches the server from the calculator session
func (s *CalculatorServer) Shutdown(ctx context.Context) error {
	if !s.manager.IsInitialized() {
		return nil
	}

	if calc := s.manager.GetSession(); calc != nil {
		calc.Unsubscribe(s.subscription)
	}
	s.manager.Shutdown()

	s.logger.Info("Calculator MCP server stopped")
	return nil
}
