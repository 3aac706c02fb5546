package types

import "context"

// Server defines a keypad surface that serves until its context is done
type Server interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
