package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs name with args and returns its stdout. Stdout captured
	// before a failure is returned alongside the error.
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
