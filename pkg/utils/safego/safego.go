// Package safego runs goroutines with panic recovery.
package safego

import (
	"context"
	"runtime/debug"

	"github.com/openearth/catalyst/pkg/logger"
)

// Go runs fn in a new goroutine and turns a panic into an error log
// instead of crashing the process.
func Go(ctx context.Context, fn func()) {
	go func() {
		defer Recover(ctx)
		fn()
	}()
}

// Recover is intended for use in a defer; it logs the panic and stack.
func Recover(_ context.Context) {
	if r := recover(); r != nil {
		logger.Error("goroutine panic: %v\n%s", r, debug.Stack())
	}
}
