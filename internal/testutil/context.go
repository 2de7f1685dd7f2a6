package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds tests that run subprocesses.
const DefaultTimeout = 10 * time.Second

// Context returns a context cancelled when the test ends or the timeout passes,
// whichever comes first.
func Context(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
