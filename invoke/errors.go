package invoke

import (
	"errors"
	"fmt"
)

// Sentinel errors for invocation failures.
var (
	// ErrTimeout is returned when the process did not exit within its
	// wall-clock budget. Never auto-retried.
	ErrTimeout = errors.New("invoke: command timed out")

	// ErrOutputTooLarge is returned when combined stdout+stderr exceeded
	// the configured ceiling. The invocation fails rather than silently
	// truncating, to avoid returning misleading partial data.
	ErrOutputTooLarge = errors.New("invoke: command output exceeds limit")
)

// ExitError is returned when the process ran but exited nonzero. It
// carries the exit code and the captured stderr verbatim.
type ExitError struct {
	Code   int
	Stderr string
}

// Error returns the exit code and stderr text.
func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("invoke: command exited with status %d", e.Code)
	}
	return fmt.Sprintf("invoke: command exited with status %d: %s", e.Code, e.Stderr)
}
