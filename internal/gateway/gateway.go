package gateway

import (
	"fmt"
)

// Gateway sends one command with ordered string arguments to the node/wallet
// CLI and returns its trimmed stdout. Implementations launch one subprocess
// per call, perform no retries, and do not interpret the response body.
type Gateway interface {
	Invoke(command string, args ...string) (string, error)
}

// Error is returned when the underlying process could not be launched or
// exited non-zero. Output carries the captured stderr text so the operator
// sees the CLI's own diagnostic.
type Error struct {
	Command string
	Output  string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s failed: %s", e.Command, e.Output)
	}
	return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying process error.
func (e *Error) Unwrap() error {
	return e.Err
}
