// Package harness drives the atomwait primitives from many goroutines,
// checks the properties each one promises, and reports what it saw as
// line-oriented text.
//
// Every scenario owns its observation state; nothing is shared between runs.
package harness

import "errors"

var (
	// ErrInvalidConfig is returned for a scenario configuration that cannot run.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrEarlyRelease means a barrier party returned before all parties arrived.
	ErrEarlyRelease = errors.New("barrier released early")
	// ErrOutOfOrder means an observed sequence broke its ordering guarantee.
	ErrOutOfOrder = errors.New("out of order")
	// ErrCounterMismatch means a lock-protected counter lost updates.
	ErrCounterMismatch = errors.New("counter mismatch")
)
