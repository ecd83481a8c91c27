package harness

import (
	"fmt"
	"io"

	"github.com/llxisdsh/atomwait"
)

// Reporter serializes report lines from concurrent goroutines onto one
// writer. Lines are emitted in the order goroutines reach the reporter.
type Reporter struct {
	mu  atomwait.TicketMutex
	w   io.Writer
	err error
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Printf writes one line. The first write error is kept and later lines are
// dropped.
func (r *Reporter) Printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.w, format+"\n", args...); err != nil {
		r.err = fmt.Errorf("write report: %w", err)
	}
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.err
}
