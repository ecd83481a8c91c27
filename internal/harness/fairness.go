package harness

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/llxisdsh/atomwait"
)

// FairnessConfig configures [RunFairness].
type FairnessConfig struct {
	// Contenders is the number of goroutines queued behind the holder.
	Contenders int
}

// FairnessResult records ticket order against critical-section entry order.
type FairnessResult struct {
	Issued  []int
	Entered []int
}

// FIFO reports whether every contender entered in the order its ticket was
// issued.
func (r *FairnessResult) FIFO() bool {
	if len(r.Issued) != len(r.Entered) {
		return false
	}
	for i := range r.Issued {
		if r.Issued[i] != r.Entered[i] {
			return false
		}
	}
	return true
}

// RunFairness queues cfg.Contenders goroutines on a held TicketMutex, one
// ticket at a time so the issue order is known, then releases the lock and
// records the order in which they enter.
//
// If ctx is cancelled while contenders are queueing, no more are started and
// the ones already queued are drained before returning.
func RunFairness(ctx context.Context, cfg FairnessConfig, rep *Reporter) (*FairnessResult, error) {
	if cfg.Contenders < 1 {
		return nil, fmt.Errorf("%w: contenders must be positive, got %d", ErrInvalidConfig, cfg.Contenders)
	}

	var mu atomwait.TicketMutex
	res := &FairnessResult{}

	mu.Lock()
	var g errgroup.Group
	var cancelled error
	for id := range cfg.Contenders {
		if cancelled = ctx.Err(); cancelled != nil {
			break
		}
		g.Go(func() error {
			mu.Lock()
			res.Entered = append(res.Entered, id)
			mu.Unlock()
			return nil
		})
		// Wait for this contender's ticket before issuing the next one.
		for mu.Queued() != id+2 {
			runtime.Gosched()
		}
		res.Issued = append(res.Issued, id)
	}
	mu.Unlock()

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if cancelled != nil {
		return res, cancelled
	}

	rep.Printf("ticket contenders=%d fifo=%t", cfg.Contenders, res.FIFO())
	if err := rep.Err(); err != nil {
		return res, err
	}
	if !res.FIFO() {
		return res, fmt.Errorf("%w: entered %v, issued %v", ErrOutOfOrder, res.Entered, res.Issued)
	}
	return res, nil
}
