package atomwait

import (
	"sync/atomic"

	"github.com/llxisdsh/atomwait/internal/opt"
)

// TicketMutex is a fair, FIFO (First-In-First-Out) exclusive lock.
//
// Unlike sync.Mutex and SpinMutex, which allow "barging" (newcomers can steal
// the lock), TicketMutex guarantees that goroutines acquire the lock in the
// exact order they called Lock().
//
// Implementation:
// It uses the classic "ticket" algorithm.
//   - Lock(): Takes a ticket from `issued`. Parks on `serving` until
//     `serving` == `my_ticket`.
//   - Unlock(): Increments `serving` and wakes every parked goroutine.
//
// Trade-offs:
//   - Pros: Strict fairness; no contender starves.
//   - Cons: Each Unlock wakes all waiters, because they wait for different
//     values of the same word. All of them re-check and exactly one
//     proceeds, so the wake fan-out of a release is O(waiters).
//
// The two counters live on separate cache lines so that arriving goroutines
// taking tickets do not disturb the goroutines watching `serving`.
// Counters wrap at 2^32, which only matters with 2^32 simultaneous
// contenders.
type TicketMutex struct {
	_       noCopy
	issued  opt.Uint32_
	serving opt.Uint32_
}

// Lock acquires the lock. Blocks until every goroutine that called Lock
// earlier has acquired and released it.
func (m *TicketMutex) Lock() {
	my := atomic.AddUint32(&m.issued.V, 1) - 1
	waitFor(&m.serving.V, true, func() (uint32, bool) {
		now := atomic.LoadUint32(&m.serving.V)
		return now, now == my
	})
}

// TryLock acquires the lock only if nobody holds it or waits for it, and
// reports whether it did.
func (m *TicketMutex) TryLock() bool {
	now := atomic.LoadUint32(&m.serving.V)
	return atomic.CompareAndSwapUint32(&m.issued.V, now, now+1)
}

// Unlock releases the lock to the next ticket.
func (m *TicketMutex) Unlock() {
	atomic.AddUint32(&m.serving.V, 1)
	NotifyAll(&m.serving.V)
}

// Queued returns the number of goroutines holding or waiting for the lock.
// It is a snapshot and may be stale by the time it returns.
func (m *TicketMutex) Queued() int {
	serving := atomic.LoadUint32(&m.serving.V)
	issued := atomic.LoadUint32(&m.issued.V)
	return int(issued - serving)
}
