package atomwait

import (
	"math"
	"sync/atomic"
)

// Barrier is a one-shot rendezvous point for a fixed number of parties.
//
// Every party calls Wait exactly once. No call returns until all parties
// have called Wait; then all of them are released, in no particular order.
//
// A Barrier is single-use: it has no generation counter, so it cannot be
// reset. Calling Wait more than count times is a caller error; such calls
// return immediately.
//
// Size: 4 bytes (one signed counter).
type Barrier struct {
	_ noCopy
	// count is the number of parties still to arrive. It only ever goes
	// down; once it reaches 0 the round is over.
	count int32
}

// NewBarrier creates a Barrier for count parties.
//
// panic if count <= 0.
func NewBarrier(count int) *Barrier {
	if count <= 0 || count > math.MaxInt32 {
		panic("atomwait: barrier count out of range")
	}
	b := &Barrier{}
	atomic.StoreInt32(&b.count, int32(count))
	return b
}

// Wait blocks until all parties have called Wait.
//
// The last party to arrive never parks; it alone wakes the others.
func (b *Barrier) Wait() {
	newCount := atomic.AddInt32(&b.count, -1)

	waitFor(&b.count, false, func() (int32, bool) {
		v := atomic.LoadInt32(&b.count)
		return v, v <= 0
	})

	if newCount < 1 {
		NotifyAll(&b.count)
	}
}

// Pending returns how many parties have not arrived yet.
func (b *Barrier) Pending() int {
	return max(int(atomic.LoadInt32(&b.count)), 0)
}
