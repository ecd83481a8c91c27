package atomwait

import (
	"sync/atomic"
)

// SpinMutex is a minimal exclusive lock over a single word.
//
// Lock swaps 1 into the word until a swap finds it 0. A loser spins briefly
// when the runtime allows it, then parks on the word until an Unlock
// notifies it.
//
// SpinMutex is not fair: a newcomer can take the lock ahead of a parked
// goroutine that has just been woken (barging). Use TicketMutex when order
// of arrival matters.
//
// It is not reentrant. Locking it twice from the same goroutine without an
// Unlock in between deadlocks.
//
// It is zero-value usable. Size: 4 bytes.
type SpinMutex struct {
	_ noCopy
	// state is 0 when unlocked, 1 when locked.
	state uint32
}

// Lock acquires the lock. Blocks until the lock is available.
func (m *SpinMutex) Lock() {
	waitFor(&m.state, true, func() (uint32, bool) {
		prev := atomic.SwapUint32(&m.state, 1)
		return prev, prev == 0
	})
}

// TryLock tries to acquire the lock without blocking and reports whether it
// succeeded.
func (m *SpinMutex) TryLock() bool {
	return atomic.CompareAndSwapUint32(&m.state, 0, 1)
}

// Unlock releases the lock and wakes one parked goroutine, if any.
//
// panic if m is not locked.
func (m *SpinMutex) Unlock() {
	if atomic.SwapUint32(&m.state, 0) == 0 {
		panic("atomwait: unlock of unlocked SpinMutex")
	}
	NotifyOne(&m.state)
}
