//go:build !(linux && atomwait_futex)

package futex

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/llxisdsh/atomwait/internal/opt"
)

// tableSize is prime so that word-aligned addresses spread over all buckets.
const tableSize = 251

type waiter struct {
	addr *uint32
	prev *waiter
	next *waiter
	sema opt.Sema
}

type bucket struct {
	// nwait is the number of parked waiters. Read without the lock so Wake
	// can skip the bucket entirely in the uncontended case.
	nwait atomic.Int32
	mu    sync.Mutex
	head  *waiter
	tail  *waiter
}

type paddedBucket struct {
	bucket
	_ [(opt.CacheLineSize_ - unsafe.Sizeof(bucket{})%opt.CacheLineSize_) % opt.CacheLineSize_]byte
}

var table [tableSize]paddedBucket

func bucketOf(addr *uint32) *bucket {
	return &table[(uintptr(unsafe.Pointer(addr))>>3)%tableSize].bucket
}

// Wait blocks while *addr == val.
func Wait(addr *uint32, val uint32) {
	b := bucketOf(addr)
	// Announce before the value check: a waker that stores a new value and
	// then reads nwait == 0 is ordered before us, so we see its store.
	b.nwait.Add(1)
	b.mu.Lock()
	if atomic.LoadUint32(addr) != val {
		b.nwait.Add(-1)
		b.mu.Unlock()
		return
	}
	// Waiters are not reused; Wake reads w.next outside the bucket lock.
	w := &waiter{addr: addr}
	b.push(w)
	b.mu.Unlock()

	w.sema.Acquire()
}

// Wake releases up to n goroutines parked on addr, oldest first, and returns
// how many were released. n == All releases every one of them.
func Wake(addr *uint32, n int) int {
	if n == 0 {
		return 0
	}
	b := bucketOf(addr)
	if b.nwait.Load() == 0 {
		return 0
	}

	var head, tail *waiter
	woken := 0
	b.mu.Lock()
	for w := b.head; w != nil && woken != n; {
		next := w.next
		if w.addr == addr {
			b.remove(w)
			if tail == nil {
				head = w
			} else {
				tail.next = w
			}
			tail = w
			woken++
		}
		w = next
	}
	b.nwait.Add(-int32(woken))
	b.mu.Unlock()

	// next is read before Release; the waiter may return right after it.
	for w := head; w != nil; {
		next := w.next
		w.sema.Release()
		w = next
	}
	return woken
}

// Waiters reports how many goroutines are parked on addr.
func Waiters(addr *uint32) int {
	b := bucketOf(addr)
	if b.nwait.Load() == 0 {
		return 0
	}
	n := 0
	b.mu.Lock()
	for w := b.head; w != nil; w = w.next {
		if w.addr == addr {
			n++
		}
	}
	b.mu.Unlock()
	return n
}

func (b *bucket) push(w *waiter) {
	w.next = nil
	w.prev = b.tail
	if b.tail == nil {
		b.head = w
	} else {
		b.tail.next = w
	}
	b.tail = w
}

func (b *bucket) remove(w *waiter) {
	if w.prev == nil {
		b.head = w.next
	} else {
		w.prev.next = w.next
	}
	if w.next == nil {
		b.tail = w.prev
	} else {
		w.next.prev = w.prev
	}
	w.prev = nil
	w.next = nil
}
