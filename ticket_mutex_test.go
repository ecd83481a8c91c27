package atomwait

import (
	"sync"
	"testing"
	"time"
	"unsafe"

	"github.com/llxisdsh/atomwait/internal/opt"
)

var _ sync.Locker = (*TicketMutex)(nil)

func TestTicketMutexCountersOnSeparateLines(t *testing.T) {
	var m TicketMutex
	if unsafe.Sizeof(opt.Uint32_{}) == 4 {
		t.Skip("padding disabled")
	}
	dist := unsafe.Offsetof(m.serving) - unsafe.Offsetof(m.issued)
	if dist < opt.CacheLineSize_ {
		t.Errorf("issued and serving are %d bytes apart, want >= %d", dist, opt.CacheLineSize_)
	}
}

func TestTicketMutex(t *testing.T) {
	var m TicketMutex
	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	var counter int64
	for range n {
		go func() {
			defer wg.Done()
			m.Lock()
			counter++
			m.Unlock()
		}()
	}
	wg.Wait()
	if counter != n {
		t.Fatalf("counter = %d, want %d", counter, n)
	}
	if q := m.Queued(); q != 0 {
		t.Fatalf("Queued = %d, want 0", q)
	}
}

func TestTicketMutexExclusion(t *testing.T) {
	var m TicketMutex
	testExclusion(t, &m)
}

func TestTicketMutexTryLock(t *testing.T) {
	var m TicketMutex
	if !m.TryLock() {
		t.Fatal("TryLock failed on an unlocked mutex")
	}
	if m.TryLock() {
		t.Fatal("TryLock succeeded on a locked mutex")
	}
	if q := m.Queued(); q != 1 {
		t.Fatalf("Queued = %d, want 1", q)
	}
	m.Unlock()
	m.Lock()
	m.Unlock()
	if !m.TryLock() {
		t.Fatal("TryLock failed after Unlock")
	}
	m.Unlock()
}

func TestTicketMutexFIFO(t *testing.T) {
	const n = 32
	var m TicketMutex
	m.Lock()

	// Each goroutine takes its ticket only after the previous one has, so
	// ticket order is the spawn order.
	var entered []int
	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		go func() {
			defer wg.Done()
			m.Lock()
			entered = append(entered, i)
			m.Unlock()
		}()
		deadline := time.Now().Add(5 * time.Second)
		for m.Queued() != i+2 {
			if time.Now().After(deadline) {
				t.Fatalf("goroutine %d never took a ticket", i)
			}
			time.Sleep(100 * time.Microsecond)
		}
	}

	m.Unlock()
	wg.Wait()

	for i, id := range entered {
		if id != i {
			t.Fatalf("entry order %v, want ticket order", entered)
		}
	}
}

func TestTicketMutexWrap(t *testing.T) {
	var m TicketMutex
	m.issued.V = ^uint32(0) - 1
	m.serving.V = ^uint32(0) - 1

	var counter int
	var wg sync.WaitGroup
	wg.Add(8)
	for range 8 {
		go func() {
			defer wg.Done()
			for range 10 {
				m.Lock()
				counter++
				m.Unlock()
			}
		}()
	}
	wg.Wait()
	if counter != 80 {
		t.Fatalf("counter = %d, want 80", counter)
	}
}
