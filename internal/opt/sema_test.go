package opt

import (
	"sync"
	"testing"
	"time"
	"unsafe"
)

func TestSemaBlocksUntilRelease(t *testing.T) {
	var s Sema

	done := make(chan struct{})
	go func() {
		s.Acquire()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Acquire returned before Release")
	case <-time.After(50 * time.Millisecond):
	}

	s.Release()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Acquire did not return after Release")
	}
}

func TestSemaReleaseBeforeAcquire(t *testing.T) {
	var s Sema
	s.Release()
	// The banked permit is consumed without parking.
	s.Acquire()
}

func TestSemaManyWaiters(t *testing.T) {
	var s Sema
	const n = 10

	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			s.Acquire()
		}()
	}

	time.Sleep(50 * time.Millisecond)
	for range n {
		s.Release()
	}

	ch := make(chan struct{})
	go func() {
		wg.Wait()
		close(ch)
	}()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("not all waiters woke up")
	}
}

func TestTrySpinBounded(t *testing.T) {
	var spins int
	for i := 0; TrySpin(&spins); i++ {
		if i > 1000 {
			t.Fatal("TrySpin never gave up")
		}
	}
	if spins < 0 {
		t.Fatalf("spins = %d", spins)
	}
}

func TestUint32Padding(t *testing.T) {
	var w Uint32_
	size := unsafe.Sizeof(w)
	if size != 4 && size%CacheLineSize_ != 0 {
		t.Fatalf("Uint32_ size = %d, want 4 or a multiple of %d", size, CacheLineSize_)
	}
}
