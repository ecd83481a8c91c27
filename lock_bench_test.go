package atomwait

import (
	"sync"
	"testing"
)

func BenchmarkSpinMutex(b *testing.B) {
	var m SpinMutex
	benchmarkLocker(b, &m)
}

func BenchmarkTicketMutex(b *testing.B) {
	var m TicketMutex
	benchmarkLocker(b, &m)
}

func BenchmarkSyncMutex(b *testing.B) {
	var m sync.Mutex
	benchmarkLocker(b, &m)
}

func benchmarkLocker(b *testing.B, l sync.Locker) {
	b.ReportAllocs()
	var counter int
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Lock()
			counter++
			l.Unlock()
		}
	})
	if counter != b.N {
		b.Fatalf("counter = %d, want %d", counter, b.N)
	}
}

func BenchmarkBarrier(b *testing.B) {
	const parties = 8
	b.ReportAllocs()
	for b.Loop() {
		bar := NewBarrier(parties)
		var wg sync.WaitGroup
		wg.Add(parties)
		for range parties {
			go func() {
				defer wg.Done()
				bar.Wait()
			}()
		}
		wg.Wait()
	}
}
