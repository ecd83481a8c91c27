package harness

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/llxisdsh/atomwait"
)

// BarrierConfig configures [RunBarrier].
type BarrierConfig struct {
	// Parties is the number of goroutines meeting at the barrier.
	Parties int
	// Stagger delays party i by (Parties-i)*Stagger before it arrives, so
	// arrivals are spread out and in reverse spawn order.
	Stagger time.Duration
}

// Observation is the progress state of one barrier run. Each party bumps
// the counter right before it arrives; the observer and the parties read it.
type Observation struct {
	progress atomic.Int32

	mu          sync.Mutex
	transitions [][2]int32
}

// Arrive records one more arrival and returns the new progress value.
func (o *Observation) Arrive() int32 {
	return o.progress.Add(1)
}

// Progress returns the number of recorded arrivals.
func (o *Observation) Progress() int32 {
	return o.progress.Load()
}

func (o *Observation) saw(from, to int32) {
	o.mu.Lock()
	o.transitions = append(o.transitions, [2]int32{from, to})
	o.mu.Unlock()
}

// Transitions returns the progress changes the observer saw, in order.
func (o *Observation) Transitions() [][2]int32 {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([][2]int32(nil), o.transitions...)
}

// BarrierResult is what a barrier run observed.
type BarrierResult struct {
	// Transitions are the (from, to) progress changes seen by the observer.
	Transitions [][2]int32
	// Waits is the time each party spent inside Barrier.Wait.
	Waits []time.Duration
	// Released is the progress value each party read right after release.
	Released []int32
}

// RunBarrier meets cfg.Parties goroutines at one Barrier while an observer
// goroutine watches the shared progress counter.
//
// Once started, a run cannot be abandoned: a party that never arrives would
// leave the others parked. ctx is only checked before the run starts.
func RunBarrier(ctx context.Context, cfg BarrierConfig, rep *Reporter) (*BarrierResult, error) {
	if cfg.Parties < 1 {
		return nil, fmt.Errorf("%w: parties must be positive, got %d", ErrInvalidConfig, cfg.Parties)
	}
	if cfg.Stagger < 0 {
		return nil, fmt.Errorf("%w: negative stagger %s", ErrInvalidConfig, cfg.Stagger)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "starting barrier run", "parties", cfg.Parties, "stagger", cfg.Stagger)

	obs := &Observation{}
	barrier := atomwait.NewBarrier(cfg.Parties)
	res := &BarrierResult{
		Waits:    make([]time.Duration, cfg.Parties),
		Released: make([]int32, cfg.Parties),
	}

	var g errgroup.Group
	g.Go(func() error {
		observe(obs, int32(cfg.Parties), rep)
		return nil
	})
	for i := range cfg.Parties {
		g.Go(func() error {
			time.Sleep(time.Duration(cfg.Parties-i) * cfg.Stagger)
			obs.Arrive()

			start := time.Now()
			barrier.Wait()
			res.Waits[i] = time.Since(start)
			rep.Printf("waited %s for barrier", res.Waits[i])

			res.Released[i] = obs.Progress()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Transitions = obs.Transitions()
	for i, v := range res.Released {
		rep.Printf("party %d released with progress %d", i, v)
	}
	if err := rep.Err(); err != nil {
		return res, err
	}

	return res, checkBarrier(res, int32(cfg.Parties))
}

// observe polls the progress counter until every party has arrived,
// reporting each change it sees.
func observe(obs *Observation, parties int32, rep *Reporter) {
	var last int32
	for last < parties {
		cur := obs.Progress()
		if cur == last {
			runtime.Gosched()
			continue
		}
		obs.saw(last, cur)
		rep.Printf("saw change: %d -> %d", last, cur)
		last = cur
	}
}

func checkBarrier(res *BarrierResult, parties int32) error {
	for i, v := range res.Released {
		if v != parties {
			return fmt.Errorf("%w: party %d saw progress %d of %d", ErrEarlyRelease, i, v, parties)
		}
	}
	for _, tr := range res.Transitions {
		if tr[1] < tr[0] {
			return fmt.Errorf("%w: progress went from %d to %d", ErrOutOfOrder, tr[0], tr[1])
		}
	}
	return nil
}
