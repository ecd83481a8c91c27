package harness

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/llxisdsh/atomwait"
)

// Lockers maps the lock names the harness knows to constructors.
// "sync" is the standard library mutex, kept as a baseline.
var Lockers = map[string]func() sync.Locker{
	"spin":   func() sync.Locker { return &atomwait.SpinMutex{} },
	"ticket": func() sync.Locker { return &atomwait.TicketMutex{} },
	"sync":   func() sync.Locker { return &sync.Mutex{} },
}

// LockerNames returns the keys of [Lockers] in a stable order.
func LockerNames() []string {
	names := make([]string, 0, len(Lockers))
	for name := range Lockers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LockConfig configures [RunLocks].
type LockConfig struct {
	// Locks are names from [Lockers].
	Locks []string
	// Threads are the goroutine counts to run each lock with. 0 stands for
	// runtime.GOMAXPROCS(0).
	Threads []int
	// Sections is the total number of critical sections per run, split
	// evenly between the goroutines.
	Sections int
}

// LockResult is one timed run of one lock.
type LockResult struct {
	Lock     string
	Threads  int
	Sections int
	Elapsed  time.Duration
}

// NsPerSection returns the mean wall time per critical section.
func (r LockResult) NsPerSection() float64 {
	if r.Sections == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Sections)
}

func (c LockConfig) validate() error {
	if c.Sections < 1 {
		return fmt.Errorf("%w: sections must be positive, got %d", ErrInvalidConfig, c.Sections)
	}
	if len(c.Locks) == 0 || len(c.Threads) == 0 {
		return fmt.Errorf("%w: need at least one lock and one thread count", ErrInvalidConfig)
	}
	for _, name := range c.Locks {
		if _, ok := Lockers[name]; !ok {
			return fmt.Errorf("%w: unknown lock %q, want one of %v", ErrInvalidConfig, name, LockerNames())
		}
	}
	if slices.ContainsFunc(c.Threads, func(n int) bool { return n < 0 }) {
		return fmt.Errorf("%w: negative thread count in %v", ErrInvalidConfig, c.Threads)
	}
	return nil
}

// RunLocks times every lock in cfg.Locks with every goroutine count in
// cfg.Threads. Each run checks that the counter incremented inside the
// critical section ends at exactly the number of sections executed.
//
// ctx is checked between runs.
func RunLocks(ctx context.Context, cfg LockConfig, rep *Reporter) ([]LockResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var results []LockResult
	for _, name := range cfg.Locks {
		for _, threads := range cfg.Threads {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			if threads == 0 {
				threads = runtime.GOMAXPROCS(0)
			}
			res, err := runLock(name, Lockers[name](), threads, cfg.Sections)
			if err != nil {
				return results, err
			}
			slog.DebugContext(ctx, "lock run done",
				"lock", res.Lock, "threads", res.Threads, "elapsed", res.Elapsed)
			rep.Printf("%s threads=%d sections=%d %.1f ns/section",
				res.Lock, res.Threads, res.Sections, res.NsPerSection())
			results = append(results, res)
		}
	}
	return results, rep.Err()
}

func runLock(name string, l sync.Locker, threads, sections int) (LockResult, error) {
	per := max(sections/threads, 1)
	total := per * threads

	var counter int
	var g errgroup.Group
	start := time.Now()
	for range threads {
		g.Go(func() error {
			for range per {
				l.Lock()
				counter++
				l.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return LockResult{}, err
	}
	elapsed := time.Since(start)

	if counter != total {
		return LockResult{}, fmt.Errorf("%w: %s with %d goroutines counted %d, want %d",
			ErrCounterMismatch, name, threads, counter, total)
	}
	return LockResult{Lock: name, Threads: threads, Sections: total, Elapsed: elapsed}, nil
}
