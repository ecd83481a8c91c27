// Package atomwait provides goroutine synchronization primitives built on
// atomic words and an address-keyed wait/notify facility.
package atomwait

import (
	"unsafe"

	"github.com/llxisdsh/atomwait/internal/futex"
	"github.com/llxisdsh/atomwait/internal/opt"
)

// Word is the set of 32-bit integer types a goroutine can wait on.
type Word interface {
	~int32 | ~uint32
}

// Wait blocks the calling goroutine only while *addr still equals old.
//
// It may return without a matching notify, so it is a condition re-check
// helper, not a semaphore: callers must re-evaluate their condition after
// every return. If *addr already differs from old, Wait returns at once,
// which closes the window between the caller's load and its park.
//
// All sync/atomic operations are sequentially consistent, so a store made
// before NotifyOne/NotifyAll is visible to the goroutine it wakes.
func Wait[T Word](addr *T, old T) {
	futex.Wait(asUint32(addr), uint32(old))
}

// NotifyOne wakes at least one goroutine blocked in Wait on addr, if any.
func NotifyOne[T Word](addr *T) {
	futex.Wake(asUint32(addr), 1)
}

// NotifyAll wakes every goroutine blocked in Wait on addr.
func NotifyAll[T Word](addr *T) {
	futex.Wake(asUint32(addr), futex.All)
}

func asUint32[T Word](addr *T) *uint32 {
	return (*uint32)(unsafe.Pointer(addr))
}

// waitFor is the retry loop behind every primitive in this package.
//
// try makes one atomic transition attempt and returns the value it observed
// at addr together with whether the attempt succeeded. On failure the
// goroutine optionally spins a few rounds, then parks until addr moves away
// from the observed value, and tries again from the top.
func waitFor[T Word](addr *T, spin bool, try func() (T, bool)) {
	var spins int
	for {
		v, ok := try()
		if ok {
			return
		}
		if spin && opt.TrySpin(&spins) {
			continue
		}
		Wait(addr, v)
		spins = 0
	}
}

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
