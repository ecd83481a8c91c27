package opt

import (
	_ "unsafe" // for linkname
)

// TrySpin performs one round of active spinning if the runtime allows it
// (multicore, idle Ps, few prior spins). It reports false once spinning
// should stop, and resets nothing: the caller owns the counter.
func TrySpin(spins *int) bool {
	if runtime_canSpin(*spins) {
		*spins++
		runtime_doSpin()
		return true
	}
	return false
}

// nolint:all
//
//go:linkname runtime_canSpin sync.runtime_canSpin
//goland:noinspection ALL
func runtime_canSpin(i int) bool

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//goland:noinspection ALL
func runtime_doSpin()
