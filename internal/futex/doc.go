// Package futex provides an address-keyed wait/wake facility for 32-bit
// words.
//
// Wait parks the caller only while the word still holds the expected value,
// and Wake releases goroutines parked on the same address. Like the kernel
// facility it is named after, Wait may return without a matching Wake;
// callers re-check their condition in a loop.
//
// Two backends exist:
//   - the default parking table, which parks goroutines on runtime
//     semaphores and never leaves the Go scheduler;
//   - on Linux with the atomwait_futex build tag, the futex(2) syscall.
//     Use: go build -tags=atomwait_futex
package futex

// All is passed to Wake to release every waiter on an address.
const All = -1
