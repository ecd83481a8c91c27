//go:build linux && atomwait_futex

package futex

import (
	"math"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	futexWait    = 0
	futexWake    = 1
	futexPrivate = 128
)

// Wait blocks while *addr == val.
// EAGAIN (value already changed) and EINTR are both ordinary early returns.
func Wait(addr *uint32, val uint32) {
	_, _, _ = unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		futexWait|futexPrivate,
		uintptr(val),
		0, 0, 0)
}

// Wake releases up to n goroutines parked on addr and returns the count the
// kernel reports. n == All releases every one of them.
func Wake(addr *uint32, n int) int {
	if n == 0 {
		return 0
	}
	if n < 0 || n > math.MaxInt32 {
		n = math.MaxInt32
	}
	r, _, e := unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		futexWake|futexPrivate,
		uintptr(n),
		0, 0, 0)
	if e != 0 {
		return 0
	}
	return int(r)
}

// Waiters is not observable through futex(2); it always returns -1.
func Waiters(*uint32) int {
	return -1
}
