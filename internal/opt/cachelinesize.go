//go:build !atomwait_cachelinesize_64 && !atomwait_cachelinesize_128

package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize_ is used to keep independently written words on separate
// cache lines. It's taken from the golang.org/x/sys/cpu padding type for the
// target architecture.
const CacheLineSize_ = unsafe.Sizeof(cpu.CacheLinePad{})
