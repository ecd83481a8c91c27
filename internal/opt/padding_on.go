//go:build !atomwait_disable_padding

package opt

import (
	"unsafe"
)

// Uint32_ is a uint32 word that owns a whole cache line, so writers of
// neighbouring words do not invalidate it.
// Padding can be disabled via the atomwait_disable_padding build tag.
type Uint32_ struct {
	V uint32 // accessed atomically
	_ [(CacheLineSize_ - unsafe.Sizeof(uint32(0))%CacheLineSize_) % CacheLineSize_]byte
}
