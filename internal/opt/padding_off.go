//go:build atomwait_disable_padding

package opt

// Uint32_ is a bare uint32 word.
// Padding is force-disabled via the atomwait_disable_padding build tag.
// Use: go build -tags=atomwait_disable_padding
type Uint32_ struct {
	V uint32 // accessed atomically
}
