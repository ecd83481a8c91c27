//go:build atomwait_cachelinesize_64 || atomwait_cachelinesize_128

package opt

// CacheLineSize_ is pinned by build tag, for targets where x/sys/cpu reports
// a conservative value (e.g. 128 on arm64 parts with 64-byte lines).
// Use: go build -tags=atomwait_cachelinesize_64
const CacheLineSize_ = cacheLineSizeTag
