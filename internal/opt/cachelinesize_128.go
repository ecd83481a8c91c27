//go:build atomwait_cachelinesize_128 && !atomwait_cachelinesize_64

package opt

const cacheLineSizeTag = 128
