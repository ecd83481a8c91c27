//go:build linux && atomwait_futex

package futex

// Any spacing works for the kernel; reuse the table's for the shared test.
const tableSizeForTest = 251
