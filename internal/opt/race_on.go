//go:build race

package opt

// Race_ lets tests shrink iteration counts under the race detector.
const Race_ = true
