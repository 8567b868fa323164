//go:build !linux

package harness

import "time"

var epoch = time.Now()

// time.Since uses the runtime's monotonic reading, never the wall clock.
func readMonotonic() (uint64, error) {
	return uint64(time.Since(epoch)), nil
}
