//go:build linux

package harness

import "golang.org/x/sys/unix"

func readMonotonic() (uint64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, err
	}

	return uint64(ts.Nano()), nil
}
