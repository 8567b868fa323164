package harness

// Clock reads a monotonic nanosecond counter with an arbitrary epoch.
// Only the difference between two readings is meaningful.
type Clock interface {
	Now() uint64
}

type readerClock struct {
	read func() (uint64, error)
}

// NewClock wraps read as a Clock. A failed read yields 0 rather than an
// error, so elapsed time stays well defined as long as both readings of a
// measurement fail the same way.
func NewClock(read func() (uint64, error)) Clock {
	return readerClock{read: read}
}

func (c readerClock) Now() uint64 {
	ns, err := c.read()
	if err != nil {
		return 0
	}

	return ns
}

// SystemClock returns the host's monotonic clock.
func SystemClock() Clock {
	return NewClock(readMonotonic)
}
