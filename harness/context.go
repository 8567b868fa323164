package harness

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotReported is returned when a payload finishes without
	// reporting its measurement.
	ErrNotReported = errors.New("benchmark did not report a time")

	// ErrReportedTwice is returned when a payload reports more than once.
	ErrReportedTwice = errors.New("benchmark reported more than once")
)

// Context is handed to a payload for the duration of one run. It is not
// safe for concurrent use; payloads are single threaded.
type Context struct {
	clock Clock
	sink  *Sink
	out   io.Writer

	reported  bool
	elapsedMs float64
}

func newContext(clock Clock, sink *Sink, out io.Writer) *Context {
	return &Context{clock: clock, sink: sink, out: out}
}

// Now reads the run's monotonic clock in nanoseconds.
func (c *Context) Now() uint64 {
	return c.clock.Now()
}

// SinkU64 marks v as observably used.
func (c *Context) SinkU64(v uint64) {
	c.sink.U64(v)
}

// SinkF64 marks v as observably used.
func (c *Context) SinkF64(v float64) {
	c.sink.F64(v)
}

// ReportNs writes the result line for an elapsed nanosecond count.
func (c *Context) ReportNs(ns uint64) error {
	return c.report(float64(ns)/1e6, FormatTime(ns))
}

// ReportMs writes the result line for an elapsed millisecond value.
func (c *Context) ReportMs(ms float64) error {
	return c.report(ms, FormatTimeMs(ms))
}

func (c *Context) report(ms float64, line string) error {
	if c.reported {
		return ErrReportedTwice
	}

	c.reported = true
	c.elapsedMs = ms

	if _, err := fmt.Fprintln(c.out, line); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}
