package harness

import "fmt"

// FormatTime renders an elapsed nanosecond count as the result line,
// without the trailing newline.
func FormatTime(ns uint64) string {
	return FormatTimeMs(float64(ns) / 1e6)
}

// FormatTimeMs renders an elapsed millisecond value as the result line,
// without the trailing newline.
func FormatTimeMs(ms float64) string {
	return fmt.Sprintf("Time: %.3f ms", ms)
}
