//go:build !linux

package sys

import "github.com/weiihann/u2bench/harness"

// Benchmarks returns no payloads on this platform.
func Benchmarks() []harness.Benchmark {
	return nil
}
