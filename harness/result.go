// Package harness supplies the timing, result sink and pseudo-random
// primitives shared by every u2bench payload, and runs one payload at a
// time under that contract.
package harness

import "time"

// Result holds the structured outcome of a single payload run.
type Result struct {
	Name      string        `json:"name"`
	Kind      Kind          `json:"kind"`
	ElapsedMs float64       `json:"elapsed_ms"`
	WallTime  time.Duration `json:"wall_time_ns"`
}
