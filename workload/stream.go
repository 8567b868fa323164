// Package workload builds the deterministic inputs that payloads time
// against, and encodes raw generator streams as JSONL so two
// implementations can be compared value for value.
package workload

import "github.com/weiihann/u2bench/harness"

// Xorshift is a xorshift32 stream owned by one caller.
type Xorshift struct {
	state uint32
}

// NewXorshift starts a stream at seed. A zero seed yields only zeros.
func NewXorshift(seed uint32) *Xorshift {
	return &Xorshift{state: seed}
}

// Next returns the next output word.
func (x *Xorshift) Next() uint32 {
	var out uint32
	out, x.state = harness.Xorshift32(x.state)

	return out
}

// SplitMix is a chained splitmix64 stream: each output is the next input.
type SplitMix struct {
	state uint64
}

// NewSplitMix starts a chained stream at seed.
func NewSplitMix(seed uint64) *SplitMix {
	return &SplitMix{state: seed}
}

// Next returns the next output word.
func (s *SplitMix) Next() uint64 {
	s.state = harness.SplitMix64(s.state)

	return s.state
}

// Float returns a value in [-1, 1) built from the low 32 bits of the
// next output.
func (s *SplitMix) Float() float64 {
	u := float64(s.Next()&0xffffffff) / 4294967296.0

	return u*2.0 - 1.0
}
