package harness

// GoldenGamma is the odd 64-bit constant derived from the golden ratio.
// It is the splitmix64 increment and the integer sink's mixing constant.
const GoldenGamma uint64 = 0x9E3779B97F4A7C15

// Sink absorbs payload results so the compiler cannot prove the code that
// produced them is dead. Its accumulators are never read outside tests.
type Sink struct {
	u64 uint64
	f64 float64
}

// U64 mixes v into the integer accumulator.
func (s *Sink) U64(v uint64) {
	s.u64 ^= v + GoldenGamma
}

// F64 adds v to the floating point accumulator.
func (s *Sink) F64(v float64) {
	s.f64 += v
}
