package harness

// U64State exposes the integer accumulator to tests.
func (s *Sink) U64State() uint64 { return s.u64 }

// F64State exposes the floating point accumulator to tests.
func (s *Sink) F64State() float64 { return s.f64 }
