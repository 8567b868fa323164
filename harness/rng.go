package harness

// Xorshift32 advances a 32-bit xorshift state using the 13/17/5 shift
// triple. The output word is the new state, so out and next are equal;
// both are returned so call sites read like the other generators.
// A zero state stays zero forever; seed with a nonzero value.
func Xorshift32(s uint32) (out, next uint32) {
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5

	return s, s
}

// SplitMix64 is the stateless splitmix64 output function. Callers thread
// the state explicitly, either chained (x = SplitMix64(x)) or as a
// counter (SplitMix64(i)).
func SplitMix64(x uint64) uint64 {
	x += GoldenGamma
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB

	return x ^ (x >> 31)
}
