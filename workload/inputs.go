package workload

// Bytes returns n bytes taken from the low byte of successive xorshift32
// outputs starting at seed.
func Bytes(n int, seed uint32) []byte {
	buf := make([]byte, n)
	FillBytes(buf, seed)

	return buf
}

// FillBytes overwrites buf like Bytes.
func FillBytes(buf []byte, seed uint32) {
	x := NewXorshift(seed)
	for i := range buf {
		buf[i] = byte(x.Next())
	}
}

// Uint32s returns n successive xorshift32 outputs starting at seed.
func Uint32s(n int, seed uint32) []uint32 {
	out := make([]uint32, n)
	x := NewXorshift(seed)
	for i := range out {
		out[i] = x.Next()
	}

	return out
}

// Uint64s returns n successive chained splitmix64 outputs starting at seed.
func Uint64s(n int, seed uint64) []uint64 {
	out := make([]uint64, n)
	s := NewSplitMix(seed)
	for i := range out {
		out[i] = s.Next()
	}

	return out
}

// OddKeys returns n chained splitmix64 outputs with the low bit forced,
// so no key is zero.
func OddKeys(n int, seed uint64) []uint64 {
	keys := Uint64s(n, seed)
	for i := range keys {
		keys[i] |= 1
	}

	return keys
}

// Pattern returns n bytes where byte i is i*mul+add, truncated.
func Pattern(n int, mul, add uint32) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(uint32(i)*mul + add)
	}

	return buf
}
