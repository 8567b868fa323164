package crypto

import (
	"math/bits"

	"github.com/weiihann/u2bench/harness"
)

func sipRound(v0, v1, v2, v3 uint64) (uint64, uint64, uint64, uint64) {
	v0 += v1
	v1 = bits.RotateLeft64(v1, 13)
	v1 ^= v0
	v0 = bits.RotateLeft64(v0, 32)
	v2 += v3
	v3 = bits.RotateLeft64(v3, 16)
	v3 ^= v2
	v0 += v3
	v3 = bits.RotateLeft64(v3, 21)
	v3 ^= v0
	v2 += v1
	v1 = bits.RotateLeft64(v1, 17)
	v1 ^= v2
	v2 = bits.RotateLeft64(v2, 32)

	return v0, v1, v2, v3
}

// sipHash24 is SipHash-2-4 of the single 8-byte little-endian message m.
func sipHash24(k0, k1, m uint64) uint64 {
	v0 := 0x736f6d6570736575 ^ k0
	v1 := 0x646f72616e646f6d ^ k1
	v2 := 0x6c7967656e657261 ^ k0
	v3 := 0x7465646279746573 ^ k1

	v3 ^= m
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0 ^= m

	// Final block: no message bytes left, length 8 in the top byte.
	const b = uint64(8) << 56
	v3 ^= b
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	v0 ^= b

	v2 ^= 0xff
	for i := 0; i < 4; i++ {
		v0, v1, v2, v3 = sipRound(v0, v1, v2, v3)
	}

	return v0 ^ v1 ^ v2 ^ v3
}

func runSipHash24(h *harness.Context) error {
	const (
		k0 = 0x0706050403020100
		k1 = 0x0f0e0d0c0b0a0908
		n  = 250000
	)

	var acc uint64

	t0 := h.Now()
	for i := uint64(0); i < n; i++ {
		acc ^= sipHash24(k0, k1, harness.SplitMix64(i+1))
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
