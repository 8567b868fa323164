package micro

import (
	"math/bits"

	"github.com/weiihann/u2bench/harness"
)

// uint128 is an unsigned 128-bit accumulator.
type uint128 struct {
	hi, lo uint64
}

func mul64(x, y uint64) uint128 {
	hi, lo := bits.Mul64(x, y)

	return uint128{hi: hi, lo: lo}
}

func (u uint128) add(v uint128) uint128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)

	return uint128{hi: hi, lo: lo}
}

// shl and shr take 0 < n < 64.
func (u uint128) shl(n uint) uint128 {
	return uint128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
}

func (u uint128) shr(n uint) uint128 {
	return uint128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
}

func (u uint128) xor(v uint128) uint128 {
	return uint128{hi: u.hi ^ v.hi, lo: u.lo ^ v.lo}
}

func int128Step(acc uint128, x uint64) uint128 {
	acc = acc.add(mul64(x, x^harness.GoldenGamma))
	acc = acc.xor(acc.shl(13))

	return acc.add(acc.shr(7))
}

func runInt128Mul(h *harness.Context) error {
	const iters = 2000000

	x := uint64(1)
	acc := uint128{lo: 1}

	t0 := h.Now()
	for i := uint64(0); i < iters; i++ {
		x = harness.SplitMix64(x + i)
		acc = int128Step(acc, x)
	}
	t1 := h.Now()

	h.SinkU64(acc.lo ^ acc.hi)

	return h.ReportNs(t1 - t0)
}
