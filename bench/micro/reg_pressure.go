package micro

import (
	"math/bits"

	"github.com/weiihann/u2bench/harness"
)

// runRegPressure keeps sixteen interdependent words live across each
// iteration.
func runRegPressure(h *harness.Context) error {
	const iters = 20000000

	var (
		a0, a1, a2, a3     uint32 = 1, 2, 3, 4
		a4, a5, a6, a7     uint32 = 5, 6, 7, 8
		a8, a9, a10, a11   uint32 = 9, 10, 11, 12
		a12, a13, a14, a15 uint32 = 13, 14, 15, 16
		acc                uint64
	)

	t0 := h.Now()
	for i := uint32(0); i < iters; i++ {
		x := i*0x9e3779b9 + (a0 ^ a7)
		a0 += x + a1
		a1 = bits.RotateLeft32(a1^x, 7) + a2
		a2 = bits.RotateLeft32(a2+x, -13) ^ a3
		a3 = a3*1664525 + x + a4
		a4 ^= a5 + x
		a5 += a6 ^ (x >> 3)
		a6 = bits.RotateLeft32(a6+a7, 17) ^ x
		a7 = bits.RotateLeft32(a7*1013904223+x, -11)
		a8 += a9 ^ x
		a9 = bits.RotateLeft32(a9+a10, 9) + (x ^ a0)
		a10 ^= a11 + (x << 1)
		a11 = bits.RotateLeft32(a11+a12, -19) ^ x
		a12 = a12*2246822519 + (x ^ a13)
		a13 ^= bits.RotateLeft32(a14+x, 3)
		a14 += bits.RotateLeft32(a15^x, -5)
		a15 = bits.RotateLeft32(a15+x+a3, 27)
		acc += uint64(a0^a5^a10^a15) + uint64(x)
	}
	t1 := h.Now()

	h.SinkU64(acc ^ uint64(a0) ^ uint64(a5) ^ uint64(a10) ^ uint64(a15))

	return h.ReportNs(t1 - t0)
}

// runRegPressureF32 is the float32 counterpart of runRegPressure with
// twelve live accumulators.
func runRegPressureF32(h *harness.Context) error {
	const iters = 12000000

	var (
		a0, a1, a2, a3   float32 = 1, 2, 3, 4
		a4, a5, a6, a7   float32 = 5, 6, 7, 8
		a8, a9, a10, a11 float32 = 9, 10, 11, 12
		acc              float32
	)

	t0 := h.Now()
	for i := uint32(0); i < iters; i++ {
		x := float32(i)*0.000001 + (a0-a7)*0.01
		a0 = a0 + x + a1
		a1 = a1*1.0000001 + x + a2
		a2 = a2 - x*0.9999997 + a3
		a3 = a3*0.9999999 + x + a4
		a4 = a4 + (a5-x)*0.5
		a5 = a5*1.0000003 + (a6+x)*0.25
		a6 = a6 - (a7-x)*0.125 + a0*0.001
		a7 = a7*0.9999991 + (a8+x)*0.0625
		a8 = a8 + (a9+x)*0.03125
		a9 = a9*1.0000002 + (a10-x)*0.015625
		a10 = a10 - (a11+x)*0.0078125 + a3*0.0001
		a11 = a11*0.9999998 + (a4-x)*0.00390625
		acc += (a0+a5+a10+a11)*0.00001 + x
	}
	t1 := h.Now()

	h.SinkF64(float64(acc) + float64(a0) + float64(a5) + float64(a10) + float64(a11))

	return h.ReportNs(t1 - t0)
}
