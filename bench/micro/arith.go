package micro

import (
	"math"
	"math/bits"

	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

func runBitopsMix(h *harness.Context) error {
	const iters = 20000000

	rng := workload.NewXorshift(1)

	var acc uint32

	t0 := h.Now()
	for i := uint32(0); i < iters; i++ {
		x := rng.Next() | 1
		acc += uint32(bits.OnesCount32(x))
		acc += uint32(bits.LeadingZeros32(x))
		acc += uint32(bits.TrailingZeros32(x))
		x = bits.RotateLeft32(x, 7)
		x ^= x << 3
		acc ^= x + i
	}
	t1 := h.Now()

	h.SinkU64(uint64(acc))

	return h.ReportNs(t1 - t0)
}

func runConvert(h *harness.Context) error {
	const iters = 12000000

	rng := workload.NewXorshift(1)

	var acc float64

	t0 := h.Now()
	for i := 0; i < iters; i++ {
		v := int32(rng.Next() & 0x3ffff)
		d := float64(v)*0.000001 + acc
		w := int32(d)
		acc += d * 1.0000001
		acc -= float64(w) * 0.000001
	}
	t1 := h.Now()

	h.SinkF64(acc)

	return h.ReportNs(t1 - t0)
}

func runDivSqrt(h *harness.Context) error {
	const iters = 6000000

	rng := workload.NewXorshift(1)
	x := 1.0

	var acc float64

	t0 := h.Now()
	for i := uint32(0); i < iters; i++ {
		a := float64(rng.Next()&0xffff + 1)
		x = x*1.0000001 + float64(i&1023)*0.0000001
		acc += 1.0 / math.Sqrt(a+x)
		acc *= 0.9999999
	}
	t1 := h.Now()

	h.SinkF64(acc)

	return h.ReportNs(t1 - t0)
}

func runDivRem(h *harness.Context) error {
	const iters = 3000000

	rng := workload.NewSplitMix(1)

	var acc uint64

	t0 := h.Now()
	for i := 0; i < iters; i++ {
		a := rng.Next()
		b := rng.Next() | 1
		acc ^= a / b
		acc += a % b
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
