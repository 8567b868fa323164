package micro

import "github.com/weiihann/u2bench/harness"

// indirectTargets are called through a function value so the call site
// stays indirect.
var indirectTargets = [8]func(uint32) uint32{
	func(x uint32) uint32 { return x + 1 },
	func(x uint32) uint32 { return (x ^ 0x9e3779b9) + 0x7f4a7c15 },
	func(x uint32) uint32 { return x*1664525 + 1013904223 },
	func(x uint32) uint32 { return (x << 7) | (x >> 25) },
	func(x uint32) uint32 { return (x >> 3) ^ (x << 11) },
	func(x uint32) uint32 { return x + (x >> 16) + 0x85ebca6b },
	func(x uint32) uint32 { return (x ^ (x >> 15)) * 0x2c1b3c6d },
	func(x uint32) uint32 { return (x ^ (x >> 13)) * 0xc2b2ae35 },
}

func runIndirectCall(h *harness.Context) error {
	const iters = 4000000

	fns := &indirectTargets
	x := uint32(1)

	t0 := h.Now()
	for i := uint32(0); i < iters; i++ {
		x = fns[x&7](x)
		x = fns[(x>>3)&7](x)
		x ^= i
	}
	t1 := h.Now()

	h.SinkU64(uint64(x))

	return h.ReportNs(t1 - t0)
}
