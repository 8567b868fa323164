package micro

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

func runRandomAccess(h *harness.Context) error {
	// 1 MiB of u32.
	const (
		mask  = 1<<18 - 1
		iters = 16000000
	)

	a := workload.Uint32s(mask+1, 1)
	for i := range a {
		a[i] ^= uint32(i) * 0x9e3779b9
	}

	idx := uint32(1)

	var acc uint64

	t0 := h.Now()
	for i := uint32(0); i < iters; i++ {
		idx = idx*1664525 + 1013904223
		j := idx & mask
		v := a[j]
		v += (idx ^ i) + (v >> 7)
		a[j] = v
		acc += uint64(v)
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
