package db

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

// radixSort sorts a with eight stable byte passes through tmp, which
// must be at least as long. After an even number of passes the result
// is back in a.
func radixSort(a, tmp []uint64) {
	src, dst := a, tmp[:len(a)]
	for shift := uint(0); shift < 64; shift += 8 {
		var offs [256]int
		for _, v := range src {
			offs[byte(v>>shift)]++
		}
		sum := 0
		for b, c := range offs {
			offs[b] = sum
			sum += c
		}
		for _, v := range src {
			b := byte(v >> shift)
			dst[offs[b]] = v
			offs[b]++
		}
		src, dst = dst, src
	}
}

func runRadixSort(h *harness.Context) error {
	const n = 200000

	a := workload.Uint64s(n, 1)
	tmp := make([]uint64, n)

	t0 := h.Now()
	radixSort(a, tmp)
	t1 := h.Now()

	var acc uint64
	for i := 0; i < n; i += 997 {
		acc ^= a[i]
	}

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
