package micro

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

func fnv1a64(p []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, b := range p {
		h ^= uint64(b)
		h *= fnvPrime64
	}

	return h
}

func runFNV1a(h *harness.Context) error {
	// 2.56 MiB of 32-byte strings.
	const (
		strLen = 32
		count  = 80000
		reps   = 10
	)

	data := workload.Bytes(strLen*count, 1)

	var acc uint64

	t0 := h.Now()
	for r := uint64(0); r < reps; r++ {
		for i := 0; i < count; i++ {
			acc += fnv1a64(data[i*strLen : (i+1)*strLen])
		}
		acc ^= r * harness.GoldenGamma
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
