package micro

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

func runMallocFree(h *harness.Context) error {
	const (
		iters = 1000000
		live  = 1024
	)

	rng := workload.NewXorshift(1)

	var (
		acc  uint64
		ptrs [live][]byte
	)

	t0 := h.Now()
	for i := 0; i < iters; i++ {
		slot := i & (live - 1)
		if q := ptrs[slot]; q != nil {
			acc += uint64(q[0])
			ptrs[slot] = nil
		}

		r := rng.Next()
		sz := 16 + int(r&511)
		p := make([]byte, sz)
		p[0] = byte(r)
		p[sz-1] = byte(r >> 8)
		acc += uint64(p[0]) + uint64(p[sz-1])
		ptrs[slot] = p
	}
	for i := range ptrs {
		if q := ptrs[i]; q != nil {
			acc += uint64(q[0])
			ptrs[i] = nil
		}
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}

func runMemcpy(h *harness.Context) error {
	// 128 MiB copied in total.
	const (
		n    = 4 << 20
		reps = 32
	)

	a := workload.Bytes(n, 1)
	b := make([]byte, n)

	var acc uint64

	t0 := h.Now()
	for rep := 0; rep < reps; rep++ {
		copy(b, a)
		// The next source depends on this copy.
		i0 := (uint64(rep) * 1315423911) & (n - 1)
		i1 := (uint64(rep)*2654435761 + 97) & (n - 1)
		b[i0] ^= byte(rep * 17)
		b[i1] += byte(rep * 3)
		acc += uint64(b[i0]) + uint64(b[i1])
		a, b = b, a
	}
	t1 := h.Now()

	for i := 0; i < n; i += 64 {
		acc += uint64(a[i])
	}

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}

const chaseEntries = 1 << 19

// chaseTable returns a successor table with entries masked to its size.
func chaseTable(n int, seed uint64) []uint64 {
	next := make([]uint64, n)
	rng := workload.NewSplitMix(seed)
	mask := uint32(n - 1)
	for i := range next {
		next[i] = uint64(uint32(rng.Next()) & mask)
	}

	return next
}

func runPointerChase(h *harness.Context) error {
	// 4 MiB of successors as u64.
	const (
		n     = chaseEntries
		iters = 12000000
	)

	next := chaseTable(n, 1)

	var idx, acc uint64

	t0 := h.Now()
	for i := 0; i < iters; i++ {
		idx = next[uint32(idx)]
		acc += idx
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}

func runMulAdd(h *harness.Context) error {
	const iters = 50000000

	x := uint32(1)

	var acc uint64

	t0 := h.Now()
	for i := uint32(0); i < iters; i++ {
		x = x*1664525 + 1013904223
		x ^= x << 13
		x += x >> 7
		x ^= x << 9
		x = (x << 5) | (x >> 27)
		acc += uint64(x ^ (i * 0x9e3779b9))
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
