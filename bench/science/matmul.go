package science

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

type float interface {
	~float32 | ~float64
}

// matmulAcc adds a*b into c for n-by-n row-major matrices, in i-k-j
// order.
func matmulAcc[T float](c, a, b []T, n int) {
	for i := 0; i < n; i++ {
		ci := c[i*n : i*n+n]
		for k := 0; k < n; k++ {
			aik := a[i*n+k]
			bk := b[k*n : k*n+n]
			for j := range ci {
				ci[j] += aik * bk[j]
			}
		}
	}
}

// matrixPair fills two n-by-n matrices with values in [-1, 1] in steps of
// 0.001, interleaving draws between them.
func matrixPair[T float](n int, seed uint32) (a, b []T) {
	rng := workload.NewXorshift(seed)
	draw := func() T { return T(int32(rng.Next()%2001)-1000) * T(0.001) }

	a = make([]T, n*n)
	b = make([]T, n*n)
	for i := range a {
		a[i] = draw()
		b[i] = draw()
	}

	return a, b
}

func runMatmulF32(h *harness.Context) error {
	const (
		n    = 64
		reps = 35
	)

	a, b := matrixPair[float32](n, 1)
	c := make([]float32, n*n)

	t0 := h.Now()
	for rep := 0; rep < reps; rep++ {
		matmulAcc(c, a, b, n)
	}
	t1 := h.Now()

	var sum float64
	for i := 0; i < len(c); i += 7 {
		sum += float64(c[i])
	}

	h.SinkF64(sum)

	return h.ReportNs(t1 - t0)
}

func runMatmulF64(h *harness.Context) error {
	const (
		n    = 48
		reps = 25
	)

	a, b := matrixPair[float64](n, 1)
	c := make([]float64, n*n)

	t0 := h.Now()
	for rep := 0; rep < reps; rep++ {
		matmulAcc(c, a, b, n)
	}
	t1 := h.Now()

	var sum float64
	for _, v := range c {
		sum += v
	}

	h.SinkF64(sum)

	return h.ReportNs(t1 - t0)
}
