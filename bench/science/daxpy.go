package science

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

// daxpy computes y = a*x + y.
func daxpy(a float64, x, y []float64) {
	for i := range y {
		y[i] = a*x[i] + y[i]
	}
}

func runDaxpy(h *harness.Context) error {
	const (
		n    = 150000
		reps = 80
		a    = 1.000001
	)

	x := make([]float64, n)
	y := make([]float64, n)
	for i, w := range workload.Uint64s(n, 1) {
		v := int32(w&0xffff) - 32768
		x[i] = float64(v) * 0.001
		y[i] = float64(v^0x5a5a) * 0.001
	}

	t0 := h.Now()
	for rep := 0; rep < reps; rep++ {
		daxpy(a, x, y)
	}
	t1 := h.Now()

	var sum float64
	for i := 0; i < n; i += 97 {
		sum += y[i]
	}

	h.SinkF64(sum)

	return h.ReportNs(t1 - t0)
}
