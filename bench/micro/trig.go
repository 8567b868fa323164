package micro

import (
	"math"

	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

func runTrigMix(h *harness.Context) error {
	const iters = 200000

	rng := workload.NewXorshift(1)
	x, y := 0.1, 0.2

	var acc float64

	t0 := h.Now()
	for i := 0; i < iters; i++ {
		r := rng.Next()
		t := x + float64(r&0xffff)*0.000001
		acc += math.Sin(t) * math.Cos(t*1.0000003)

		x = x*1.0000001 + 0.0000001*float64((r>>16)&0xffff)
		y = y*0.9999999 + 0.0000002*float64(r&0xffff)
		if x > 10.0 {
			x -= 10.0
		}
		if y > 10.0 {
			y -= 10.0
		}
	}
	t1 := h.Now()

	h.SinkF64(acc + x + y)

	return h.ReportNs(t1 - t0)
}
