package science

import "github.com/weiihann/u2bench/harness"

const mandelMaxIter = 200

// escapeTime returns the iteration count before z leaves the radius-2
// disc, capped at mandelMaxIter.
func escapeTime(cr, ci float64) int {
	var zr, zi float64

	it := 0
	for ; it < mandelMaxIter; it++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > 4.0 {
			break
		}
		zi = (zr+zr)*zi + ci
		zr = zr2 - zi2 + cr
	}

	return it
}

func runMandelbrot(h *harness.Context) error {
	const (
		w  = 320
		ht = 240
		x0 = -2.0
		x1 = 1.0
		y0 = -1.2
		y1 = 1.2
	)

	var sum uint64

	t0 := h.Now()
	for y := 0; y < ht; y++ {
		ci := y0 + (y1-y0)*float64(y)/float64(ht-1)
		for x := 0; x < w; x++ {
			cr := x0 + (x1-x0)*float64(x)/float64(w-1)
			sum += uint64(escapeTime(cr, ci))
		}
	}
	t1 := h.Now()

	h.SinkU64(sum)

	return h.ReportNs(t1 - t0)
}
