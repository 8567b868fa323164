package science

import (
	"math"

	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

type body struct {
	x, y, z    float64
	vx, vy, vz float64
	m          float64
}

const (
	nbodyDt  = 0.01
	nbodyEps = 1e-9
)

func newBodies(n int, seed uint64) []body {
	rng := workload.NewSplitMix(seed)

	bs := make([]body, n)
	for i := range bs {
		b := &bs[i]
		b.x = rng.Float()
		b.y = rng.Float()
		b.z = rng.Float()
		b.vx = rng.Float() * 0.1
		b.vy = rng.Float() * 0.1
		b.vz = rng.Float() * 0.1
		b.m = 0.5 + (rng.Float()+1.0)*0.25
	}

	return bs
}

// nbodyStep advances all bodies by one softened gravity step: velocities
// first from the current positions, then positions.
func nbodyStep(bs []body) {
	for i := range bs {
		xi, yi, zi := bs[i].x, bs[i].y, bs[i].z

		var ax, ay, az float64
		for j := range bs {
			if j == i {
				continue
			}
			dx := bs[j].x - xi
			dy := bs[j].y - yi
			dz := bs[j].z - zi
			inv := 1.0 / math.Sqrt(dx*dx+dy*dy+dz*dz+nbodyEps)
			s := bs[j].m * inv * inv * inv
			ax += dx * s
			ay += dy * s
			az += dz * s
		}
		bs[i].vx += ax * nbodyDt
		bs[i].vy += ay * nbodyDt
		bs[i].vz += az * nbodyDt
	}

	for i := range bs {
		bs[i].x += bs[i].vx * nbodyDt
		bs[i].y += bs[i].vy * nbodyDt
		bs[i].z += bs[i].vz * nbodyDt
	}
}

func runNBody(h *harness.Context) error {
	const (
		n     = 128
		steps = 20
	)

	bs := newBodies(n, 1)

	t0 := h.Now()
	for step := 0; step < steps; step++ {
		nbodyStep(bs)
	}
	t1 := h.Now()

	var sum float64
	for _, b := range bs {
		sum += b.x + b.y + b.z
	}

	h.SinkF64(sum)

	return h.ReportNs(t1 - t0)
}
