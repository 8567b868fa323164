package science

import (
	"fmt"
	"math"

	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

// fftPlan holds the twiddle factors and bit-reversal table for a
// radix-2 transform of size n.
type fftPlan struct {
	n      int
	wr, wi []float64
	rev    []uint16
}

func bitReverse(x uint32, width int) uint32 {
	var r uint32
	for i := 0; i < width; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}

	return r
}

// newFFTPlan builds a plan for n, which must be a power of two no larger
// than 1<<16.
func newFFTPlan(n int) (*fftPlan, error) {
	if n < 1 || n&(n-1) != 0 || n > 1<<16 {
		return nil, fmt.Errorf("fft size %d: must be a power of two up to 65536", n)
	}

	width := 0
	for 1<<width < n {
		width++
	}

	p := &fftPlan{
		n:   n,
		wr:  make([]float64, n/2),
		wi:  make([]float64, n/2),
		rev: make([]uint16, n),
	}
	for k := range p.wr {
		ang := -2.0 * math.Pi * float64(k) / float64(n)
		p.wr[k] = math.Cos(ang)
		p.wi[k] = math.Sin(ang)
	}
	for i := range p.rev {
		p.rev[i] = uint16(bitReverse(uint32(i), width))
	}

	return p, nil
}

// transform runs an in-place iterative FFT over re and im. The inverse
// transform is scaled by 1/n.
func (p *fftPlan) transform(re, im []float64, inverse bool) {
	n := p.n
	for i := 0; i < n; i++ {
		if j := int(p.rev[i]); i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size
		for i := 0; i < n; i += size {
			for j := 0; j < half; j++ {
				wre := p.wr[j*step]
				wim := p.wi[j*step]
				if inverse {
					wim = -wim
				}
				i0, i1 := i+j, i+j+half
				vre := re[i1]*wre - im[i1]*wim
				vim := re[i1]*wim + im[i1]*wre
				ure, uim := re[i0], im[i0]
				re[i0], im[i0] = ure+vre, uim+vim
				re[i1], im[i1] = ure-vre, uim-vim
			}
		}
	}

	if inverse {
		scale := 1.0 / float64(n)
		for i := 0; i < n; i++ {
			re[i] *= scale
			im[i] *= scale
		}
	}
}

func runFFT(h *harness.Context) error {
	const (
		n    = 2048
		reps = 120
	)

	plan, err := newFFTPlan(n)
	if err != nil {
		return err
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, r := range workload.Uint32s(n, 1) {
		re[i] = float64(r&0xffff) * 0.00001
		im[i] = float64((r>>16)&0xffff) * 0.00001
	}

	t0 := h.Now()
	for rep := 0; rep < reps; rep++ {
		plan.transform(re, im, false)
		plan.transform(re, im, true)
		re[rep&(n-1)] += 0.0000001
	}
	t1 := h.Now()

	h.SinkF64(re[0] + im[1])

	return h.ReportNs(t1 - t0)
}
