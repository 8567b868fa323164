package science

import (
	"math"

	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

// normCDF is the Abramowitz and Stegun 26.2.17 approximation of the
// standard normal CDF, accurate to about 7.5e-8.
func normCDF(x float64) float64 {
	const (
		a1         = 0.319381530
		a2         = -0.356563782
		a3         = 1.781477937
		a4         = -1.821255978
		a5         = 1.330274429
		p          = 0.2316419
		invSqrt2Pi = 0.39894228040143267793994605993438
	)

	ax := math.Abs(x)
	t := 1.0 / (1.0 + p*ax)
	poly := (((a5*t+a4)*t+a3)*t+a2)*t + a1
	pdf := invSqrt2Pi * math.Exp(-0.5*ax*ax)

	cdf := 1.0 - pdf*poly*t
	if x < 0 {
		cdf = 1.0 - cdf
	}

	return cdf
}

// option is one European contract: spot, strike, years to expiry and
// volatility.
type option struct {
	s, k, t, v float64
}

// price returns the call and put values at risk-free rate r.
func (o option) price(r float64) (call, put float64) {
	vt := o.v * math.Sqrt(o.t)
	d1 := (math.Log(o.s/o.k) + (r+0.5*o.v*o.v)*o.t) / vt
	d2 := d1 - vt
	disc := math.Exp(-r * o.t)

	call = o.s*normCDF(d1) - o.k*disc*normCDF(d2)
	put = call + o.k*disc - o.s

	return call, put
}

func options(n int, seed uint32) []option {
	rng := workload.NewXorshift(seed)
	unit := func() float64 { return float64(rng.Next()&0xffff) / 65535.0 }

	out := make([]option, n)
	for i := range out {
		out[i] = option{
			s: 80.0 + 40.0*unit(),
			k: 80.0 + 40.0*unit(),
			t: 0.10 + 2.00*unit(),
			v: 0.05 + 0.50*unit(),
		}
	}

	return out
}

func runBlackScholes(h *harness.Context) error {
	const (
		n    = 20000
		reps = 25
		rate = 0.03
	)

	opts := options(n, 1)

	var sum float64

	t0 := h.Now()
	for rep := 0; rep < reps; rep++ {
		bump := 1.0 + float64(rep)*1e-12
		for _, o := range opts {
			o.s *= bump
			call, put := o.price(rate)
			sum += call + put
		}
		sum *= 0.999999999
	}
	t1 := h.Now()

	h.SinkF64(sum)

	return h.ReportNs(t1 - t0)
}
