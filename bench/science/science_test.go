package science

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

func TestBenchmarksClassify(t *testing.T) {
	_, err := harness.NewRegistry(Benchmarks())
	require.NoError(t, err)

	want := map[string]harness.Kind{
		"science_daxpy_f64":      harness.KindMemory,
		"science_gcd_i64":        harness.KindControlFlow,
		"science_mandelbrot_f64": harness.KindControlFlow,
		"science_sieve_i32":      harness.KindControlFlow,
		"science_fft_f64":        harness.KindCompute,
	}
	for _, b := range Benchmarks() {
		if k, ok := want[b.Name]; ok {
			assert.Equal(t, k, b.Kind, b.Name)
		}
	}
}

func TestSieve(t *testing.T) {
	tests := []struct {
		limit int
		want  uint32
	}{
		{1, 0},
		{2, 1},
		{10, 4},
		{100, 25},
		{sieveLimit, 148933},
	}

	for _, tt := range tests {
		buf := make([]byte, tt.limit+1)
		for i := range buf {
			buf[i] = 1
		}
		if got := sieve(buf); got != tt.want {
			t.Errorf("sieve(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestGCDMatchesBigInt(t *testing.T) {
	rng := workload.NewSplitMix(1)
	for i := 0; i < 1000; i++ {
		a, b := rng.Next()|1, rng.Next()|1
		want := new(big.Int).GCD(nil, nil, new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
		require.Equal(t, want.Uint64(), gcd(a, b))
	}

	assert.Equal(t, uint64(6), gcd(48, 18))
	assert.Equal(t, uint64(7), gcd(7, 0))
}

func TestFFTMatchesDFT(t *testing.T) {
	const n = 64

	plan, err := newFFTPlan(n)
	require.NoError(t, err)

	re := make([]float64, n)
	im := make([]float64, n)
	for i, r := range workload.Uint32s(n, 5) {
		re[i] = float64(r&0xffff) * 0.00001
		im[i] = float64(r>>16) * 0.00001
	}

	wantRe := make([]float64, n)
	wantIm := make([]float64, n)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			ang := -2 * math.Pi * float64(j*k) / n
			c, s := math.Cos(ang), math.Sin(ang)
			wantRe[k] += re[j]*c - im[j]*s
			wantIm[k] += re[j]*s + im[j]*c
		}
	}

	plan.transform(re, im, false)
	for k := 0; k < n; k++ {
		assert.InDelta(t, wantRe[k], re[k], 1e-9, "re[%d]", k)
		assert.InDelta(t, wantIm[k], im[k], 1e-9, "im[%d]", k)
	}
}

func TestFFTRoundTrip(t *testing.T) {
	const n = 2048

	plan, err := newFFTPlan(n)
	require.NoError(t, err)

	re := make([]float64, n)
	im := make([]float64, n)
	for i, r := range workload.Uint32s(n, 1) {
		re[i] = float64(r&0xffff) * 0.00001
		im[i] = float64(r>>16) * 0.00001
	}
	origRe := append([]float64(nil), re...)
	origIm := append([]float64(nil), im...)

	plan.transform(re, im, false)
	plan.transform(re, im, true)

	for i := range re {
		require.InDelta(t, origRe[i], re[i], 1e-9)
		require.InDelta(t, origIm[i], im[i], 1e-9)
	}
}

func TestFFTPlanSizes(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{0, true},
		{3, true},
		{1 << 17, true},
		{1, false},
		{2048, false},
		{1 << 16, false},
	}

	for _, tt := range tests {
		plan, err := newFFTPlan(tt.n)
		if tt.wantErr {
			require.Error(t, err, "n=%d", tt.n)
			assert.Nil(t, plan)

			continue
		}

		require.NoError(t, err, "n=%d", tt.n)
		assert.Len(t, plan.rev, tt.n)
	}
}

func TestNormCDF(t *testing.T) {
	for _, x := range []float64{-4, -1.5, -0.3, 0, 0.3, 1, 2.5, 6} {
		want := 0.5 * math.Erfc(-x/math.Sqrt2)
		assert.InDelta(t, want, normCDF(x), 1e-7, "x=%v", x)
	}
}

func TestOptionPutCallParity(t *testing.T) {
	const rate = 0.03

	for _, o := range options(100, 1) {
		call, put := o.price(rate)
		assert.InDelta(t, o.s-o.k*math.Exp(-rate*o.t), call-put, 1e-9)
		assert.GreaterOrEqual(t, call, -1e-4)
		assert.GreaterOrEqual(t, put, -1e-4)
	}
}

func TestEscapeTime(t *testing.T) {
	assert.Equal(t, mandelMaxIter, escapeTime(0, 0))
	assert.Equal(t, mandelMaxIter, escapeTime(-1, 0))
	assert.Equal(t, 1, escapeTime(2, 2))
}

func TestMatmulAgainstNaive(t *testing.T) {
	const n = 16

	a, b := matrixPair[float64](n, 1)
	c := make([]float64, n*n)
	matmulAcc(c, a, b, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var want float64
			for k := 0; k < n; k++ {
				want += a[i*n+k] * b[k*n+j]
			}
			require.InDelta(t, want, c[i*n+j], 1e-12)
		}
	}

	// Accumulates rather than overwrites.
	matmulAcc(c, a, b, n)
	var want float64
	for k := 0; k < n; k++ {
		want += a[k] * b[k*n]
	}
	require.InDelta(t, 2*want, c[0], 1e-12)
}

func TestMatrixPairRange(t *testing.T) {
	a, b := matrixPair[float32](8, 1)
	for i := range a {
		require.LessOrEqual(t, math.Abs(float64(a[i])), 1.0+1e-6)
		require.LessOrEqual(t, math.Abs(float64(b[i])), 1.0+1e-6)
	}
}

func TestNBodyConservesMomentum(t *testing.T) {
	bs := newBodies(16, 1)
	momentum := func() (px, py, pz float64) {
		for _, b := range bs {
			px += b.m * b.vx
			py += b.m * b.vy
			pz += b.m * b.vz
		}

		return px, py, pz
	}

	px0, py0, pz0 := momentum()
	for i := 0; i < 5; i++ {
		nbodyStep(bs)
	}
	px1, py1, pz1 := momentum()

	assert.InDelta(t, px0, px1, 1e-6)
	assert.InDelta(t, py0, py1, 1e-6)
	assert.InDelta(t, pz0, pz1, 1e-6)
}

func TestDaxpy(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{10, 20, 30}
	daxpy(2, x, y)
	assert.Equal(t, []float64{12, 24, 36}, y)
}
