// Package science holds numeric kernels: dense linear algebra, FFT,
// option pricing, n-body integration and integer number theory.
package science

import "github.com/weiihann/u2bench/harness"

// Benchmarks returns the science payloads.
func Benchmarks() []harness.Benchmark {
	return []harness.Benchmark{
		harness.New("science_black_scholes_f64", 4*20000*8, runBlackScholes),
		harness.New("science_daxpy_f64", 2*150000*8, runDaxpy),
		harness.New("science_fft_f64", 2048*(8+8+8+2), runFFT),
		harness.New("science_gcd_i64", 0, runGCD),
		harness.New("science_mandelbrot_f64", 0, runMandelbrot),
		harness.New("science_matmul_f32", 3*64*64*4, runMatmulF32),
		harness.New("science_matmul_f64", 3*48*48*8, runMatmulF64),
		harness.New("science_nbody_f64", 128*7*8, runNBody),
		harness.New("science_sieve_i32", sieveLimit+1, runSieve),
	}
}
