package science

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

const sieveLimit = 2000000

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func runGCD(h *harness.Context) error {
	const n = 500000

	rng := workload.NewSplitMix(1)

	var acc uint64

	t0 := h.Now()
	for i := 0; i < n; i++ {
		s := rng.Next()
		a := (s | 1) ^ (s >> 17)
		s = rng.Next()
		b := (s | 1) ^ (s >> 23)
		acc ^= gcd(a, b)
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}

// sieve marks composites in isPrime, which must be all ones on entry,
// and returns the number of primes up to len(isPrime)-1.
func sieve(isPrime []byte) uint32 {
	limit := len(isPrime) - 1
	for i := 0; i < 2 && i <= limit; i++ {
		isPrime[i] = 0
	}

	for p := 2; p*p <= limit; p++ {
		if isPrime[p] == 0 {
			continue
		}
		for j := p * p; j <= limit; j += p {
			isPrime[j] = 0
		}
	}

	var count uint32
	for _, v := range isPrime {
		count += uint32(v)
	}

	return count
}

func runSieve(h *harness.Context) error {
	isPrime := make([]byte, sieveLimit+1)
	for i := range isPrime {
		isPrime[i] = 1
	}

	t0 := h.Now()
	count := sieve(isPrime)
	t1 := h.Now()

	h.SinkU64(uint64(count))

	return h.ReportNs(t1 - t0)
}
