package db

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

const (
	bloomBits   = 1 << 24
	bloomHashes = 7
)

// bloomFilter is a fixed-size bit array probed at bloomHashes positions
// derived by chaining splitmix64 from the key.
type bloomFilter struct {
	bits []byte
	mask uint32
}

// newBloomFilter takes a power-of-two bit count.
func newBloomFilter(nbits uint32) *bloomFilter {
	return &bloomFilter{bits: make([]byte, nbits/8), mask: nbits - 1}
}

func (f *bloomFilter) probes(key uint64, fn func(idx uint32) bool) {
	h := harness.SplitMix64(key)
	for j := uint64(0); j < bloomHashes; j++ {
		h = harness.SplitMix64(h + j*harness.GoldenGamma)
		if !fn(uint32(h) & f.mask) {
			return
		}
	}
}

func (f *bloomFilter) add(key uint64) {
	f.probes(key, func(idx uint32) bool {
		f.bits[idx>>3] |= 1 << (idx & 7)

		return true
	})
}

func (f *bloomFilter) mayContain(key uint64) bool {
	ok := true
	f.probes(key, func(idx uint32) bool {
		ok = f.bits[idx>>3]&(1<<(idx&7)) != 0

		return ok
	})

	return ok
}

func runBloomFilter(h *harness.Context) error {
	const (
		n       = 250000
		queries = 500000
	)

	f := newBloomFilter(bloomBits)
	keys := workload.OddKeys(n, 1)

	var hits uint64

	t0 := h.Now()
	for _, k := range keys {
		f.add(k)
	}
	for i := 0; i < queries; i++ {
		k := keys[i%n]
		if i&1 == 0 {
			k ^= 0xdeadbeefcafebabe
		}
		if f.mayContain(k) {
			hits++
		}
	}
	t1 := h.Now()

	h.SinkU64(hits)

	return h.ReportNs(t1 - t0)
}
