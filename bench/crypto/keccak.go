package crypto

import (
	"math/bits"

	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

var keccakRC = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

var keccakRotc = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var keccakPiln = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

func keccakF1600(st *[25]uint64) {
	var bc [5]uint64
	for round := 0; round < 24; round++ {
		// theta
		for i := 0; i < 5; i++ {
			bc[i] = st[i] ^ st[i+5] ^ st[i+10] ^ st[i+15] ^ st[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				st[i+j] ^= t
			}
		}

		// rho and pi
		t := st[1]
		for i := 0; i < 24; i++ {
			j := keccakPiln[i]
			v := st[j]
			st[j] = bits.RotateLeft64(t, keccakRotc[i])
			t = v
		}

		// chi
		for y := 0; y < 25; y += 5 {
			a0, a1, a2, a3, a4 := st[y], st[y+1], st[y+2], st[y+3], st[y+4]
			st[y] = a0 ^ (^a1 & a2)
			st[y+1] = a1 ^ (^a2 & a3)
			st[y+2] = a2 ^ (^a3 & a4)
			st[y+3] = a3 ^ (^a4 & a0)
			st[y+4] = a4 ^ (^a0 & a1)
		}

		st[0] ^= keccakRC[round]
	}
}

func runKeccakF1600(h *harness.Context) error {
	st := [25]uint64(workload.Uint64s(25, 1))

	const iters = 20000

	t0 := h.Now()
	for i := uint64(0); i < iters; i++ {
		st[i%25] ^= i * harness.GoldenGamma
		keccakF1600(&st)
	}
	t1 := h.Now()

	var acc uint64
	for i, v := range st {
		acc ^= v + uint64(i)*0xd6e8feb86659fd93
		acc = bits.RotateLeft64(acc, 17)
	}

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
