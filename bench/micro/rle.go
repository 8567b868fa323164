package micro

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

// rleInput fills n bytes with runs of 1..64 equal bytes.
func rleInput(n int, seed uint32) []byte {
	in := make([]byte, n)
	rng := workload.NewXorshift(seed)
	for pos := 0; pos < n; {
		r := rng.Next()
		run := min(1+int((r>>8)&63), n-pos)
		for i := 0; i < run; i++ {
			in[pos+i] = byte(r)
		}
		pos += run
	}

	return in
}

// rleEncode appends (length, byte) pairs for in to out. Runs are capped
// at 255.
func rleEncode(out, in []byte) []byte {
	for i := 0; i < len(in); {
		v := in[i]
		run := 1
		for i+run < len(in) && in[i+run] == v && run < 255 {
			run++
		}
		out = append(out, byte(run), v)
		i += run
	}

	return out
}

// rleDecodeSum walks encoded pairs and returns the byte sum and the
// decoded length.
func rleDecodeSum(enc []byte) (sum uint64, n int) {
	for p := 0; p+1 < len(enc); p += 2 {
		run, v := int(enc[p]), uint64(enc[p+1])
		for k := 0; k < run; k++ {
			sum += v
			n++
		}
	}

	return sum, n
}

func runRLE(h *harness.Context) error {
	const (
		n    = 4 << 20
		reps = 10
	)

	in := rleInput(n, 1)
	out := make([]byte, 0, 2*n)

	var acc uint64

	t0 := h.Now()
	for rep := 0; rep < reps; rep++ {
		out = rleEncode(out[:0], in)
		sum, j := rleDecodeSum(out)
		acc ^= sum + uint64(len(out)) + uint64(j)
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
