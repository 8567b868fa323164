package micro

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

func base64DecodeTable() *[256]byte {
	var dec [256]byte
	for i := range dec {
		dec[i] = 0xff
	}
	for i := 0; i < len(base64Alphabet); i++ {
		dec[base64Alphabet[i]] = byte(i)
	}

	return &dec
}

// base64Encode writes the unpadded encoding of src into dst. len(src)
// must be a multiple of 3 and dst must hold len(src)/3*4 bytes.
func base64Encode(dst, src []byte) {
	j := 0
	for i := 0; i+2 < len(src); i += 3 {
		v := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		dst[j] = base64Alphabet[(v>>18)&63]
		dst[j+1] = base64Alphabet[(v>>12)&63]
		dst[j+2] = base64Alphabet[(v>>6)&63]
		dst[j+3] = base64Alphabet[v&63]
		j += 4
	}
}

// base64Decode reverses base64Encode and returns the sum of the decoded
// bytes.
func base64Decode(dst, src []byte, dec *[256]byte) uint64 {
	var sum uint64

	o := 0
	for i := 0; i+3 < len(src); i += 4 {
		v := uint32(dec[src[i]])<<18 | uint32(dec[src[i+1]])<<12 |
			uint32(dec[src[i+2]])<<6 | uint32(dec[src[i+3]])
		dst[o] = byte(v >> 16)
		dst[o+1] = byte(v >> 8)
		dst[o+2] = byte(v)
		sum += uint64(dst[o]) + uint64(dst[o+1]) + uint64(dst[o+2])
		o += 3
	}

	return sum
}

func runBase64(h *harness.Context) error {
	// A multiple of 3, so there is no padding.
	const (
		n    = 3 << 20
		encN = n / 3 * 4
		reps = 12
	)

	dec := base64DecodeTable()
	in := workload.Bytes(n, 1)
	enc := make([]byte, encN)
	out := make([]byte, n)

	var acc uint64

	t0 := h.Now()
	for rep := 0; rep < reps; rep++ {
		base64Encode(enc, in)
		acc += base64Decode(out, enc, dec)
		acc ^= uint64(enc[rep&63]) << ((rep & 7) * 8)
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
