package crypto

import (
	"math/bits"

	"github.com/weiihann/u2bench/harness"
)

func chachaQR(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d = bits.RotateLeft32(d^a, 16)
	c += d
	b = bits.RotateLeft32(b^c, 12)
	a += b
	d = bits.RotateLeft32(d^a, 8)
	c += d
	b = bits.RotateLeft32(b^c, 7)

	return a, b, c, d
}

// chacha20Block runs the 20-round block function over in and adds the
// input back, writing the keystream words to out.
func chacha20Block(out, in *[16]uint32) {
	x := *in
	for i := 0; i < 10; i++ {
		x[0], x[4], x[8], x[12] = chachaQR(x[0], x[4], x[8], x[12])
		x[1], x[5], x[9], x[13] = chachaQR(x[1], x[5], x[9], x[13])
		x[2], x[6], x[10], x[14] = chachaQR(x[2], x[6], x[10], x[14])
		x[3], x[7], x[11], x[15] = chachaQR(x[3], x[7], x[11], x[15])
		x[0], x[5], x[10], x[15] = chachaQR(x[0], x[5], x[10], x[15])
		x[1], x[6], x[11], x[12] = chachaQR(x[1], x[6], x[11], x[12])
		x[2], x[7], x[8], x[13] = chachaQR(x[2], x[7], x[8], x[13])
		x[3], x[4], x[9], x[14] = chachaQR(x[3], x[4], x[9], x[14])
	}
	for i := range out {
		out[i] = x[i] + in[i]
	}
}

// chachaInitialState lays out the constants, the key bytes 0..31, the given
// block counter and a zero nonce.
func chachaInitialState(counter uint32) [16]uint32 {
	return [16]uint32{
		0x61707865, 0x3320646e, 0x79622d32, 0x6b206574,
		0x03020100, 0x07060504, 0x0b0a0908, 0x0f0e0d0c,
		0x13121110, 0x17161514, 0x1b1a1918, 0x1f1e1d1c,
		counter, 0, 0, 0,
	}
}

func runChaCha20(h *harness.Context) error {
	st := chachaInitialState(1)

	const blocks = 200000

	var (
		out [16]uint32
		acc uint64
	)

	t0 := h.Now()
	for i := 0; i < blocks; i++ {
		st[12]++
		chacha20Block(&out, &st)
		acc ^= uint64(out[i&15])<<32 | uint64(out[(i+3)&15])
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
