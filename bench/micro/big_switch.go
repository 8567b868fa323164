package micro

import "github.com/weiihann/u2bench/harness"

// bigSwitchStep applies one of 64 mixing steps selected by the low six
// bits of x.
func bigSwitchStep(x uint32) uint32 {
	switch x & 63 {
	case 0:
		x = x + 0x9e3779b9
	case 1:
		x = x ^ 0x7f4a7c15
	case 2:
		x = x * 0x85ebca6b
	case 3:
		x = (x << 1) | (x >> 31)
	case 4:
		x = (x << 7) | (x >> 25)
	case 5:
		x = (x >> 3) | (x << 29)
	case 6:
		x = (x ^ (x >> 16)) * 0xc2b2ae35
	case 7:
		x = (x + (x << 5)) + 0x165667b1
	case 8:
		x = x - 0x3c6ef372
	case 9:
		x = (x ^ (x << 13)) + 0x7ed55d16
	case 10:
		x = (x ^ (x >> 11)) * 0x1b873593
	case 11:
		x = (x + 0x52dce729) ^ (x >> 7)
	case 12:
		x = x*3 + 1
	case 13:
		x = x*5 + 0x7f4a7c15
	case 14:
		x = x ^ (x << 9)
	case 15:
		x = x ^ (x >> 5)
	case 16:
		x = (x + 0x9e3779b9) ^ (x << 6)
	case 17:
		x = (x * 0x27d4eb2d) ^ (x >> 15)
	case 18:
		x = (x + (x >> 2)) ^ 0x85ebca6b
	case 19:
		x = (x ^ 0xdeadbeef) * 0x9e3779b1
	case 20:
		x = (x + 0x6d2b79f5) ^ (x << 13)
	case 21:
		x = (x * 0x51d7348d) + (x >> 11)
	case 22:
		x = (x ^ (x >> 7)) + 0x94d049bb
	case 23:
		x = (x + (x << 3)) ^ (x >> 13)
	case 24:
		x = (x * x) + 1
	case 25:
		x = (x * x) ^ (x >> 16)
	case 26:
		x = (x + 0x01234567) * 0x9e3779b9
	case 27:
		x = ((x << 16) | (x >> 16)) + 0x7f4a7c15
	case 28:
		x = (x + (x << 10)) + (x >> 6)
	case 29:
		x = (x ^ (x << 5)) - (x >> 3)
	case 30:
		x = (x + 0x7f4a7c15) ^ ((x << 7) | (x >> 25))
	case 31:
		x = (x ^ ((x << 11) | (x >> 21))) * 0x85ebca6b
	case 32:
		x = x + 0x243f6a88
	case 33:
		x = x ^ 0x13198a2e
	case 34:
		x = x * 0x9e3779b1
	case 35:
		x = (x << 2) | (x >> 30)
	case 36:
		x = (x << 9) | (x >> 23)
	case 37:
		x = (x >> 7) | (x << 25)
	case 38:
		x = (x ^ (x >> 13)) * 0x4cf5ad43
	case 39:
		x = (x + (x << 7)) + 0x7f4a7c15
	case 40:
		x = x - 0x9e3779b9
	case 41:
		x = (x ^ (x << 11)) + 0x85ebca6b
	case 42:
		x = (x ^ (x >> 9)) * 0x27d4eb2d
	case 43:
		x = (x + 0x3c6ef372) ^ (x >> 17)
	case 44:
		x = x*7 + 0x6d2b79f5
	case 45:
		x = x*9 + 0x94d049bb
	case 46:
		x = x ^ (x << 3)
	case 47:
		x = x ^ (x >> 12)
	case 48:
		x = (x + 0x165667b1) ^ (x << 8)
	case 49:
		x = (x * 0x1b873593) ^ (x >> 16)
	case 50:
		x = (x + (x >> 1)) ^ 0x27d4eb2d
	case 51:
		x = (x ^ 0xba5eba11) * 0x85ebca6b
	case 52:
		x = (x + 0x7ed55d16) ^ (x << 5)
	case 53:
		x = (x * 0xc2b2ae35) + (x >> 7)
	case 54:
		x = (x ^ (x >> 3)) + 0x3c6ef372
	case 55:
		x = (x + (x << 2)) ^ (x >> 9)
	case 56:
		x = (x * x) + 0x9e3779b9
	case 57:
		x = (x * x) ^ (x >> 11)
	case 58:
		x = (x + 0xf00ba4d5) * 0x27d4eb2d
	case 59:
		x = ((x << 8) | (x >> 24)) + 0x13198a2e
	case 60:
		x = (x + (x << 6)) + (x >> 5)
	case 61:
		x = (x ^ (x << 7)) - (x >> 2)
	case 62:
		x = (x + 0x94d049bb) ^ ((x << 9) | (x >> 23))
	case 63:
		x = (x ^ ((x << 5) | (x >> 27))) * 0x4cf5ad43
	}

	return x
}

func runBigSwitch(h *harness.Context) error {
	const iters = 10000000

	x := uint32(1)

	t0 := h.Now()
	for i := uint32(0); i < iters; i++ {
		x = bigSwitchStep(x)
		x ^= i * 0x27d4eb2d
		x = x*1664525 + 1013904223
	}
	t1 := h.Now()

	h.SinkU64(uint64(x))

	return h.ReportNs(t1 - t0)
}
