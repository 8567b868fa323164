package micro

import "github.com/weiihann/u2bench/harness"

func isCont(b byte) bool {
	return b&0xc0 == 0x80
}

// utf8Count counts code points up to the first malformed or truncated
// sequence. Overlong 3- and 4-byte forms and lead bytes past 0xf4 stop
// the scan.
func utf8Count(p []byte) uint64 {
	var cps uint64

	n := len(p)
	for i := 0; i < n; {
		c0 := p[i]
		switch {
		case c0 < 0x80:
			i++

		case c0&0xe0 == 0xc0:
			if i+1 >= n || !isCont(p[i+1]) || c0 < 0xc2 {
				return cps
			}
			i += 2

		case c0&0xf0 == 0xe0:
			if i+2 >= n || !isCont(p[i+1]) || !isCont(p[i+2]) {
				return cps
			}
			if c0 == 0xe0 && p[i+1] < 0xa0 {
				return cps
			}
			i += 3

		case c0&0xf8 == 0xf0:
			if i+3 >= n || !isCont(p[i+1]) || !isCont(p[i+2]) || !isCont(p[i+3]) {
				return cps
			}
			if (c0 == 0xf0 && p[i+1] < 0x90) || c0 > 0xf4 {
				return cps
			}
			i += 4

		default:
			return cps
		}
		cps++
	}

	return cps
}

var utf8Samples = [4][]byte{
	{0x41},
	{0xc2, 0xa9},
	{0xe2, 0x82, 0xac},
	{0xf0, 0x9f, 0x98, 0x80},
}

// utf8Buffer fills n bytes with a repeating mix of 1- to 4-byte
// sequences, padded with ASCII.
func utf8Buffer(n int) []byte {
	buf := make([]byte, 0, n)
	for {
		s := utf8Samples[(len(buf)>>4)&3]
		if len(buf)+len(s) > n {
			break
		}
		buf = append(buf, s...)
	}
	for len(buf) < n {
		buf = append(buf, 'A')
	}

	return buf
}

func runUTF8Validate(h *harness.Context) error {
	const reps = 80

	buf := utf8Buffer(1 << 20)

	var acc uint64

	t0 := h.Now()
	for r := 0; r < reps; r++ {
		acc += utf8Count(buf)
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
