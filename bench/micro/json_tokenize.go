package micro

import (
	"github.com/weiihann/u2bench/harness"
)

const jsonChunk = `{"id":123456,"name":"alice\\n\u263A","vals":[1,2,3,4,5,6,7,8],"ok":true,"n":null},`

type tokenCounts struct {
	strings     uint64
	numbers     uint64
	structurals uint64
	literals    uint64
	escapes     uint64
}

func (c tokenCounts) mix() uint64 {
	return c.strings*1315423911 ^ c.numbers*2654435761 ^ c.structurals*97531 ^
		c.literals*99991 ^ c.escapes*1337
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// tokenizeJSON counts tokens in well-formed JSON without building values.
// Unknown bytes are skipped one at a time.
func tokenizeJSON(p []byte) tokenCounts {
	var c tokenCounts

	n := len(p)
	skipDigits := func(i int) int {
		for i < n && isDigit(p[i]) {
			i++
		}

		return i
	}
	hasWord := func(i int, w string) bool {
		return i+len(w) <= n && string(p[i:i+len(w)]) == w
	}

	for i := 0; i < n; {
		ch := p[i]
		switch {
		case ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t':
			i++

		case ch == '{' || ch == '}' || ch == '[' || ch == ']' || ch == ':' || ch == ',':
			c.structurals++
			i++

		case ch == '"':
			c.strings++
			i++
			for i < n {
				s := p[i]
				i++
				if s == '"' {
					break
				}
				if s == '\\' {
					c.escapes++
					if i >= n {
						break
					}
					e := p[i]
					i++
					if e == 'u' {
						i += 4
					}
				}
			}

		case ch == '-' || isDigit(ch):
			c.numbers++
			i = skipDigits(i + 1)
			if i < n && p[i] == '.' {
				i = skipDigits(i + 1)
			}
			if i < n && (p[i] == 'e' || p[i] == 'E') {
				i++
				if i < n && (p[i] == '+' || p[i] == '-') {
					i++
				}
				i = skipDigits(i)
			}

		case hasWord(i, "true"), hasWord(i, "null"):
			c.literals++
			i += 4

		case hasWord(i, "false"):
			c.literals++
			i += 5

		default:
			i++
		}
	}

	return c
}

// jsonDocument builds an array of repeated records just under target bytes.
func jsonDocument(target int) []byte {
	buf := make([]byte, 0, target+2)
	buf = append(buf, '[')
	for len(buf)+len(jsonChunk)+1 < target {
		buf = append(buf, jsonChunk...)
	}
	if buf[len(buf)-1] == ',' {
		buf[len(buf)-1] = ']'
	} else {
		buf = append(buf, ']')
	}

	return buf
}

func runJSONTokenize(h *harness.Context) error {
	const reps = 25

	doc := jsonDocument(2 << 20)

	var acc uint64

	t0 := h.Now()
	for rep := uint64(0); rep < reps; rep++ {
		acc ^= tokenizeJSON(doc).mix()
		acc += rep * harness.GoldenGamma
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
