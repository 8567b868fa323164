package vm

import "github.com/weiihann/u2bench/harness"

const (
	tinyLoadI opcode = iota
	tinyAdd
	tinyXor
	tinyMul
	tinyShr
	tinySub
	tinyJnz
	tinyHalt
)

// tinyProgram mixes r0 with an LCG for 1500 rounds, folding shifted
// copies into r1.
var tinyProgram = []inst{
	{op: tinyLoadI, a: 7, imm: 1},
	{op: tinyLoadI, a: 2, imm: 1500},
	{op: tinyLoadI, a: 3, imm: 13},
	{op: tinyLoadI, a: 4, imm: 1664525},
	{op: tinyLoadI, a: 5, imm: 1013904223},
	// loop:
	{op: tinyMul, a: 0, b: 0, c: 4},
	{op: tinyAdd, a: 0, b: 0, c: 5},
	{op: tinyShr, a: 6, b: 0, c: 3},
	{op: tinyXor, a: 1, b: 1, c: 6},
	{op: tinySub, a: 2, b: 2, c: 7},
	{op: tinyJnz, a: 2, imm: -6},
	{op: tinyHalt, a: 1},
}

// runTiny interprets prog with r0 = seed. Running off the end returns r0
// and an unknown opcode returns 0.
func runTiny(prog []inst, seed int64) int64 {
	var r [8]int64
	r[0] = seed
	r[1] = 0x123456789abcdef

	pc := 0
	for {
		in := prog[pc]
		pc++

		switch in.op {
		case tinyLoadI:
			r[in.a] = int64(in.imm)
		case tinyAdd:
			r[in.a] = r[in.b] + r[in.c]
		case tinyXor:
			r[in.a] = r[in.b] ^ r[in.c]
		case tinyMul:
			r[in.a] = r[in.b] * r[in.c]
		case tinyShr:
			r[in.a] = int64(uint64(r[in.b]) >> (r[in.c] & 63))
		case tinySub:
			r[in.a] = r[in.b] - r[in.c]
		case tinyJnz:
			if r[in.a] != 0 {
				pc += int(in.imm)
			}
		case tinyHalt:
			return r[in.a] + r[0] + r[1]
		default:
			return 0
		}

		if pc >= len(prog) {
			return r[0]
		}
	}
}

func runTinyBytecode(h *harness.Context) error {
	const outer = 1200

	seed := uint64(1)

	var acc uint64

	t0 := h.Now()
	for i := 0; i < outer; i++ {
		seed = harness.SplitMix64(seed)
		acc ^= uint64(runTiny(tinyProgram, int64(seed)))
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
