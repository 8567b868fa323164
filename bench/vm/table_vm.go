package vm

import "github.com/weiihann/u2bench/harness"

const (
	tabLoadI opcode = iota
	tabAdd
	tabSub
	tabMul
	tabGet
	tabSet
	tabJnz
	tabHalt
)

// tableProgram stores key*3+1 under keys 1..60000, reading each back
// into a running sum.
var tableProgram = []inst{
	{op: tabLoadI, a: 7, imm: 1},
	{op: tabLoadI, a: 0, imm: 1},
	{op: tabLoadI, a: 1, imm: 60000},
	{op: tabLoadI, a: 4, imm: 3},
	{op: tabLoadI, a: 5, imm: 1},
	{op: tabLoadI, a: 6, imm: 0},
	// loop:
	{op: tabMul, a: 2, b: 0, c: 4},
	{op: tabAdd, a: 2, b: 2, c: 5},
	{op: tabSet, a: 0, b: 2},
	{op: tabGet, a: 3, b: 0},
	{op: tabAdd, a: 6, b: 6, c: 3},
	{op: tabAdd, a: 0, b: 0, c: 7},
	{op: tabSub, a: 1, b: 1, c: 7},
	{op: tabJnz, a: 1, imm: -8},
	{op: tabHalt, a: 6},
}

// runTable interprets prog against tab. Missing keys read as 0.
func runTable(prog []inst, tab map[uint64]uint64) uint64 {
	var r [16]uint64

	pc := 0
	for {
		in := prog[pc]
		pc++

		switch in.op {
		case tabLoadI:
			r[in.a] = uint64(int64(in.imm))
		case tabAdd:
			r[in.a] = r[in.b] + r[in.c]
		case tabSub:
			r[in.a] = r[in.b] - r[in.c]
		case tabMul:
			r[in.a] = r[in.b] * r[in.c]
		case tabSet:
			tab[r[in.a]] = r[in.b]
		case tabGet:
			r[in.a] = tab[r[in.b]]
		case tabJnz:
			if r[in.a] != 0 {
				pc += int(in.imm)
			}
		case tabHalt:
			return r[in.a]
		default:
			return r[0]
		}

		if pc >= len(prog) {
			return r[0]
		}
	}
}

func runTableVM(h *harness.Context) error {
	tab := make(map[uint64]uint64, 1<<16)

	t0 := h.Now()
	sum := runTable(tableProgram, tab)
	t1 := h.Now()

	h.SinkU64(sum)

	return h.ReportNs(t1 - t0)
}
