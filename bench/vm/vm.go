// Package vm holds interpreter payloads: a register bytecode machine, a
// table-backed bytecode machine and a shunting-yard expression
// evaluator.
package vm

import "github.com/weiihann/u2bench/harness"

// Benchmarks returns the vm payloads.
func Benchmarks() []harness.Benchmark {
	return []harness.Benchmark{
		harness.New("vm_expr_parser", 96*16+64, runExprParser),
		harness.New("vm_minilua_table_vm", 1<<18*16, runTableVM),
		harness.New("vm_tinybytecode", len64(tinyProgram)*8, runTinyBytecode),
	}
}

func len64[T any](s []T) uint64 {
	return uint64(len(s))
}

// inst is one fixed-width instruction: an opcode, three register
// operands and a signed immediate.
type inst struct {
	op      opcode
	a, b, c uint8
	imm     int32
}

type opcode uint8
