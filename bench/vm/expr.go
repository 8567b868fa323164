package vm

import (
	"github.com/weiihann/u2bench/harness"
)

const benchExpr = "((a*3 + b*5) * (c+7) - (a*b) + (c*c) - 12345) / 3"

type tokenKind uint8

const (
	tokNum tokenKind = iota
	tokVar
	tokOp
)

type token struct {
	kind tokenKind
	op   byte
	num  int64
}

func precedence(op byte) int {
	switch op {
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	}

	return 0
}

// toRPN converts an infix expression over integers, the variables a, b
// and c, the four operators and parentheses into postfix order. Unknown
// bytes are ignored and unbalanced parentheses are dropped. out and ops
// are reused scratch buffers.
func toRPN(expr string, out []token, ops []byte) []token {
	out, ops = out[:0], ops[:0]

	for i := 0; i < len(expr); i++ {
		ch := expr[i]
		switch {
		case ch >= '0' && ch <= '9':
			var v int64
			for ; i < len(expr) && expr[i] >= '0' && expr[i] <= '9'; i++ {
				v = v*10 + int64(expr[i]-'0')
			}
			i--
			out = append(out, token{kind: tokNum, num: v})

		case ch == 'a' || ch == 'b' || ch == 'c':
			out = append(out, token{kind: tokVar, op: ch})

		case ch == '(':
			ops = append(ops, ch)

		case ch == ')':
			for len(ops) > 0 && ops[len(ops)-1] != '(' {
				out = append(out, token{kind: tokOp, op: ops[len(ops)-1]})
				ops = ops[:len(ops)-1]
			}
			if len(ops) > 0 {
				ops = ops[:len(ops)-1]
			}

		case precedence(ch) > 0:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top == '(' || precedence(top) < precedence(ch) {
					break
				}
				out = append(out, token{kind: tokOp, op: top})
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, ch)
		}
	}

	for len(ops) > 0 {
		if top := ops[len(ops)-1]; top != '(' {
			out = append(out, token{kind: tokOp, op: top})
		}
		ops = ops[:len(ops)-1]
	}

	return out
}

// evalRPN evaluates a postfix program. Division by zero divides by one
// and a program with a missing operand evaluates to 0.
func evalRPN(rpn []token, a, b, c int64, stack []int64) int64 {
	stack = stack[:0]

	for _, t := range rpn {
		switch t.kind {
		case tokNum:
			stack = append(stack, t.num)
		case tokVar:
			v := c
			switch t.op {
			case 'a':
				v = a
			case 'b':
				v = b
			}
			stack = append(stack, v)
		case tokOp:
			n := len(stack)
			if n < 2 {
				return 0
			}
			lhs, rhs := stack[n-2], stack[n-1]
			stack = stack[:n-2]

			var r int64
			switch t.op {
			case '+':
				r = lhs + rhs
			case '-':
				r = lhs - rhs
			case '*':
				r = lhs * rhs
			case '/':
				if rhs == 0 {
					rhs = 1
				}
				r = lhs / rhs
			}
			stack = append(stack, r)
		}
	}

	if len(stack) == 0 {
		return 0
	}

	return stack[len(stack)-1]
}

func runExprParser(h *harness.Context) error {
	const iters = 30000

	rpn := make([]token, 0, 96)
	ops := make([]byte, 0, 64)
	stack := make([]int64, 0, 64)
	seed := uint64(1)

	var acc uint64

	t0 := h.Now()
	for i := 0; i < iters; i++ {
		seed = harness.SplitMix64(seed)
		a := int64(seed & 0xffff)
		b := int64((seed >> 16) & 0xffff)
		c := int64((seed >> 32) & 0xffff)

		rpn = toRPN(benchExpr, rpn, ops)
		acc ^= uint64(evalRPN(rpn, a, b, c, stack))
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
