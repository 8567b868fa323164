package micro

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

func median3(a, b, c int32) int32 {
	if a < b {
		if b < c {
			return b
		}
		if a < c {
			return c
		}

		return a
	}
	if a < c {
		return a
	}
	if b < c {
		return c
	}

	return b
}

// quicksort sorts a in place with an explicit range stack. The smaller
// side is sorted first and the larger side pushed, bounding the stack.
func quicksort(a []int32) {
	if len(a) < 2 {
		return
	}

	type span struct{ l, r int }

	stack := make([]span, 0, 64)
	stack = append(stack, span{0, len(a) - 1})

	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		l, r := sp.l, sp.r
		for l < r {
			i, j := l, r
			pivot := median3(a[l], a[l+(r-l)>>1], a[r])
			for i <= j {
				for a[i] < pivot {
					i++
				}
				for a[j] > pivot {
					j--
				}
				if i <= j {
					a[i], a[j] = a[j], a[i]
					i++
					j--
				}
			}

			if j-l < r-i {
				if i < r {
					stack = append(stack, span{i, r})
				}
				r = j
			} else {
				if l < j {
					stack = append(stack, span{l, j})
				}
				l = i
			}
		}
	}
}

func runQuicksort(h *harness.Context) error {
	const (
		n    = 200000
		reps = 3
	)

	base := make([]int32, n)
	rng := workload.NewXorshift(1)
	for i := range base {
		base[i] = int32(rng.Next() ^ uint32(i))
	}
	work := make([]int32, n)

	var acc uint64

	t0 := h.Now()
	for rep := 0; rep < reps; rep++ {
		mask := int32(uint32(rep) * 0x9e3779b9)
		for i := range work {
			work[i] = base[i] ^ mask
		}
		quicksort(work)
		acc += uint64(uint32(work[(rep*9973)%n]))
		acc += uint64(uint32(work[n/2]))
		acc += uint64(uint32(work[n-1]))
	}
	t1 := h.Now()

	h.SinkU64(acc)

	return h.ReportNs(t1 - t0)
}
