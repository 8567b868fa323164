package harness

import (
	"slices"
	"strings"
)

// Kind is the dominant performance characteristic of a payload.
type Kind string

const (
	KindCompute     Kind = "compute_dense"
	KindMemory      Kind = "memory_dense"
	KindIO          Kind = "io_dense"
	KindSyscall     Kind = "syscall_dense"
	KindCall        Kind = "call_dense"
	KindControlFlow Kind = "control_flow_dense"
	KindUnknown     Kind = "unknown"
)

// Kinds lists every kind in display order.
func Kinds() []Kind {
	return []Kind{
		KindCompute, KindMemory, KindIO, KindSyscall,
		KindCall, KindControlFlow, KindUnknown,
	}
}

// ParseKind resolves a kind name. It reports false for unknown names.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(s))
	if slices.Contains(Kinds(), k) {
		return k, true
	}

	return KindUnknown, false
}

type tagSet map[string]struct{}

func (t tagSet) add(tags ...string) {
	for _, tag := range tags {
		t[tag] = struct{}{}
	}
}

func (t tagSet) sorted() []string {
	out := make([]string, 0, len(t))
	for tag := range t {
		out = append(out, tag)
	}

	slices.Sort(out)

	return out
}

// Classify derives a primary kind and a sorted tag set from a payload
// name of the form <category>_<primitive>[_<flavour>]. The primary kind is
// always part of the tag set.
func Classify(name string) (Kind, []string) {
	name = strings.ToLower(name)
	tags := tagSet{}

	ret := func(k Kind) (Kind, []string) {
		tags.add(string(k))

		return k, tags.sorted()
	}

	if containsAny(name, "f32", "f64") {
		tags.add("float_dense")
	}
	if containsAny(name, "i8", "u8", "i16", "u16", "i32", "i64", "u32", "u64") {
		tags.add("int_dense")
	}

	category, rest, _ := strings.Cut(name, "_")

	switch category {
	case "sys":
		tags.add("sys", "syscall_dense")
		if containsAny(rest, "small_io", "seek_read", "file_rw") {
			return ret(KindIO)
		}

		return ret(KindSyscall)

	case "micro":
		tags.add("micro")

		return classifyMicro(rest, tags, ret)

	case "crypto":
		tags.add("crypto", "int_dense")

		return ret(KindCompute)

	case "science":
		tags.add("science", "compute_dense")
		switch {
		case strings.Contains(rest, "daxpy"):
			return ret(KindMemory)
		case containsAny(rest, "mandelbrot", "sieve", "gcd"):
			return ret(KindControlFlow)
		}

		return ret(KindCompute)

	case "db":
		tags.add("db", "int_dense", "memory_dense", "control_flow_dense")

		return ret(KindMemory)

	case "vm":
		tags.add("vm", "int_dense", "control_flow_dense", "call_dense")

		return ret(KindControlFlow)
	}

	return ret(KindUnknown)
}

func classifyMicro(
	name string,
	tags tagSet,
	ret func(Kind) (Kind, []string),
) (Kind, []string) {
	switch {
	case containsAny(name, "indirect_call", "call_indirect", "call_direct"):
		tags.add("compute_dense")

		return ret(KindCall)

	case containsAny(name, "switch", "br_table", "br_if"):
		tags.add("compute_dense")

		return ret(KindControlFlow)

	case containsAny(name, "pointer_chase", "random_access", "malloc", "alloc", "memcpy", "mem_"):
		return ret(KindMemory)

	case strings.HasPrefix(name, "rle"):
		tags.add("control_flow_dense")

		return ret(KindMemory)

	case strings.Contains(name, "utf8"):
		return ret(KindControlFlow)

	case containsAny(name, "json", "quicksort", "qsort", "varint"):
		tags.add("memory_dense")

		return ret(KindControlFlow)
	}

	tags.add("compute_dense")

	return ret(KindCompute)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
