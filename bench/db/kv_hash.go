package db

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

// kvTable is a linear-probing hash table from non-zero u64 keys to u64
// values. Key 0 marks an empty slot, and the table never grows.
type kvTable struct {
	mask uint32
	keys []uint64
	vals []uint64
}

// newKVTable takes a power-of-two capacity.
func newKVTable(capacity uint32) *kvTable {
	return &kvTable{
		mask: capacity - 1,
		keys: make([]uint64, capacity),
		vals: make([]uint64, capacity),
	}
}

func (t *kvTable) slot(key uint64) uint32 {
	return uint32(harness.SplitMix64(key)) & t.mask
}

func (t *kvTable) put(key, val uint64) {
	for i := t.slot(key); ; i = (i + 1) & t.mask {
		if k := t.keys[i]; k == 0 || k == key {
			t.keys[i] = key
			t.vals[i] = val

			return
		}
	}
}

// get returns 0 for absent keys.
func (t *kvTable) get(key uint64) uint64 {
	for i := t.slot(key); ; i = (i + 1) & t.mask {
		switch t.keys[i] {
		case key:
			return t.vals[i]
		case 0:
			return 0
		}
	}
}

func runKVHash(h *harness.Context) error {
	const (
		n   = 90000
		ops = 600000
	)

	t := newKVTable(1 << 18)
	keys := workload.OddKeys(n, 1)

	var sum uint64

	t0 := h.Now()
	for i, k := range keys {
		t.put(k, uint64(i)*2654435761)
	}
	for i := uint64(0); i < ops; i++ {
		k := keys[harness.SplitMix64(i)%n]
		sum += t.get(k)
		if i&7 == 0 {
			t.put(k, sum)
		}
		if i&31 == 0 {
			sum += t.get(k ^ 0xfeedbeefcafebabe)
		}
	}
	t1 := h.Now()

	h.SinkU64(sum)

	return h.ReportNs(t1 - t0)
}
