package db

import (
	"github.com/weiihann/u2bench/harness"
	"github.com/weiihann/u2bench/workload"
)

const (
	// btreeDegree is the minimum degree t: nodes hold t-1..2t-1 keys.
	btreeDegree   = 16
	btreeMaxKeys  = 2*btreeDegree - 1
	btreeMaxChild = 2 * btreeDegree

	btreeNodeHint  = 20000
	btreeNodeBytes = 8 + btreeMaxKeys*8 + btreeMaxChild*4
)

type btreeNode struct {
	n     int
	leaf  bool
	keys  [btreeMaxKeys]uint64
	child [btreeMaxChild]uint32
}

// btree is a CLRS-style B-tree over a slice-backed node pool. Nodes are
// addressed by index so the pool can grow without invalidating links.
type btree struct {
	nodes []btreeNode
	root  uint32
}

func newBTree(nodeHint int) *btree {
	t := &btree{nodes: make([]btreeNode, 0, nodeHint)}
	t.root = t.newNode(true)

	return t
}

func (t *btree) newNode(leaf bool) uint32 {
	t.nodes = append(t.nodes, btreeNode{leaf: leaf})

	return uint32(len(t.nodes) - 1)
}

// splitChild splits the full child y at position i of x, moving its
// median key up into x.
func (t *btree) splitChild(xi uint32, i int, yi uint32) {
	zi := t.newNode(t.nodes[yi].leaf)
	x, y, z := &t.nodes[xi], &t.nodes[yi], &t.nodes[zi]

	z.n = btreeDegree - 1
	copy(z.keys[:btreeDegree-1], y.keys[btreeDegree:])
	if !y.leaf {
		copy(z.child[:btreeDegree], y.child[btreeDegree:])
	}
	y.n = btreeDegree - 1

	copy(x.child[i+2:x.n+2], x.child[i+1:x.n+1])
	x.child[i+1] = zi
	copy(x.keys[i+1:x.n+1], x.keys[i:x.n])
	x.keys[i] = y.keys[btreeDegree-1]
	x.n++
}

func (t *btree) insertNonFull(xi uint32, k uint64) {
	for {
		x := &t.nodes[xi]
		i := x.n - 1

		if x.leaf {
			for i >= 0 && k < x.keys[i] {
				x.keys[i+1] = x.keys[i]
				i--
			}
			x.keys[i+1] = k
			x.n++

			return
		}

		for i >= 0 && k < x.keys[i] {
			i--
		}
		i++

		if t.nodes[x.child[i]].n == btreeMaxKeys {
			t.splitChild(xi, i, x.child[i])
			// splitChild may have grown the pool.
			x = &t.nodes[xi]
			if k > x.keys[i] {
				i++
			}
		}
		xi = x.child[i]
	}
}

func (t *btree) insert(k uint64) {
	r := t.root
	if t.nodes[r].n != btreeMaxKeys {
		t.insertNonFull(r, k)

		return
	}

	s := t.newNode(false)
	t.nodes[s].child[0] = r
	t.root = s
	t.splitChild(s, 0, r)
	t.insertNonFull(s, k)
}

func (t *btree) search(k uint64) (uint64, bool) {
	xi := t.root
	for {
		x := &t.nodes[xi]
		i := 0
		for i < x.n && k > x.keys[i] {
			i++
		}
		if i < x.n && k == x.keys[i] {
			return x.keys[i], true
		}
		if x.leaf {
			return 0, false
		}
		xi = x.child[i]
	}
}

// walk visits keys in order.
func (t *btree) walk(xi uint32, fn func(uint64)) {
	x := &t.nodes[xi]
	for i := 0; i < x.n; i++ {
		if !x.leaf {
			t.walk(x.child[i], fn)
		}
		fn(x.keys[i])
	}
	if !x.leaf {
		t.walk(x.child[x.n], fn)
	}
}

func btreeKeys(n int, seed uint64) []uint64 {
	keys := workload.Uint64s(n, seed)
	for i := range keys {
		keys[i] = (keys[i] ^ uint64(i)<<1) | 1
	}

	return keys
}

func runBTree(h *harness.Context) error {
	const (
		nKeys = 100000
		ops   = 600000
	)

	t := newBTree(btreeNodeHint)
	keys := btreeKeys(nKeys, 1)

	var sum uint64

	t0 := h.Now()
	for _, k := range keys {
		t.insert(k)
	}
	for i := uint64(0); i < ops; i++ {
		k := keys[harness.SplitMix64(i)%nKeys]
		out, ok := t.search(k)
		if ok {
			sum += out
		}
		if i&31 == 0 {
			if _, ok := t.search(k ^ 0xfeedbeefcafebabe); !ok {
				sum ^= out + harness.GoldenGamma
			}
		}
	}
	t1 := h.Now()

	h.SinkU64(sum)

	return h.ReportNs(t1 - t0)
}
