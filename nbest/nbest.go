package nbest

import "container/heap"
import "math"

import "github.com/daruma/wordlattice/lattice"


// partialPath is a candidate suffix of a final path, built backward from
// EOS. nodes[0] is EOS; nodes[len-1] (the head) is the most recently
// chosen node. fixedCost is the realized cost of every node strictly
// before the head; lowerBound = fixedCost + head.PathCost(), an
// admissible estimate of the eventual total (exact once head is BOS).
type partialPath struct {
	nodes      []*lattice.Node
	fixedCost  int32
	lowerBound int32
	seq        int
}

type pathHeap []*partialPath

func (h pathHeap) Len() int { return len(h) }

func (h pathHeap) Less(i, j int) bool {
	if h[i].lowerBound != h[j].lowerBound { return h[i].lowerBound < h[j].lowerBound }

	return h[i].seq < h[j].seq
}

func (h pathHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pathHeap) Push(x any) { *h = append(*h, x.(*partialPath)) }

func (h *pathHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Iterator lazily enumerates Paths in strictly non-decreasing total
// cost. Obtain one from Enumerate.
type Iterator struct {
	lattice    *lattice.Lattice
	constraint Constraint
	heap       pathHeap
	nextSeq    int
}

// Enumerate starts an N-best search over a settled l, rooted at eos (the
// node returned by lattice.Lattice.Settle), filtered by constraint. A nil
// or empty constraint accepts every path.
func Enumerate(l *lattice.Lattice, eos *lattice.Node, constraint Constraint) *Iterator {
	it := &Iterator{lattice: l, constraint: constraint}

	it.push(&partialPath{
		nodes:      []*lattice.Node{eos},
		fixedCost:  0,
		lowerBound: eos.PathCost(),
	})

	return it
}

func (it *Iterator) push(pp *partialPath) {
	pp.seq = it.nextSeq
	it.nextSeq++
	heap.Push(&it.heap, pp)
}

// Next returns the next-cheapest Path satisfying the Constraint, or
// false once the search space is exhausted.
func (it *Iterator) Next() (*Path, bool) {
	for it.heap.Len() > 0 {
		pp := heap.Pop(&it.heap).(*partialPath)
		head := pp.nodes[len(pp.nodes)-1]

		if head.IsBOS() {
			if !it.constraint.satisfies(realWords(pp.nodes)) { continue }

			return &Path{nodes: reverse(pp.nodes), cost: pp.lowerBound}, true
		}

		preds := it.lattice.Steps()[head.PrecedingStep()]
		for i, p := range preds {
			edgeCost := head.PrecedingEdgeCosts()[i]
			fixed := saturatingAdd(pp.fixedCost, saturatingAdd(head.NodeCost(), edgeCost))

			next := make([]*lattice.Node, len(pp.nodes)+1)
			copy(next, pp.nodes)
			next[len(pp.nodes)] = p

			it.push(&partialPath{
				nodes:      next,
				fixedCost:  fixed,
				lowerBound: saturatingAdd(fixed, p.PathCost()),
			})
		}
	}

	return nil, false
}

// realWords strips the leading EOS and trailing BOS from a
// backward-ordered node list, returning the real words in forward
// (BOS-to-EOS) order.
func realWords(backward []*lattice.Node) []*lattice.Node {
	if len(backward) < 2 { return nil }

	mid := backward[1 : len(backward)-1]

	out := make([]*lattice.Node, len(mid))
	for i, n := range mid {
		out[len(mid)-1-i] = n
	}

	return out
}

func reverse(nodes []*lattice.Node) []*lattice.Node {
	out := make([]*lattice.Node, len(nodes))
	for i, n := range nodes {
		out[len(nodes)-1-i] = n
	}

	return out
}

func saturatingAdd(a, b int32) int32 {
	const clampAt = math.MaxInt32 / 2
	if a >= clampAt || b >= clampAt { return math.MaxInt32 }

	return a + b
}
