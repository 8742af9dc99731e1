// Package lattice builds a DAG over positions 0..N by pushing inputs; each
// position holds the set of nodes ending there. On settle, it yields an
// EOS node plus the array of preceding-edge costs.
package lattice

import "math"

import "github.com/daruma/wordlattice/input"
import "github.com/daruma/wordlattice/vocabulary"


// Lattice owns its Vocabulary for the duration of the enumeration; nodes
// embed step/index linkage rather than owning pointers, per spec.md §9.
type Lattice struct {
	vocab   vocabulary.Vocabulary
	steps   [][]*Node
	tokens  []input.Input
	settled bool
}

// New starts an empty lattice: steps=[BOS].
func New(vocab vocabulary.Vocabulary) *Lattice {
	return &Lattice{vocab: vocab, steps: [][]*Node{{newBOS()}}}
}

func (l *Lattice) Steps() [][]*Node { return l.steps }

func (l *Lattice) Settled() bool { return l.settled }

// PushBack extends the lattice by one token, per spec.md §4.6. It is
// forbidden once the lattice has settled.
func (l *Lattice) PushBack(tok input.Input) error {
	if l.settled { return ErrAlreadySettled }

	l.tokens = append(l.tokens, tok)

	k := len(l.steps) - 1 // current number of steps minus 1, before this push
	newStep := k + 1

	var newNodes []*Node
	for j := 0; j <= k; j++ {
		window := l.tokens[j]
		for t := j + 1; t < newStep; t++ {
			var appendErr error
			window, appendErr = window.Append(l.tokens[t])
			if appendErr != nil { return appendErr }
		}

		for _, e := range l.vocab.FindEntries(window) {
			newNodes = append(newNodes, l.buildNode(e, j))
		}
	}

	l.steps = append(l.steps, newNodes)
	return nil
}

// buildNode constructs the node for entry e arriving from step
// precedingStep, per spec.md §4.6 step 2.
func (l *Lattice) buildNode(e vocabulary.Entry, precedingStep int) *Node {
	preds := l.steps[precedingStep]

	costs := make([]int32, len(preds))
	best := 0
	var bestTotal int32

	for i, n := range preds {
		c := connectionCost(l.vocab, n, e)
		costs[i] = c

		total := saturatingAdd(n.pathCost, c)
		if i == 0 || total < bestTotal {
			bestTotal = total
			best = i
		}
	}

	return &Node{
		key:                    e.Key(),
		value:                  e.Value(),
		precedingStep:          precedingStep,
		precedingEdgeCosts:     costs,
		bestPrecedingNodeIndex: best,
		nodeCost:               e.Cost(),
		pathCost:               saturatingAdd(bestTotal, e.Cost()),
	}
}

// Settle finalizes the lattice by appending an EOS step whose
// predecessors are the last step's nodes.
func (l *Lattice) Settle() (*Node, []int32, error) {
	if l.settled { return nil, nil, ErrAlreadySettled }

	lastStep := len(l.steps) - 1
	eosEntry := vocabulary.NewEntry(nil, nil, 0)

	eos := l.buildNode(eosEntry, lastStep)
	l.steps = append(l.steps, []*Node{eos})
	l.settled = true

	return eos, eos.precedingEdgeCosts, nil
}

func isSentinel(v vocabulary.View) bool { return v.Key() == nil && v.Value() == nil }

// connectionCost asks the vocabulary for the transition cost, except for
// the structural BOS-to-EOS transition (both sides sentinel) on an empty
// lattice, which defaults to 0 rather than the vocabulary's NoConnection
// sentinel — spec.md §8 requires zero push_backs then settle to yield one
// path of cost 0, and no vocabulary entry describes that structural edge.
func connectionCost(vocab vocabulary.Vocabulary, n *Node, e vocabulary.Entry) int32 {
	c := vocab.FindConnection(n, e)
	if c == vocabulary.NoConnection && isSentinel(n) && isSentinel(e) { return 0 }

	return c
}

func saturatingAdd(a, b int32) int32 {
	const clampAt = math.MaxInt32 / 2
	if a >= clampAt || b >= clampAt { return math.MaxInt32 }

	return a + b
}
