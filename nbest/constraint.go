package nbest

import "github.com/daruma/wordlattice/input"
import "github.com/daruma/wordlattice/lattice"


// MaxStep is the distinguished Wildcard step value that matches any
// non-BOS node, per spec.md §4.7.
const MaxStep = -1

type matchResult int

const (
	pending  matchResult = iota // not yet satisfied; try the same element against the next node
	matched                     // satisfied by this node; advance to the next element
	skipRest                    // satisfied for this node and every node after it
)

// Element is one link of a Constraint.
type Element interface {
	match(candidate *lattice.Node) matchResult
}

// NodeMatch requires the Constraint to encounter a node that equals a
// stored template node exactly: same key, same value, same
// preceding-step. Two entries can share a surface key (e.g. "a" spelled
// both "Alpha" and "Alice"), so Value disambiguates them.
type NodeMatch struct {
	Key           input.Input
	Value         any
	PrecedingStep int
}

func (m NodeMatch) match(c *lattice.Node) matchResult {
	if keysEqual(m.Key, c.Key()) && m.Value == c.Value() && c.PrecedingStep() == m.PrecedingStep {
		return matched
	}

	return pending
}

// Wildcard requires the Constraint to encounter a node whose
// preceding-step equals Step. MaxStep matches any non-BOS node.
type Wildcard struct {
	Step int
}

func (w Wildcard) match(c *lattice.Node) matchResult {
	if w.Step == MaxStep { return skipRest }

	switch {
	case c.PrecedingStep() == w.Step:
		return matched
	case c.PrecedingStep() > w.Step:
		return skipRest
	default:
		return pending
	}
}

// Constraint is an ordered sequence of constraint-elements. The empty
// Constraint accepts everything.
type Constraint []Element

// satisfies checks a completed path's real words (BOS and EOS excluded,
// in forward order) against c. Elements are consumed in order; a node
// that doesn't satisfy the current pending element is skipped and the
// next node is tried against the same element. A path where every
// element is eventually consumed, or the Constraint is empty, is
// accepted.
func (c Constraint) satisfies(realWords []*lattice.Node) bool {
	ei := 0
	for _, node := range realWords {
		if ei >= len(c) { break }

		switch c[ei].match(node) {
		case matched:
			ei++
		case skipRest:
			return true
		case pending:
			// keep ei, try the next node
		}
	}

	return ei >= len(c)
}

func keysEqual(a, b input.Input) bool {
	if a == nil || b == nil { return a == nil && b == nil }

	return a.Equals(b)
}
