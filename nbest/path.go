// Package nbest produces Paths through a settled lattice in strictly
// non-decreasing total cost, filtered by a Constraint.
package nbest

import "github.com/daruma/wordlattice/lattice"


// Path is an ordered sequence of nodes starting with BOS and ending with
// EOS, plus its total cost.
type Path struct {
	nodes []*lattice.Node
	cost  int32
}

func (p *Path) Nodes() []*lattice.Node { return p.nodes }
func (p *Path) Cost() int32            { return p.cost }

// Equals is pointwise over nodes.
func (p *Path) Equals(other *Path) bool {
	if other == nil || len(p.nodes) != len(other.nodes) { return false }

	for i := range p.nodes {
		if p.nodes[i] != other.nodes[i] { return false }
	}

	return true
}
