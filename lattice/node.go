package lattice

import "github.com/daruma/wordlattice/input"


// Node is a lattice vertex. BOS and EOS nodes have empty keys and the
// absent value (both nil). PrecedingStep is the step index of the node
// that immediately precedes along the best predecessor; PrecedingEdgeCosts
// holds the transition cost to each predecessor at that step, indexed the
// same way as that step's node slice.
type Node struct {
	key                    input.Input
	value                  any
	precedingStep          int
	precedingEdgeCosts     []int32
	bestPrecedingNodeIndex int
	nodeCost               int32
	pathCost               int32
}

func (n *Node) Key() input.Input             { return n.key }
func (n *Node) Value() any                   { return n.value }
func (n *Node) PrecedingStep() int           { return n.precedingStep }
func (n *Node) PrecedingEdgeCosts() []int32  { return n.precedingEdgeCosts }
func (n *Node) BestPrecedingNodeIndex() int  { return n.bestPrecedingNodeIndex }
func (n *Node) NodeCost() int32              { return n.nodeCost }
func (n *Node) PathCost() int32              { return n.pathCost }

// IsBOS reports whether n is the BOS node: an absent key and value,
// preceding step 0, and no preceding edge costs. An EOS node always has
// preceding edge costs or a non-zero preceding step, so it is not reported.
func (n *Node) IsBOS() bool { return n.key == nil && n.value == nil && n.precedingStep == 0 && len(n.precedingEdgeCosts) == 0 }

func newBOS() *Node {
	return &Node{precedingStep: 0, nodeCost: 0, pathCost: 0}
}
