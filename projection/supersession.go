package projection

import "github.com/c360studio/pepgraph/graph"

// Supersession builds the supersession forest: an edge A→B exists iff A is
// superseded by B. Since supersededBy is at most one per node, components
// are chains or trees rooted at non-superseded proposals, but unreconciled
// replaces claims are rendered too, so malformed components (out-degree
// above one) survive into the view rather than crashing or vanishing.
func Supersession(ug *graph.UnifiedGraph) View {
	b := newBuilder("supersession")

	for _, n := range ug.Nodes() {
		ref, ok := n.SupersededBy()
		if !ok {
			continue
		}
		b.addNode(proposalNode(n))
		b.addNode(refNode(ref))
		b.addEdge(proposalViewID(n.ID), proposalViewID(ref.ID()), EdgeSupersedes)
	}

	// Raw claims kept from contradictory or dangling input: "n replaces X"
	// renders as X superseded by n.
	for _, n := range ug.Nodes() {
		for _, ref := range n.ClaimedReplaces() {
			b.addNode(refNode(ref))
			b.addNode(proposalNode(n))
			b.addEdge(proposalViewID(ref.ID()), proposalViewID(n.ID), EdgeSupersedes)
		}
	}

	return b.view
}
