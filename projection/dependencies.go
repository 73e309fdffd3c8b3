package projection

import "github.com/c360studio/pepgraph/graph"

// Dependencies builds the directed requires graph over the full
// population. Proposals without edges are included so the rendered picture
// reflects every proposal, dangling targets appear as stub nodes with no
// outgoing edges, and cycles (including self-loops) are preserved as-is.
func Dependencies(ug *graph.UnifiedGraph) View {
	b := newBuilder("dependencies")

	for _, n := range ug.Nodes() {
		b.addNode(proposalNode(n))
	}
	for _, n := range ug.Nodes() {
		for _, ref := range n.Requires() {
			b.addNode(refNode(ref))
			b.addEdge(proposalViewID(n.ID), proposalViewID(ref.ID()), EdgeRequires)
		}
	}

	return b.view
}
