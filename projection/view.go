// Package projection derives narrow, layout-agnostic views from the
// unified graph. Every projection is a pure function: it never mutates the
// graph, and running it twice on the same graph yields identical output
// (node and edge order follow explicit sort and tie-break rules).
package projection

import (
	"strconv"

	"github.com/c360studio/pepgraph/graph"
)

// EdgeType classifies an edge for the rendering adapter.
type EdgeType string

const (
	// EdgeSupersedes points from a proposal to the one replacing it.
	EdgeSupersedes EdgeType = "supersedes"
	// EdgeRequires points from a proposal to a dependency.
	EdgeRequires EdgeType = "requires"
	// EdgeAuthored points from an author to an authored proposal.
	EdgeAuthored EdgeType = "authored"
	// EdgeTally points from the population node to a status bucket.
	EdgeTally EdgeType = "tally"
	// EdgeTimelinePoint chains chronologically adjacent points.
	EdgeTimelinePoint EdgeType = "timeline-point"
)

// Node kinds used across projections.
const (
	KindProposal = "proposal"
	KindStub     = "stub"
	KindAuthor   = "author"
	KindStatus   = "status"
	KindTotal    = "total"
	KindPoint    = "point"
)

// Node is one labeled node of a projection view.
type Node struct {
	ID    string            `json:"id"`
	Label string            `json:"label"`
	Kind  string            `json:"kind"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

// Edge is one typed, directed edge between view nodes.
type Edge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Type EdgeType `json:"type"`
}

// View is the generic node/edge structure consumed by a rendering adapter.
type View struct {
	Name  string `json:"name"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// builder accumulates a view, keeping nodes unique by id in insertion
// order.
type builder struct {
	view View
	seen map[string]bool
}

func newBuilder(name string) *builder {
	return &builder{
		view: View{Name: name, Nodes: []Node{}, Edges: []Edge{}},
		seen: make(map[string]bool),
	}
}

func (b *builder) addNode(n Node) {
	if b.seen[n.ID] {
		return
	}
	b.seen[n.ID] = true
	b.view.Nodes = append(b.view.Nodes, n)
}

func (b *builder) addEdge(from, to string, t EdgeType) {
	b.view.Edges = append(b.view.Edges, Edge{From: from, To: to, Type: t})
}

// proposalViewID is the view node id for a proposal.
func proposalViewID(id int) string {
	return "pep-" + strconv.Itoa(id)
}

// proposalNode builds the view node for a resolved proposal, carrying the
// attributes renderers use for hover text and styling.
func proposalNode(n *graph.Node) Node {
	attrs := map[string]string{
		"title":  n.Title,
		"status": n.Status,
	}
	if !n.Created.IsZero() {
		attrs["created"] = n.Created.Format("2006-01-02")
	}
	if n.PythonVersion != "" {
		attrs["python_version"] = n.PythonVersion
	}
	return Node{
		ID:    proposalViewID(n.ID),
		Label: "PEP " + strconv.Itoa(n.ID),
		Kind:  KindProposal,
		Attrs: attrs,
	}
}

// refNode builds the view node for a reference, falling back to a stub for
// dangling targets so that absent proposals stay visible.
func refNode(ref graph.Ref) Node {
	if target, ok := ref.Node(); ok {
		return proposalNode(target)
	}
	return Node{
		ID:    proposalViewID(ref.ID()),
		Label: "PEP " + strconv.Itoa(ref.ID()),
		Kind:  KindStub,
	}
}
