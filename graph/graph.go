// Package graph builds the unified proposal knowledge graph from validated
// records and exposes it to projections and serialization. The graph is
// constructed once per run and is immutable afterwards.
package graph

import (
	"sort"
	"time"

	"github.com/c360studio/pepgraph/record"
)

// Ref is a resolved or dangling reference to a proposal. A dangling Ref
// carries the referenced id but no node; it is kept so downstream consumers
// can decide how to render it.
type Ref struct {
	id   int
	node *Node
}

// ID returns the referenced proposal id.
func (r Ref) ID() int { return r.id }

// Node returns the referenced node when the reference resolved.
func (r Ref) Node() (*Node, bool) { return r.node, r.node != nil }

// Dangling reports whether the reference points outside the dataset.
func (r Ref) Dangling() bool { return r.node == nil }

// Node is one fully linked proposal in the unified graph. Scalar fields
// reference the input record's values; relation fields hold graph
// references instead of raw ids.
type Node struct {
	ID            int
	Title         string
	Type          string
	Status        string
	Topic         string
	PythonVersion string
	DiscussionsTo string
	URL           string
	Created       time.Time
	Authors       []record.Author
	Posts         []record.Post
	Resolution    *record.Resolution

	// ReciprocityMismatch marks nodes whose raw replaces/supersededBy
	// input was contradictory. The raw data is kept as supplied.
	ReciprocityMismatch bool

	supersededBy    *Ref
	requires        []Ref
	claimedReplaces []Ref
	graph           *UnifiedGraph
}

// SupersededBy returns the proposal that replaces this one, when any.
func (n *Node) SupersededBy() (Ref, bool) {
	if n.supersededBy == nil {
		return Ref{}, false
	}
	return *n.supersededBy, true
}

// Requires returns the proposals this one depends on, in input order.
func (n *Node) Requires() []Ref { return n.requires }

// Replaces returns the proposals this node replaces. The supersession
// relation is stored as a single supersededBy edge per node; this view is
// derived from the reverse index, plus any raw replaces claims that could
// not be mirrored (dangling targets, reciprocity mismatches).
func (n *Node) Replaces() []Ref {
	var refs []Ref
	for _, id := range n.graph.replacedBy[n.ID] {
		refs = append(refs, Ref{id: id, node: n.graph.nodes[id]})
	}
	refs = append(refs, n.claimedReplaces...)
	sort.Slice(refs, func(i, j int) bool { return refs[i].id < refs[j].id })
	return dedupRefs(refs)
}

// ClaimedReplaces returns raw replaces assertions that are not mirrored by
// a supersededBy edge. Projections render these as-is so malformed
// components stay visible.
func (n *Node) ClaimedReplaces() []Ref { return n.claimedReplaces }

// UnifiedGraph is the immutable, fully resolved graph of one input batch.
type UnifiedGraph struct {
	nodes      map[int]*Node
	order      []int
	authors    map[string][]int
	replacedBy map[int][]int
	diags      Diagnostics
}

// Node returns the proposal node with the given id.
func (g *UnifiedGraph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all proposal nodes in ascending id order.
func (g *UnifiedGraph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Len returns the number of proposals in the graph.
func (g *UnifiedGraph) Len() int { return len(g.order) }

// Authors returns all author names in lexical order.
func (g *UnifiedGraph) Authors() []string {
	names := make([]string, 0, len(g.authors))
	for name := range g.authors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AuthorProposals returns the ids of the proposals the named author
// contributed to, ascending.
func (g *UnifiedGraph) AuthorProposals(name string) []int {
	return g.authors[name]
}

// Diagnostics returns the non-fatal quality findings collected during
// construction.
func (g *UnifiedGraph) Diagnostics() Diagnostics { return g.diags }

func dedupRefs(refs []Ref) []Ref {
	out := refs[:0]
	for i, r := range refs {
		if i == 0 || refs[i-1].id != r.id {
			out = append(out, r)
		}
	}
	return out
}
