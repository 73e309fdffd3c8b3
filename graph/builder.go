package graph

import (
	"sort"

	"github.com/c360studio/pepgraph/record"
)

// Schema predicate names used in diagnostics.
const (
	predReplaces     = "replaces"
	predRequires     = "requires"
	predSupersededBy = "supersededBy"
)

// rawRelations holds a record's unresolved references between the two
// construction passes. Proposals may reference others not yet visited, so
// resolution has to wait until every node exists.
type rawRelations struct {
	replaces     []int
	supersededBy *int
	requires     []int
}

// Build constructs the unified graph from a batch of validated records.
// It fails only on duplicate ids; every other anomaly becomes a diagnostic
// on the returned graph.
func Build(records []record.Record) (*UnifiedGraph, error) {
	g := &UnifiedGraph{
		nodes:      make(map[int]*Node, len(records)),
		authors:    make(map[string][]int),
		replacedBy: make(map[int][]int),
	}

	// Pass one: one node per id, scalars copied, references collected raw.
	raw := make(map[int]rawRelations, len(records))
	for i := range records {
		rec := &records[i]
		if _, exists := g.nodes[rec.ID]; exists {
			return nil, &DuplicateIDError{ID: rec.ID}
		}
		g.nodes[rec.ID] = &Node{
			ID:            rec.ID,
			Title:         rec.Title,
			Type:          rec.Type,
			Status:        rec.Status,
			Topic:         rec.Topic,
			PythonVersion: rec.PythonVersion,
			DiscussionsTo: rec.DiscussionsTo,
			URL:           rec.URL,
			Created:       rec.Created,
			Authors:       rec.Authors,
			Posts:         rec.Posts,
			Resolution:    rec.Resolution,
			graph:         g,
		}
		raw[rec.ID] = rawRelations{
			replaces:     rec.Replaces,
			supersededBy: rec.SupersededBy,
			requires:     rec.Requires,
		}
		g.order = append(g.order, rec.ID)
	}
	sort.Ints(g.order)

	// Pass two: resolve references, then reconcile the supersession
	// relation. Raw supersededBy edges are applied before replaces claims
	// so that synthesis never overwrites supplied data.
	for _, id := range g.order {
		n := g.nodes[id]
		rels := raw[id]

		for _, rid := range rels.requires {
			n.requires = append(n.requires, g.resolve(id, predRequires, rid))
		}
		if rels.supersededBy != nil {
			ref := g.resolve(id, predSupersededBy, *rels.supersededBy)
			n.supersededBy = &ref
		}
	}

	for _, id := range g.order {
		g.applyReplacesClaims(g.nodes[id], raw[id].replaces, raw)
	}

	// Reverse index: the replaces view is derived from supersededBy edges.
	for _, id := range g.order {
		n := g.nodes[id]
		if n.supersededBy == nil {
			continue
		}
		if target, ok := n.supersededBy.Node(); ok {
			g.replacedBy[target.ID] = append(g.replacedBy[target.ID], id)
		}
	}

	g.detectRequiresCycles()

	for _, id := range g.order {
		for _, a := range g.nodes[id].Authors {
			g.authors[a.Name] = append(g.authors[a.Name], id)
		}
	}

	return g, nil
}

// resolve turns a raw id into a Ref, recording a dangling diagnostic when
// the target is absent from the batch.
func (g *UnifiedGraph) resolve(from int, predicate string, to int) Ref {
	if node, ok := g.nodes[to]; ok {
		return Ref{id: to, node: node}
	}
	g.diags.Dangling = append(g.diags.Dangling, DanglingRef{
		From:      from,
		Predicate: predicate,
		To:        to,
	})
	return Ref{id: to}
}

// applyReplacesClaims reconciles one node's raw replaces list against the
// supersededBy side of the relation. A claim "n replaces target" implies
// target.supersededBy == n: when the target has no supersededBy yet the
// missing direction is synthesized; when it disagrees, the raw data is
// kept, both nodes are flagged, and the claim is retained verbatim.
func (g *UnifiedGraph) applyReplacesClaims(n *Node, claims []int, raw map[int]rawRelations) {
	for _, rid := range claims {
		target, ok := g.nodes[rid]
		if !ok {
			ref := g.resolve(n.ID, predReplaces, rid)
			n.claimedReplaces = append(n.claimedReplaces, ref)
			continue
		}

		if target.supersededBy == nil {
			ref := Ref{id: n.ID, node: n}
			target.supersededBy = &ref
			continue
		}
		if target.supersededBy.ID() == n.ID {
			continue
		}

		g.diags.Mismatches = append(g.diags.Mismatches, ReciprocityMismatch{
			Proposal: target.ID,
			Claimed:  n.ID,
			Actual:   target.supersededBy.ID(),
		})
		n.ReciprocityMismatch = true
		target.ReciprocityMismatch = true
		n.claimedReplaces = append(n.claimedReplaces, Ref{id: rid, node: target})
	}
}

// detectRequiresCycles runs a depth-first traversal over the requires
// relation with an on-stack marker set. Each back edge yields one cycle
// diagnostic listing the participating ids; construction always completes.
func (g *UnifiedGraph) detectRequiresCycles() {
	const (
		white = iota
		gray
		black
	)
	color := make(map[int]int, len(g.order))
	var stack []int

	var visit func(id int)
	visit = func(id int) {
		color[id] = gray
		stack = append(stack, id)

		for _, ref := range g.nodes[id].requires {
			target, ok := ref.Node()
			if !ok {
				continue // dangling refs have no outgoing edges
			}
			switch color[target.ID] {
			case white:
				visit(target.ID)
			case gray:
				g.diags.Cycles = append(g.diags.Cycles, RequiresCycle{
					Members: cycleMembers(stack, target.ID),
				})
			}
		}

		stack = stack[:len(stack)-1]
		color[id] = black
	}

	for _, id := range g.order {
		if color[id] == white {
			visit(id)
		}
	}
}

// cycleMembers extracts the stack segment from the back edge target to the
// top of the stack.
func cycleMembers(stack []int, from int) []int {
	for i, id := range stack {
		if id == from {
			members := make([]int, len(stack)-i)
			copy(members, stack[i:])
			return members
		}
	}
	return []int{from}
}
