package graph

// DanglingRef records a reference to a proposal id absent from the input
// batch. The reference itself is retained on the graph.
type DanglingRef struct {
	From      int    `json:"from"`
	Predicate string `json:"predicate"`
	To        int    `json:"to"`
}

// ReciprocityMismatch records contradictory raw replaces/supersededBy
// input: Claimed asserts it replaces Proposal, but Proposal's supersededBy
// already points at Actual.
type ReciprocityMismatch struct {
	Proposal int `json:"proposal"`
	Claimed  int `json:"claimed"`
	Actual   int `json:"actual"`
}

// RequiresCycle records one cycle found in the requires relation. Members
// are the participating proposal ids in traversal order.
type RequiresCycle struct {
	Members []int `json:"members"`
}

// Diagnostics is the non-fatal quality report attached to a built graph.
// Construction always completes when only these findings occur.
type Diagnostics struct {
	Dangling   []DanglingRef         `json:"dangling,omitempty"`
	Mismatches []ReciprocityMismatch `json:"reciprocity_mismatches,omitempty"`
	Cycles     []RequiresCycle       `json:"requires_cycles,omitempty"`
}

// Clean reports whether no quality findings were recorded.
func (d Diagnostics) Clean() bool {
	return len(d.Dangling) == 0 && len(d.Mismatches) == 0 && len(d.Cycles) == 0
}
