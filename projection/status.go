package projection

import (
	"sort"
	"strconv"

	"github.com/c360studio/pepgraph/graph"
)

// StatusCount is one bucket of the status distribution.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatusDistribution tallies proposals per distinct status value, ordered
// by descending count with ties broken by lexical status order. The counts
// always sum to the population size.
func StatusDistribution(ug *graph.UnifiedGraph) []StatusCount {
	tally := make(map[string]int)
	for _, n := range ug.Nodes() {
		tally[n.Status]++
	}

	counts := make([]StatusCount, 0, len(tally))
	for status, count := range tally {
		counts = append(counts, StatusCount{Status: status, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Status < counts[j].Status
	})
	return counts
}

// StatusDistributionView renders the tally as a star: one population node
// with a tally edge to each status bucket.
func StatusDistributionView(ug *graph.UnifiedGraph) View {
	b := newBuilder("status-distribution")

	totalID := "status/total"
	b.addNode(Node{
		ID:    totalID,
		Label: "All proposals",
		Kind:  KindTotal,
		Attrs: map[string]string{
			"count": strconv.Itoa(ug.Len()),
		},
	})

	for _, sc := range StatusDistribution(ug) {
		id := "status/" + sc.Status
		b.addNode(Node{
			ID:    id,
			Label: sc.Status,
			Kind:  KindStatus,
			Attrs: map[string]string{
				"count": strconv.Itoa(sc.Count),
			},
		})
		b.addEdge(totalID, id, EdgeTally)
	}

	return b.view
}
