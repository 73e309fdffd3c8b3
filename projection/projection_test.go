package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/pepgraph/graph"
	"github.com/c360studio/pepgraph/record"
)

func buildGraph(t *testing.T, records []record.Record) *graph.UnifiedGraph {
	t.Helper()
	g, err := graph.Build(records)
	require.NoError(t, err)
	return g
}

func testRecord(id int, status string, created time.Time, authors ...string) record.Record {
	r := record.Record{
		ID:      id,
		Title:   "Proposal",
		Type:    "Standards Track",
		Status:  status,
		Created: created,
		URL:     "https://peps.python.org/",
	}
	for _, name := range authors {
		r.Authors = append(r.Authors, record.Author{Name: name})
	}
	return r
}

func day(n int) time.Time {
	return time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestSupersession_OnlyInvolvedProposals(t *testing.T) {
	sb := 2
	g := buildGraph(t, []record.Record{
		func() record.Record { r := testRecord(1, "Superseded", day(1)); r.SupersededBy = &sb; return r }(),
		testRecord(2, "Final", day(2)),
		testRecord(9, "Final", day(9)), // uninvolved
	})

	v := Supersession(g)
	assert.Equal(t, "supersession", v.Name)
	require.Len(t, v.Edges, 1)
	assert.Equal(t, Edge{From: "pep-1", To: "pep-2", Type: EdgeSupersedes}, v.Edges[0])

	var ids []string
	for _, n := range v.Nodes {
		ids = append(ids, n.ID)
	}
	assert.NotContains(t, ids, "pep-9")
}

func TestSupersession_DanglingTargetIsStub(t *testing.T) {
	sb := 999
	g := buildGraph(t, []record.Record{
		func() record.Record { r := testRecord(1, "Superseded", day(1)); r.SupersededBy = &sb; return r }(),
	})

	v := Supersession(g)
	require.Len(t, v.Nodes, 2)
	assert.Equal(t, KindStub, v.Nodes[1].Kind)
	assert.Equal(t, "pep-999", v.Nodes[1].ID)
}

func TestDependencies_IncludesIsolatedProposals(t *testing.T) {
	g := buildGraph(t, []record.Record{
		func() record.Record { r := testRecord(1, "Final", day(1)); r.Requires = []int{2}; return r }(),
		testRecord(2, "Final", day(2)),
		testRecord(3, "Final", day(3)), // no edges at all
	})

	v := Dependencies(g)
	require.Len(t, v.Nodes, 3)
	require.Len(t, v.Edges, 1)
	assert.Equal(t, Edge{From: "pep-1", To: "pep-2", Type: EdgeRequires}, v.Edges[0])
}

func TestDependencies_DanglingRequiresStub(t *testing.T) {
	g := buildGraph(t, []record.Record{
		func() record.Record { r := testRecord(9, "Draft", day(9)); r.Requires = []int{42}; return r }(),
	})

	v := Dependencies(g)
	require.Len(t, v.Nodes, 2)
	assert.Equal(t, "pep-9", v.Nodes[0].ID)
	assert.Equal(t, KindProposal, v.Nodes[0].Kind)
	assert.Equal(t, "pep-42", v.Nodes[1].ID)
	assert.Equal(t, KindStub, v.Nodes[1].Kind)

	// The unresolved dependency renders as a single inbound edge; the
	// stub has no outgoing edges of its own.
	require.Len(t, v.Edges, 1)
	assert.Equal(t, Edge{From: "pep-9", To: "pep-42", Type: EdgeRequires}, v.Edges[0])
	for _, e := range v.Edges {
		assert.NotEqual(t, "pep-42", e.From)
	}
}

func TestDependencies_SelfLoopPreserved(t *testing.T) {
	g := buildGraph(t, []record.Record{
		func() record.Record { r := testRecord(5, "Final", day(5)); r.Requires = []int{5}; return r }(),
	})

	v := Dependencies(g)
	require.Len(t, v.Edges, 1)
	assert.Equal(t, "pep-5", v.Edges[0].From)
	assert.Equal(t, "pep-5", v.Edges[0].To)
}

func TestAuthorContributions_CountsAndOrder(t *testing.T) {
	g := buildGraph(t, []record.Record{
		testRecord(1, "Final", day(1), "Barry Warsaw", "Guido van Rossum"),
		testRecord(8, "Active", day(8), "Guido van Rossum"),
	})

	v := AuthorContributions(g)
	require.NotEmpty(t, v.Nodes)

	// Authors come first, lexically ordered.
	assert.Equal(t, "author/Barry Warsaw", v.Nodes[0].ID)
	assert.Equal(t, "1", v.Nodes[0].Attrs["contributions"])

	guido := findNode(t, v, "author/Guido van Rossum")
	assert.Equal(t, "2", guido.Attrs["contributions"])

	assert.Len(t, v.Edges, 3)
	for _, e := range v.Edges {
		assert.Equal(t, EdgeAuthored, e.Type)
	}
}

func TestStatusDistribution_OrderAndSum(t *testing.T) {
	g := buildGraph(t, []record.Record{
		testRecord(1, "Final", day(1)),
		testRecord(2, "Final", day(2)),
		testRecord(3, "Active", day(3)),
		testRecord(4, "Deferred", day(4)),
		testRecord(5, "Active", day(5)),
	})

	counts := StatusDistribution(g)
	require.Len(t, counts, 3)

	// Descending count, lexical tiebreak.
	assert.Equal(t, StatusCount{Status: "Active", Count: 2}, counts[0])
	assert.Equal(t, StatusCount{Status: "Final", Count: 2}, counts[1])
	assert.Equal(t, StatusCount{Status: "Deferred", Count: 1}, counts[2])

	sum := 0
	for _, c := range counts {
		sum += c.Count
	}
	assert.Equal(t, g.Len(), sum)
}

func TestStatusDistributionView_Star(t *testing.T) {
	g := buildGraph(t, []record.Record{
		testRecord(1, "Final", day(1)),
		testRecord(2, "Active", day(2)),
	})

	v := StatusDistributionView(g)
	require.Len(t, v.Nodes, 3)
	assert.Equal(t, "status/total", v.Nodes[0].ID)
	assert.Equal(t, "2", v.Nodes[0].Attrs["count"])

	require.Len(t, v.Edges, 2)
	for _, e := range v.Edges {
		assert.Equal(t, "status/total", e.From)
		assert.Equal(t, EdgeTally, e.Type)
	}
}

func TestTimeline_DateThenIDOrder(t *testing.T) {
	g := buildGraph(t, []record.Record{
		testRecord(20, "Final", day(5)),
		testRecord(3, "Final", day(5)),
		testRecord(8, "Final", day(1)),
	})

	points := Timeline(g, TimelineOptions{})
	require.Len(t, points, 3)
	assert.Equal(t, 8, points[0].ID)
	assert.Equal(t, 3, points[1].ID)
	assert.Equal(t, 20, points[2].ID)
}

func TestTimeline_AuthorFilter(t *testing.T) {
	g := buildGraph(t, []record.Record{
		testRecord(1, "Final", day(1), "Guido van Rossum"),
		testRecord(2, "Final", day(2), "Barry Warsaw"),
		testRecord(3, "Final", day(3), "Barry Warsaw", "Guido van Rossum"),
	})

	points := Timeline(g, TimelineOptions{Author: "Guido van Rossum"})
	require.Len(t, points, 2)
	assert.Equal(t, 1, points[0].ID)
	assert.Equal(t, 3, points[1].ID)

	// Exact match only, no substring matching.
	assert.Empty(t, Timeline(g, TimelineOptions{Author: "Guido"}))
}

func TestTimelineView_ChainsPoints(t *testing.T) {
	g := buildGraph(t, []record.Record{
		testRecord(1, "Final", day(1)),
		testRecord(2, "Final", day(2)),
		testRecord(3, "Final", day(3)),
	})

	v := TimelineView(g, TimelineOptions{})
	require.Len(t, v.Nodes, 3)
	require.Len(t, v.Edges, 2)
	assert.Equal(t, Edge{From: "pep-1", To: "pep-2", Type: EdgeTimelinePoint}, v.Edges[0])
	assert.Equal(t, Edge{From: "pep-2", To: "pep-3", Type: EdgeTimelinePoint}, v.Edges[1])
}

func TestProjections_Deterministic(t *testing.T) {
	records := []record.Record{
		testRecord(1, "Final", day(1), "Guido van Rossum"),
		testRecord(2, "Active", day(2), "Barry Warsaw"),
		func() record.Record { r := testRecord(3, "Final", day(3)); r.Requires = []int{1, 2}; return r }(),
	}
	g1 := buildGraph(t, records)
	g2 := buildGraph(t, records)

	assert.Equal(t, Dependencies(g1), Dependencies(g2))
	assert.Equal(t, AuthorContributions(g1), AuthorContributions(g2))
	assert.Equal(t, StatusDistributionView(g1), StatusDistributionView(g2))
	assert.Equal(t, TimelineView(g1, TimelineOptions{}), TimelineView(g2, TimelineOptions{}))
}

func findNode(t *testing.T, v View, id string) Node {
	t.Helper()
	for _, n := range v.Nodes {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("node %s not found in view %s", id, v.Name)
	return Node{}
}
