package projection

import (
	"sort"
	"strconv"
	"time"

	"github.com/c360studio/pepgraph/graph"
)

// TimelineOptions configures the timeline sub-selection. An empty Author
// includes the full population; a name restricts the timeline to proposals
// where that author appears in the author list (exact string match).
type TimelineOptions struct {
	Author string
}

// TimelinePoint is one entry of the chronological sequence.
type TimelinePoint struct {
	Date  time.Time `json:"date"`
	ID    int       `json:"id"`
	Title string    `json:"title"`
}

// Timeline produces the creation-date sequence, ascending by date with
// ties broken by ascending id.
func Timeline(ug *graph.UnifiedGraph, opts TimelineOptions) []TimelinePoint {
	var points []TimelinePoint
	for _, n := range ug.Nodes() {
		if opts.Author != "" && !hasAuthor(n, opts.Author) {
			continue
		}
		points = append(points, TimelinePoint{Date: n.Created, ID: n.ID, Title: n.Title})
	}
	sort.Slice(points, func(i, j int) bool {
		if !points[i].Date.Equal(points[j].Date) {
			return points[i].Date.Before(points[j].Date)
		}
		return points[i].ID < points[j].ID
	})
	return points
}

// TimelineView renders the sequence as point nodes chained by
// timeline-point edges, giving the renderer a polyline to draw.
func TimelineView(ug *graph.UnifiedGraph, opts TimelineOptions) View {
	b := newBuilder("timeline")

	var prev string
	for _, p := range Timeline(ug, opts) {
		id := proposalViewID(p.ID)
		attrs := map[string]string{
			"date":  p.Date.Format("2006-01-02"),
			"title": p.Title,
		}
		if n, ok := ug.Node(p.ID); ok {
			attrs["status"] = n.Status
		}
		b.addNode(Node{
			ID:    id,
			Label: "PEP " + strconv.Itoa(p.ID),
			Kind:  KindPoint,
			Attrs: attrs,
		})
		if prev != "" {
			b.addEdge(prev, id, EdgeTimelinePoint)
		}
		prev = id
	}

	return b.view
}

func hasAuthor(n *graph.Node, name string) bool {
	for _, a := range n.Authors {
		if a.Name == name {
			return true
		}
	}
	return false
}
