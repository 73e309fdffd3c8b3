package pipeline

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/pepgraph/config"
	"github.com/c360studio/pepgraph/graph"
	"github.com/c360studio/pepgraph/projection"
)

// Report is the machine-readable summary written alongside the run
// artifacts. Diagnostics carry the full finding lists so downstream
// tooling does not have to re-derive them from the graph.
type Report struct {
	RunID          string                   `json:"run_id"`
	GeneratedAt    time.Time                `json:"generated_at"`
	Proposals      int                      `json:"proposals"`
	Authors        int                      `json:"authors"`
	StatusCounts   []projection.StatusCount `json:"status_counts"`
	TimelineAuthor string                   `json:"timeline_author,omitempty"`
	TimelinePoints int                      `json:"timeline_points"`
	Diagnostics    graph.Diagnostics        `json:"diagnostics"`
	Files          []string                 `json:"files"`
}

func buildReport(runID string, cfg *config.Config, g *graph.UnifiedGraph, opts projection.TimelineOptions) Report {
	return Report{
		RunID:          runID,
		GeneratedAt:    time.Now().UTC(),
		Proposals:      g.Len(),
		Authors:        len(g.Authors()),
		StatusCounts:   projection.StatusDistribution(g),
		TimelineAuthor: opts.Author,
		TimelinePoints: len(projection.Timeline(g, opts)),
		Diagnostics:    g.Diagnostics(),
	}
}

func (r Report) marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return append(data, '\n'), nil
}
