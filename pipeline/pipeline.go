// Package pipeline orchestrates one end-to-end batch run: load the
// proposal index, validate it, build the unified graph, derive the
// projections, and serialize everything to the output directory. All
// artifacts are accumulated in memory and written together at the end, so
// a fatal error never leaves a partial output set behind.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/pepgraph/config"
	"github.com/c360studio/pepgraph/export"
	"github.com/c360studio/pepgraph/graph"
	"github.com/c360studio/pepgraph/projection"
	"github.com/c360studio/pepgraph/record"
	"github.com/c360studio/pepgraph/source/pepsjson"
)

// artifact is one output file pending write.
type artifact struct {
	name string
	data []byte
}

// Result summarizes a completed run.
type Result struct {
	RunID     string
	OutputDir string
	Files     []string
	Report    Report
}

// Run executes the full batch pipeline with the given configuration.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	runID := uuid.New().String()
	logger.Info("Starting pipeline run", slog.String("run_id", runID))

	formats, err := cfg.Formats()
	if err != nil {
		return nil, err
	}

	records, err := loadRecords(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded proposal records", slog.Int("count", len(records)))

	for i := range records {
		if err := records[i].Validate(i); err != nil {
			return nil, fmt.Errorf("validate records: %w", err)
		}
	}

	g, err := graph.Build(records)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	logDiagnostics(logger, g.Diagnostics())

	var artifacts []artifact

	exporter := export.NewRDFExporter()
	exporter.AddSchema()
	exporter.AddGraph(g)
	for _, format := range formats {
		info, ok := export.GetFormatInfo(format)
		if !ok {
			return nil, fmt.Errorf("unknown format: %s", format)
		}
		serialized, err := exporter.Export(format)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", format, err)
		}
		artifacts = append(artifacts, artifact{name: "peps" + info.Extension, data: []byte(serialized)})
	}

	timelineOpts := projection.TimelineOptions{Author: cfg.Timeline.Author}
	views := []projection.View{
		projection.Supersession(g),
		projection.Dependencies(g),
		projection.AuthorContributions(g),
		projection.StatusDistributionView(g),
		projection.TimelineView(g, timelineOpts),
	}
	for _, v := range views {
		data, err := export.MarshalView(v)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact{name: v.Name + ".json", data: data})
	}

	report := buildReport(runID, cfg, g, timelineOpts)
	for _, a := range artifacts {
		report.Files = append(report.Files, a.name)
	}
	report.Files = append(report.Files, "report.json")
	reportData, err := report.marshal()
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, artifact{name: "report.json", data: reportData})

	if err := writeArtifacts(cfg.Output.Dir, artifacts); err != nil {
		return nil, err
	}
	logger.Info("Wrote run artifacts",
		slog.String("dir", cfg.Output.Dir),
		slog.Int("files", len(artifacts)))

	if cfg.Publish.Enabled {
		if err := publish(ctx, cfg, g, logger); err != nil {
			return nil, err
		}
	}

	result := &Result{
		RunID:     runID,
		OutputDir: cfg.Output.Dir,
		Report:    report,
	}
	for _, a := range artifacts {
		result.Files = append(result.Files, a.name)
	}
	return result, nil
}

// loadRecords reads the proposal index from the configured source. A
// configured URL downloads through the cache path; otherwise the local
// file is read directly.
func loadRecords(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]record.Record, error) {
	if cfg.Input.URL != "" {
		logger.Debug("Fetching proposal index",
			slog.String("url", cfg.Input.URL),
			slog.String("cache", cfg.Input.Path))
		return pepsjson.Fetch(ctx, nil, cfg.Input.URL, cfg.Input.Path)
	}
	logger.Debug("Reading proposal index", slog.String("path", cfg.Input.Path))
	return pepsjson.Load(cfg.Input.Path)
}

// logDiagnostics surfaces non-fatal graph quality findings in the run log.
func logDiagnostics(logger *slog.Logger, d graph.Diagnostics) {
	if d.Clean() {
		logger.Info("Graph diagnostics clean")
		return
	}
	for _, dangling := range d.Dangling {
		logger.Warn("Dangling reference",
			slog.Int("from", dangling.From),
			slog.String("predicate", dangling.Predicate),
			slog.Int("to", dangling.To))
	}
	for _, mismatch := range d.Mismatches {
		logger.Warn("Reciprocity mismatch",
			slog.Int("proposal", mismatch.Proposal),
			slog.Int("claimed", mismatch.Claimed),
			slog.Int("actual", mismatch.Actual))
	}
	for _, cycle := range d.Cycles {
		logger.Warn("Dependency cycle", slog.Any("members", cycle.Members))
	}
}

// writeArtifacts creates the output directory and writes all files. Called
// only after every artifact built successfully.
func writeArtifacts(dir string, artifacts []artifact) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, a := range artifacts {
		path := filepath.Join(dir, a.name)
		if err := os.WriteFile(path, a.data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", a.name, err)
		}
	}
	return nil
}

// publishTimeout bounds the NATS connection wait.
const publishTimeout = 10 * time.Second
