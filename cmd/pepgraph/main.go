// Package main provides the pepgraph binary entry point.
// Pepgraph builds a knowledge graph from the Python Enhancement Proposal
// index and exports it as RDF triples and projection views.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/pepgraph/config"
	"github.com/c360studio/pepgraph/pipeline"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "pepgraph"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		inputPath  string
		inputURL   string
		outputDir  string
		author     string
		publish    bool
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "pepgraph",
		Short: "PEP metadata knowledge graph builder",
		Long: `Pepgraph builds a unified knowledge graph from the Python Enhancement
Proposal index and exports it for downstream analysis.

It produces:
- RDF triple serializations (Turtle, N-Triples, JSON-LD)
- Node/edge projection views (supersession, dependencies, authors,
  status distribution, timeline) as JSON
- A machine-readable run report with graph quality diagnostics

Optionally, graph entities can be published to a NATS knowledge-graph
ingest subject.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, inputPath, inputURL, outputDir, author, publish, logLevel)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Local peps.json path (also used as download cache)")
	cmd.Flags().StringVar(&inputURL, "url", "", "Remote index URL")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory")
	cmd.Flags().StringVar(&author, "author", "", "Author name for the timeline projection")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publish graph entities to NATS")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	// Init command
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default user config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.NewLoader(nil).EnsureUserConfig()
		},
	})

	return cmd
}

func run(cmd *cobra.Command, configPath, inputPath, inputURL, outputDir, author string, publish bool, logLevel string) error {
	// Configure logging
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		return err
	}

	// Flags override file configuration
	if inputPath != "" {
		cfg.Input.Path = inputPath
	}
	if inputURL != "" {
		cfg.Input.URL = inputURL
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if author != "" {
		cfg.Timeline.Author = author
	}
	if publish {
		cfg.Publish.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := pipeline.Run(ctx, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s complete: %d proposals, %d authors, %d files in %s\n",
		result.RunID, result.Report.Proposals, result.Report.Authors,
		len(result.Files), result.OutputDir)
	return nil
}

// loadConfig resolves the effective configuration: an explicit file when
// given, layered discovery otherwise.
func loadConfig(configPath string, logger *slog.Logger) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.NewLoader(logger).Load()
}
