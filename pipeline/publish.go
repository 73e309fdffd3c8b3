package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/c360studio/semstreams/natsclient"

	"github.com/c360studio/pepgraph/config"
	"github.com/c360studio/pepgraph/graph"
)

// publish connects to NATS and publishes the built graph's entities to the
// knowledge-graph ingest subject. It runs after artifacts are written, so
// a publish failure never loses the local output.
func publish(ctx context.Context, cfg *config.Config, g *graph.UnifiedGraph, logger *slog.Logger) error {
	logger.Info("Connecting to NATS", slog.String("url", cfg.Publish.NATSURL))

	client, err := natsclient.NewClient(cfg.Publish.NATSURL,
		natsclient.WithName("pepgraph"),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
	)
	if err != nil {
		return fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("connect to NATS at %s: %w", cfg.Publish.NATSURL, err)
	}
	defer client.Close(ctx)

	connCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := client.WaitForConnection(connCtx); err != nil {
		return fmt.Errorf("wait for NATS connection: %w", err)
	}

	if err := graph.PublishNodes(ctx, client, g); err != nil {
		return err
	}
	logger.Info("Published graph entities",
		slog.String("subject", graph.GraphIngestSubject),
		slog.Int("count", g.Len()))
	return nil
}
