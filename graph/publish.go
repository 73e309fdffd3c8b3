package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/pepgraph/vocabulary/peps"
	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/c360studio/semstreams/payloadregistry"
)

// GraphIngestSubject is the subject for knowledge-graph entity ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// publishSource identifies this pipeline in triple provenance.
const publishSource = "pepgraph.build"

// PublishNodes publishes every proposal node of a built graph to the
// knowledge-graph ingest subject. The published bytes are the JSON form of
// EntityPayload, the same type registered for consumer deserialization.
// A nil client is a no-op so the batch pipeline degrades gracefully when
// publishing is disabled.
func PublishNodes(ctx context.Context, nc *natsclient.Client, g *UnifiedGraph) error {
	if nc == nil {
		return nil
	}

	// Registration validates the payload's Schema() against the declared
	// type before anything is emitted.
	reg := payloadregistry.New()
	if err := RegisterEntityPayload(reg); err != nil {
		return fmt.Errorf("register entity payload: %w", err)
	}

	now := time.Now()
	for _, n := range g.Nodes() {
		payload := &EntityPayload{
			EntityID_:  ProposalEntityID(n.ID),
			TripleData: nodeTriples(n, now),
			UpdatedAt:  now,
		}
		if err := payload.Validate(); err != nil {
			return fmt.Errorf("entity pep-%d: %w", n.ID, err)
		}

		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal entity pep-%d: %w", n.ID, err)
		}
		if err := nc.PublishToStream(ctx, GraphIngestSubject, data); err != nil {
			return fmt.Errorf("publish entity pep-%d: %w", n.ID, err)
		}
	}

	return nil
}

// nodeTriples builds ingest triples for one proposal node using the peps
// vocabulary. Relation objects are entity ids so the receiving graph can
// link them; dangling references keep the absent id's entity id.
func nodeTriples(n *Node, now time.Time) []message.Triple {
	subject := ProposalEntityID(n.ID)
	add := func(triples []message.Triple, predicate string, object any) []message.Triple {
		return append(triples, message.Triple{
			Subject:    subject,
			Predicate:  predicate,
			Object:     object,
			Source:     publishSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}

	triples := add(nil, peps.PredicateID, n.ID)
	triples = add(triples, peps.PredicateTitle, n.Title)
	triples = add(triples, peps.PredicateType, n.Type)
	triples = add(triples, peps.PredicateStatus, n.Status)
	triples = add(triples, peps.PredicateURL, n.URL)
	triples = add(triples, peps.PredicateCreated, n.Created.Format("2006-01-02"))

	if n.Topic != "" {
		triples = add(triples, peps.PredicateTopic, n.Topic)
	}
	if n.PythonVersion != "" {
		triples = add(triples, peps.PredicatePythonVersion, n.PythonVersion)
	}
	if n.DiscussionsTo != "" {
		triples = add(triples, peps.PredicateDiscussionsTo, n.DiscussionsTo)
	}

	for _, a := range n.Authors {
		triples = add(triples, peps.PredicateHasAuthor, AuthorEntityID(a.Name))
	}
	if ref, ok := n.SupersededBy(); ok {
		triples = add(triples, peps.PredicateSupersededBy, ProposalEntityID(ref.ID()))
	}
	for _, ref := range n.Replaces() {
		triples = add(triples, peps.PredicateReplaces, ProposalEntityID(ref.ID()))
	}
	for _, ref := range n.Requires() {
		triples = add(triples, peps.PredicateRequires, ProposalEntityID(ref.ID()))
	}

	return triples
}

// ProposalEntityID generates a consistent entity ID for a proposal.
// Format: peps.catalog.proposal.pep-<id>
func ProposalEntityID(id int) string {
	return fmt.Sprintf("peps.catalog.proposal.pep-%d", id)
}

// AuthorEntityID generates a consistent entity ID for an author.
func AuthorEntityID(name string) string {
	return "peps.catalog.author." + name
}
