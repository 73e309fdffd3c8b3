package export

import (
	"fmt"
	"net/url"

	"github.com/c360studio/pepgraph/graph"
	"github.com/c360studio/pepgraph/vocabulary/peps"
)

// ProposalIRI returns the instance IRI for a proposal id.
func ProposalIRI(id int) string {
	return fmt.Sprintf("%spep-%d", peps.EntityNamespace, id)
}

// AuthorIRI returns the instance IRI for an author name. Names are
// query-escaped so spaces and punctuation stay IRI-safe.
func AuthorIRI(name string) string {
	return peps.EntityNamespace + "author/" + url.QueryEscape(name)
}

// AddGraph adds every proposal in the unified graph as a subject, in
// ascending id order, followed by one subject per distinct author in
// lexical order. Posts and resolutions become blank nodes owned by their
// proposal. Dangling relation targets are still emitted as IRIs so the
// exported data matches the input assertions.
func (e *RDFExporter) AddGraph(g *graph.UnifiedGraph) {
	for _, n := range g.Nodes() {
		e.addProposal(n)
	}

	for _, name := range g.Authors() {
		e.AddSubject(Subject{
			ID:    AuthorIRI(name),
			Types: []string{peps.ClassAuthor},
			Statements: []Statement{
				{Predicate: peps.PredicateAuthorName, Object: Literal{Value: name}},
			},
		})
	}
}

// addProposal emits the proposal subject and its owned blank nodes.
func (e *RDFExporter) addProposal(n *graph.Node) {
	statements := []Statement{
		{Predicate: peps.RDFSLabel, Object: Literal{Value: n.Title}},
		{Predicate: peps.PredicateID, Object: Int(n.ID)},
		{Predicate: peps.PredicateTitle, Object: Literal{Value: n.Title}},
		{Predicate: peps.PredicateType, Object: Literal{Value: n.Type}},
		{Predicate: peps.PredicateStatus, Object: Literal{Value: n.Status}},
	}
	if n.Topic != "" {
		statements = append(statements, Statement{Predicate: peps.PredicateTopic, Object: Literal{Value: n.Topic}})
	}
	if n.PythonVersion != "" {
		statements = append(statements, Statement{Predicate: peps.PredicatePythonVersion, Object: Literal{Value: n.PythonVersion}})
	}
	statements = append(statements,
		Statement{Predicate: peps.PredicateURL, Object: AnyURI(n.URL)},
		Statement{Predicate: peps.PredicateCreated, Object: Date(n.Created)},
	)
	if n.DiscussionsTo != "" {
		statements = append(statements, Statement{Predicate: peps.PredicateDiscussionsTo, Object: AnyURI(n.DiscussionsTo)})
	}

	for _, author := range n.Authors {
		statements = append(statements, Statement{Predicate: peps.PredicateHasAuthor, Object: IRI(AuthorIRI(author.Name))})
	}

	var owned []Subject
	for i, post := range n.Posts {
		label := fmt.Sprintf("pep%dpost%d", n.ID, i)
		statements = append(statements, Statement{Predicate: peps.PredicateHasPost, Object: Blank(label)})

		postStatements := []Statement{
			{Predicate: peps.PredicatePostDate, Object: Date(post.Date)},
		}
		if post.URL != "" {
			postStatements = append(postStatements, Statement{Predicate: peps.PredicatePostURL, Object: AnyURI(post.URL)})
		}
		owned = append(owned, Subject{
			ID:         label,
			Blank:      true,
			Types:      []string{peps.ClassPost},
			Statements: postStatements,
		})
	}

	if n.Resolution != nil {
		label := fmt.Sprintf("pep%dresolution", n.ID)
		statements = append(statements, Statement{Predicate: peps.PredicateHasResolution, Object: Blank(label)})

		var resStatements []Statement
		if !n.Resolution.Date.IsZero() {
			resStatements = append(resStatements, Statement{Predicate: peps.PredicateResolutionDate, Object: Date(n.Resolution.Date)})
		}
		if n.Resolution.URL != "" {
			resStatements = append(resStatements, Statement{Predicate: peps.PredicateResolutionURL, Object: AnyURI(n.Resolution.URL)})
		}
		owned = append(owned, Subject{
			ID:         label,
			Blank:      true,
			Types:      []string{peps.ClassResolution},
			Statements: resStatements,
		})
	}

	for _, ref := range n.Replaces() {
		statements = append(statements, Statement{Predicate: peps.PredicateReplaces, Object: IRI(ProposalIRI(ref.ID()))})
	}
	for _, ref := range n.Requires() {
		statements = append(statements, Statement{Predicate: peps.PredicateRequires, Object: IRI(ProposalIRI(ref.ID()))})
	}
	if ref, ok := n.SupersededBy(); ok {
		statements = append(statements, Statement{Predicate: peps.PredicateSupersededBy, Object: IRI(ProposalIRI(ref.ID()))})
	}

	e.AddSubject(Subject{
		ID:         ProposalIRI(n.ID),
		Types:      []string{peps.ClassProposal},
		Statements: statements,
	})
	for _, s := range owned {
		e.AddSubject(s)
	}
}
