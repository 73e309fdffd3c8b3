package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/pepgraph/graph"
	"github.com/c360studio/pepgraph/record"
	"github.com/c360studio/pepgraph/vocabulary/peps"
)

func sampleGraph(t *testing.T) *graph.UnifiedGraph {
	t.Helper()
	sb := 8
	g, err := graph.Build([]record.Record{
		{
			ID:      1,
			Title:   "PEP Purpose and Guidelines",
			Type:    "Process",
			Status:  "Active",
			Created: time.Date(2000, 6, 13, 0, 0, 0, 0, time.UTC),
			URL:     "https://peps.python.org/pep-0001/",
			Authors: []record.Author{{Name: "Barry Warsaw"}, {Name: "Jeremy Hylton"}},
			Posts: []record.Post{
				{Date: time.Date(2000, 8, 21, 0, 0, 0, 0, time.UTC), URL: "https://mail.python.org/archives/1"},
			},
		},
		{
			ID:           7,
			Title:        "Style Guide for C Code",
			Type:         "Process",
			Status:       "Superseded",
			Created:      time.Date(2001, 7, 5, 0, 0, 0, 0, time.UTC),
			URL:          "https://peps.python.org/pep-0007/",
			Authors:      []record.Author{{Name: "Guido van Rossum"}},
			SupersededBy: &sb,
			Resolution: &record.Resolution{
				Date: time.Date(2002, 3, 1, 0, 0, 0, 0, time.UTC),
				URL:  "https://mail.python.org/archives/2",
			},
		},
		{
			ID:       8,
			Title:    "Style Guide for Python Code",
			Type:     "Process",
			Status:   "Active",
			Created:  time.Date(2001, 7, 5, 0, 0, 0, 0, time.UTC),
			URL:      "https://peps.python.org/pep-0008/",
			Authors:  []record.Author{{Name: "Guido van Rossum"}},
			Requires: []int{1},
		},
	})
	require.NoError(t, err)
	return g
}

func TestExport_UnsupportedFormat(t *testing.T) {
	e := NewRDFExporter()
	_, err := e.Export(Format("rdfxml"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("ttl")
	require.NoError(t, err)
	assert.Equal(t, FormatTurtle, f)

	f, err = ParseFormat(" JSON-LD ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSONLD, f)

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestTurtle_PrefixesAndSubjects(t *testing.T) {
	e := NewRDFExporter()
	e.AddGraph(sampleGraph(t))

	out, err := e.Export(FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix peps: <"+peps.Namespace+"> .")
	assert.Contains(t, out, "@prefix xsd: <"+peps.XSDNamespace+"> .")
	assert.Contains(t, out, "<"+ProposalIRI(8)+">")
	assert.Contains(t, out, "a <"+peps.ClassProposal+">")
	assert.Contains(t, out, `"8"^^<`+peps.XSDInt+">")
	assert.Contains(t, out, `"2001-07-05"^^<`+peps.XSDDate+">")
}

func TestTurtle_RelationsAreIRIs(t *testing.T) {
	e := NewRDFExporter()
	e.AddGraph(sampleGraph(t))

	out, err := e.Export(FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, "<"+peps.Namespace+"supersededBy> <"+ProposalIRI(8)+">")
	assert.Contains(t, out, "<"+peps.Namespace+"requires> <"+ProposalIRI(1)+">")
	// The replaces view is derived from the supersededBy edge.
	assert.Contains(t, out, "<"+peps.Namespace+"replaces> <"+ProposalIRI(7)+">")
}

func TestTurtle_BlankNodesForPostsAndResolutions(t *testing.T) {
	e := NewRDFExporter()
	e.AddGraph(sampleGraph(t))

	out, err := e.Export(FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, "<"+peps.Namespace+"hasPost> _:pep1post0")
	assert.Contains(t, out, "_:pep1post0\n")
	assert.Contains(t, out, "<"+peps.Namespace+"hasResolution> _:pep7resolution")
	assert.Contains(t, out, `"2002-03-01"^^<`+peps.XSDDate+">")
}

func TestExport_AuthorsDedupedAndEscaped(t *testing.T) {
	e := NewRDFExporter()
	e.AddGraph(sampleGraph(t))

	out, err := e.Export(FormatNTriples)
	require.NoError(t, err)

	// Guido authored two proposals but gets exactly one subject.
	guido := AuthorIRI("Guido van Rossum")
	assert.Contains(t, guido, "Guido+van+Rossum")
	assert.Equal(t, 1, strings.Count(out, "<"+guido+"> <"+peps.RDFType+">"))
}

func TestNTriples_OneTriplePerLine(t *testing.T) {
	e := NewRDFExporter()
	e.AddGraph(sampleGraph(t))

	out, err := e.Export(FormatNTriples)
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.True(t, strings.HasSuffix(line, " ."), "line missing terminator: %s", line)
	}
	assert.Contains(t, out, "<"+ProposalIRI(1)+"> <"+peps.RDFType+"> <"+peps.ClassProposal+"> .")
}

func TestJSONLD_ValidDocument(t *testing.T) {
	e := NewRDFExporter()
	e.AddSchema()
	e.AddGraph(sampleGraph(t))

	out, err := e.Export(FormatJSONLD)
	require.NoError(t, err)

	var doc struct {
		Context map[string]string `json:"@context"`
		Graph   []map[string]any  `json:"@graph"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, peps.Namespace, doc.Context["peps"])
	assert.NotEmpty(t, doc.Graph)

	var found bool
	for _, node := range doc.Graph {
		if node["@id"] == ProposalIRI(8) {
			found = true
		}
	}
	assert.True(t, found, "pep-8 subject missing from @graph")
}

func TestAddSchema_DeclaresClassesAndProperties(t *testing.T) {
	e := NewRDFExporter()
	e.AddSchema()

	out, err := e.Export(FormatNTriples)
	require.NoError(t, err)

	assert.Contains(t, out, "<"+peps.ClassProposal+"> <"+peps.RDFType+"> <"+peps.OWLClass+"> .")
	assert.Contains(t, out, "<"+peps.Namespace+"hasAuthor> <"+peps.RDFType+"> <"+peps.OWLObjectProperty+"> .")
	assert.Contains(t, out, "<"+peps.Namespace+"dateCreated> <"+peps.RDFType+"> <"+peps.OWLDatatypeProperty+"> .")
}

func TestExport_Deterministic(t *testing.T) {
	build := func() string {
		e := NewRDFExporter()
		e.AddSchema()
		e.AddGraph(sampleGraph(t))
		out, err := e.Export(FormatTurtle)
		require.NoError(t, err)
		return out
	}
	assert.Equal(t, build(), build())
}

func TestEscapeString(t *testing.T) {
	assert.Equal(t, `say \"hi\"`, escapeString(`say "hi"`))
	assert.Equal(t, `a\\b`, escapeString(`a\b`))
	assert.Equal(t, `line\nbreak`, escapeString("line\nbreak"))
}
