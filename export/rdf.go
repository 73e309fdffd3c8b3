// Package export serializes the unified graph as subject-predicate-object
// triples (Turtle, N-Triples, JSON-LD) and projection views as generic
// node/edge JSON for the rendering adapter. Output is deterministic:
// prefixes are sorted and subjects keep insertion order, so re-exporting
// the same graph is byte-identical.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/c360studio/pepgraph/vocabulary/peps"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// IRI marks an object value as a resource reference.
type IRI string

// Blank marks an object value as a blank-node label.
type Blank string

// Literal is a typed literal value. An empty Datatype means a plain
// string literal.
type Literal struct {
	Value    string
	Datatype string
}

// Date builds an xsd:date literal.
func Date(t time.Time) Literal {
	return Literal{Value: t.Format("2006-01-02"), Datatype: peps.XSDDate}
}

// AnyURI builds an xsd:anyURI literal.
func AnyURI(s string) Literal {
	return Literal{Value: s, Datatype: peps.XSDAnyURI}
}

// Int builds an xsd:int literal.
func Int(i int) Literal {
	return Literal{Value: fmt.Sprintf("%d", i), Datatype: peps.XSDInt}
}

// Statement is one predicate-object pair on a subject. Predicates may be
// dotted vocabulary names (translated to IRIs at the boundary) or full
// IRIs, which pass through unchanged.
type Statement struct {
	Predicate string
	Object    any
}

// Subject is one exportable entity: an IRI or blank node with its type
// assertions and statements.
type Subject struct {
	ID         string
	Blank      bool
	Types      []string
	Statements []Statement
}

// RDFExporter accumulates subjects and serializes them to RDF.
type RDFExporter struct {
	prefixes map[string]string
	subjects []Subject
}

// NewRDFExporter creates an empty exporter with the standard prefixes.
func NewRDFExporter() *RDFExporter {
	return &RDFExporter{
		prefixes: defaultPrefixes(),
	}
}

// defaultPrefixes returns the namespace prefixes for RDF export. The empty
// prefix is bound to the instance namespace.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs": "http://www.w3.org/2000/01/rdf-schema#",
		"owl":  "http://www.w3.org/2002/07/owl#",
		"xsd":  peps.XSDNamespace,
		"peps": peps.Namespace,
		"":     peps.EntityNamespace,
	}
}

// AddSubject appends a subject to the export set.
func (e *RDFExporter) AddSubject(s Subject) {
	e.subjects = append(e.subjects, s)
}

// Export serializes all subjects to the specified format.
func (e *RDFExporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	case FormatJSONLD:
		return e.toJSONLD(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// predicateIRI resolves a statement predicate to its boundary IRI.
func predicateIRI(predicate string) string {
	if strings.HasPrefix(predicate, "http://") || strings.HasPrefix(predicate, "https://") {
		return predicate
	}
	return peps.GetPredicateIRI(predicate)
}

// subjectTerm renders a subject as a Turtle/N-Triples term.
func subjectTerm(s Subject) string {
	if s.Blank {
		return "_:" + s.ID
	}
	return "<" + s.ID + ">"
}

// formatObject formats an object value as a Turtle/N-Triples term.
func formatObject(obj any) string {
	switch v := obj.(type) {
	case IRI:
		return fmt.Sprintf("<%s>", string(v))
	case Blank:
		return "_:" + string(v)
	case Literal:
		if v.Datatype == "" {
			return fmt.Sprintf("\"%s\"", escapeString(v.Value))
		}
		return fmt.Sprintf("\"%s\"^^<%s>", escapeString(v.Value), v.Datatype)
	case string:
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int:
		return fmt.Sprintf("\"%d\"^^<%s>", v, peps.XSDInt)
	case bool:
		return fmt.Sprintf("\"%t\"^^<%sboolean>", v, peps.XSDNamespace)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// escapeString escapes special characters for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
