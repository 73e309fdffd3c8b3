// Package peps provides the domain vocabulary for Python Enhancement
// Proposal metadata.
//
// Predicates follow semstreams conventions: three-level dotted notation
// internally (peps.proposal.title), registered in init() via
// vocabulary.Register(), with IRI mappings attached for RDF export at the
// boundary. Internal code never sees IRIs; the export package translates
// dotted predicates through GetPredicateIRI.
//
// The package also carries the declarative schema, four entity classes
// (PythonEnhancementProposal, Author, Post, Resolution) and their datatype
// and object properties, which the export package serializes as OWL
// schema triples.
package peps
