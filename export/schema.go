package export

import (
	"github.com/c360studio/pepgraph/vocabulary/peps"
)

// AddSchema adds the ontology definition to the exporter: OWL class
// declarations for each entity class and property declarations with
// domain, range and labels.
func (e *RDFExporter) AddSchema() {
	for _, class := range peps.Classes() {
		e.AddSubject(Subject{
			ID:    class.IRI,
			Types: []string{peps.OWLClass},
			Statements: []Statement{
				{Predicate: peps.RDFSLabel, Object: Literal{Value: class.Label}},
			},
		})
	}

	for _, prop := range peps.Properties() {
		propType := peps.OWLDatatypeProperty
		if prop.Object {
			propType = peps.OWLObjectProperty
		}

		statements := []Statement{
			{Predicate: peps.RDFSLabel, Object: Literal{Value: prop.Label}},
		}
		if prop.Comment != "" {
			statements = append(statements, Statement{Predicate: peps.RDFSComment, Object: Literal{Value: prop.Comment}})
		}
		if prop.Domain != "" {
			statements = append(statements, Statement{Predicate: peps.RDFSDomain, Object: IRI(prop.Domain)})
		}
		if prop.Range != "" {
			statements = append(statements, Statement{Predicate: peps.RDFSRange, Object: IRI(prop.Range)})
		}

		e.AddSubject(Subject{
			ID:         prop.IRI,
			Types:      []string{propType},
			Statements: statements,
		})
	}
}
