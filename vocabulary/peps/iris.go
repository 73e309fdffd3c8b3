package peps

// Namespace is the base IRI prefix for all PEP schema terms.
const Namespace = "https://python.org/peps/schema/"

// EntityNamespace is the base IRI for PEP instance data.
const EntityNamespace = "https://python.org/peps/"

// Class IRIs define the entity types of the PEP ontology.
const (
	// ClassProposal represents a Python Enhancement Proposal document.
	ClassProposal = Namespace + "PythonEnhancementProposal"

	// ClassAuthor represents a PEP author, identified by name.
	ClassAuthor = Namespace + "Author"

	// ClassPost represents a significant discussion post about a PEP.
	// Posts have no identity outside the owning proposal.
	ClassPost = Namespace + "Post"

	// ClassResolution represents the resolution of a PEP (at most one).
	ClassResolution = Namespace + "Resolution"
)

// Well-known external IRIs used in schema and instance export.
const (
	RDFType     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	RDFSLabel   = "http://www.w3.org/2000/01/rdf-schema#label"
	RDFSComment = "http://www.w3.org/2000/01/rdf-schema#comment"
	RDFSDomain  = "http://www.w3.org/2000/01/rdf-schema#domain"
	RDFSRange   = "http://www.w3.org/2000/01/rdf-schema#range"

	OWLClass            = "http://www.w3.org/2002/07/owl#Class"
	OWLDatatypeProperty = "http://www.w3.org/2002/07/owl#DatatypeProperty"
	OWLObjectProperty   = "http://www.w3.org/2002/07/owl#ObjectProperty"

	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
	XSDInt       = XSDNamespace + "int"
	XSDString    = XSDNamespace + "string"
	XSDDate      = XSDNamespace + "date"
	XSDAnyURI    = XSDNamespace + "anyURI"
)
