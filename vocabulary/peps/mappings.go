package peps

// EntityType identifies the kind of a PEP graph entity for export mapping.
type EntityType string

const (
	// EntityTypeProposal is the entity type for PEP documents.
	EntityTypeProposal EntityType = "proposal"
	// EntityTypeAuthor is the entity type for PEP authors.
	EntityTypeAuthor EntityType = "author"
	// EntityTypePost is the entity type for discussion posts.
	EntityTypePost EntityType = "post"
	// EntityTypeResolution is the entity type for resolutions.
	EntityTypeResolution EntityType = "resolution"
)

// ClassMap maps entity types to their ontology class IRIs.
var ClassMap = map[EntityType]string{
	EntityTypeProposal:   ClassProposal,
	EntityTypeAuthor:     ClassAuthor,
	EntityTypePost:       ClassPost,
	EntityTypeResolution: ClassResolution,
}

// PredicateIRIMap maps dotted predicates to the IRIs declared by the schema.
// Predicate names at the RDF boundary match the schema exactly
// (dateCreated, pythonVersion, hasAuthor, ...).
var PredicateIRIMap = map[string]string{
	PredicateID:             Namespace + "id",
	PredicateTitle:          Namespace + "title",
	PredicateType:           Namespace + "type",
	PredicateStatus:         Namespace + "status",
	PredicateTopic:          Namespace + "topic",
	PredicatePythonVersion:  Namespace + "pythonVersion",
	PredicateURL:            Namespace + "url",
	PredicateCreated:        Namespace + "dateCreated",
	PredicateDiscussionsTo:  Namespace + "discussionsTo",
	PredicateReplaces:       Namespace + "replaces",
	PredicateSupersededBy:   Namespace + "supersededBy",
	PredicateRequires:       Namespace + "requires",
	PredicateHasAuthor:      Namespace + "hasAuthor",
	PredicateHasPost:        Namespace + "hasPost",
	PredicateHasResolution:  Namespace + "hasResolution",
	PredicateAuthorName:     RDFSLabel,
	PredicatePostDate:       Namespace + "postDate",
	PredicatePostURL:        Namespace + "postUrl",
	PredicateResolutionDate: Namespace + "resolutionDate",
	PredicateResolutionURL:  Namespace + "resolutionUrl",
}

// GetPredicateIRI returns the boundary IRI for a dotted predicate.
// Unmapped predicates fall back to the schema namespace.
func GetPredicateIRI(predicate string) string {
	if iri, ok := PredicateIRIMap[predicate]; ok {
		return iri
	}
	return Namespace + predicate
}

// GetTypesForEntity returns the class IRIs asserted for an entity type.
func GetTypesForEntity(entityType EntityType) []string {
	if class, ok := ClassMap[entityType]; ok {
		return []string{class}
	}
	return nil
}
