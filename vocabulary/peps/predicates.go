package peps

import "github.com/c360studio/semstreams/vocabulary"

// Proposal predicates.
const (
	// PredicateID is the numeric PEP identifier.
	PredicateID = "peps.proposal.id"

	// PredicateTitle is the proposal title.
	PredicateTitle = "peps.proposal.title"

	// PredicateType is the proposal type.
	// Values: "Standards Track", "Informational", "Process"
	PredicateType = "peps.proposal.type"

	// PredicateStatus is the proposal status.
	// Values: Draft, Accepted, Final, Rejected, Withdrawn, Superseded, Deferred, Active
	PredicateStatus = "peps.proposal.status"

	// PredicateTopic is the topic area, when assigned.
	PredicateTopic = "peps.proposal.topic"

	// PredicatePythonVersion is the targeted Python version, when any.
	PredicatePythonVersion = "peps.proposal.python_version"

	// PredicateURL is the canonical proposal URL.
	PredicateURL = "peps.proposal.url"

	// PredicateCreated is the creation date of the proposal.
	PredicateCreated = "peps.proposal.created"

	// PredicateDiscussionsTo is the mailing list or URL where the
	// proposal is discussed.
	PredicateDiscussionsTo = "peps.proposal.discussions_to"
)

// Relationship predicates. All three relate proposals to proposals;
// hasAuthor/hasPost/hasResolution attach sub-entities.
const (
	// PredicateReplaces links a proposal to the proposals it replaces.
	PredicateReplaces = "peps.proposal.replaces"

	// PredicateSupersededBy links a proposal to the one that replaces it.
	PredicateSupersededBy = "peps.proposal.superseded_by"

	// PredicateRequires links a proposal to the proposals it depends on.
	PredicateRequires = "peps.proposal.requires"

	// PredicateHasAuthor links a proposal to an author.
	PredicateHasAuthor = "peps.proposal.has_author"

	// PredicateHasPost links a proposal to a discussion post.
	PredicateHasPost = "peps.proposal.has_post"

	// PredicateHasResolution links a proposal to its resolution.
	PredicateHasResolution = "peps.proposal.has_resolution"
)

// Sub-entity predicates.
const (
	// PredicateAuthorName is the author's display name (the join key).
	PredicateAuthorName = "peps.author.name"

	// PredicatePostDate is the date of a post.
	PredicatePostDate = "peps.post.date"

	// PredicatePostURL is the URL of a post.
	PredicatePostURL = "peps.post.url"

	// PredicateResolutionDate is the date of a resolution.
	PredicateResolutionDate = "peps.resolution.date"

	// PredicateResolutionURL is the URL of a resolution.
	PredicateResolutionURL = "peps.resolution.url"
)

func init() {
	vocabulary.Register(PredicateID,
		vocabulary.WithDescription("Numeric PEP identifier"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(Namespace+"id"))

	vocabulary.Register(PredicateTitle,
		vocabulary.WithDescription("Proposal title"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"title"))

	vocabulary.Register(PredicateType,
		vocabulary.WithDescription("Proposal type"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"type"))

	vocabulary.Register(PredicateStatus,
		vocabulary.WithDescription("Proposal status"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"status"))

	vocabulary.Register(PredicateTopic,
		vocabulary.WithDescription("Topic area"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"topic"))

	vocabulary.Register(PredicatePythonVersion,
		vocabulary.WithDescription("Targeted Python version"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"pythonVersion"))

	vocabulary.Register(PredicateURL,
		vocabulary.WithDescription("Canonical proposal URL"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"url"))

	vocabulary.Register(PredicateCreated,
		vocabulary.WithDescription("Creation date"),
		vocabulary.WithDataType("datetime"),
		vocabulary.WithIRI(Namespace+"dateCreated"))

	vocabulary.Register(PredicateDiscussionsTo,
		vocabulary.WithDescription("Discussion venue (mailing list or URL)"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"discussionsTo"))

	vocabulary.Register(PredicateReplaces,
		vocabulary.WithDescription("Proposals this proposal replaces"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"replaces"))

	vocabulary.Register(PredicateSupersededBy,
		vocabulary.WithDescription("Proposal that replaces this one"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"supersededBy"))

	vocabulary.Register(PredicateRequires,
		vocabulary.WithDescription("Proposals this proposal depends on"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"requires"))

	vocabulary.Register(PredicateHasAuthor,
		vocabulary.WithDescription("Author of the proposal"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasAuthor"))

	vocabulary.Register(PredicateHasPost,
		vocabulary.WithDescription("Discussion post for the proposal"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasPost"))

	vocabulary.Register(PredicateHasResolution,
		vocabulary.WithDescription("Resolution of the proposal"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasResolution"))

	vocabulary.Register(PredicateAuthorName,
		vocabulary.WithDescription("Author display name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFSLabel))

	vocabulary.Register(PredicatePostDate,
		vocabulary.WithDescription("Date of the post"),
		vocabulary.WithDataType("datetime"),
		vocabulary.WithIRI(Namespace+"postDate"))

	vocabulary.Register(PredicatePostURL,
		vocabulary.WithDescription("URL of the post"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"postUrl"))

	vocabulary.Register(PredicateResolutionDate,
		vocabulary.WithDescription("Date of the resolution"),
		vocabulary.WithDataType("datetime"),
		vocabulary.WithIRI(Namespace+"resolutionDate"))

	vocabulary.Register(PredicateResolutionURL,
		vocabulary.WithDescription("URL of the resolution"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"resolutionUrl"))
}
