package peps

// ClassDef declares one ontology class for schema export.
type ClassDef struct {
	IRI   string
	Label string
}

// PropertyDef declares one schema property. Object properties range over a
// class IRI; datatype properties range over an XSD datatype IRI.
type PropertyDef struct {
	IRI     string
	Label   string
	Comment string
	Domain  string
	Range   string
	Object  bool
}

// Classes returns the declared entity classes in schema order.
func Classes() []ClassDef {
	return []ClassDef{
		{IRI: ClassProposal, Label: "Python Enhancement Proposal"},
		{IRI: ClassAuthor, Label: "PEP Author"},
		{IRI: ClassResolution, Label: "PEP Resolution"},
		{IRI: ClassPost, Label: "PEP Post"},
	}
}

// Properties returns the declared schema properties in schema order.
func Properties() []PropertyDef {
	return []PropertyDef{
		{
			IRI:     Namespace + "id",
			Label:   "id of the PEP",
			Comment: "the identifier of the PEP.",
			Domain:  ClassProposal,
			Range:   XSDInt,
		},
		{
			IRI:     Namespace + "url",
			Label:   "URL of the PEP",
			Comment: "the URL of the PEP.",
			Domain:  ClassProposal,
			Range:   XSDAnyURI,
		},
		{
			IRI:     Namespace + "title",
			Label:   "title of the PEP",
			Comment: "the title of the PEP.",
			Domain:  ClassProposal,
			Range:   XSDString,
		},
		{
			IRI:     Namespace + "hasAuthor",
			Label:   "author of the PEP",
			Comment: "An author of the PEP.",
			Domain:  ClassProposal,
			Range:   ClassAuthor,
			Object:  true,
		},
		{
			IRI:     Namespace + "dateCreated",
			Label:   "creation date",
			Comment: "The date the PEP was created",
			Domain:  ClassProposal,
			Range:   XSDDate,
		},
		{
			IRI:     Namespace + "status",
			Label:   "PEP status",
			Comment: "The current status of the PEP",
			Domain:  ClassProposal,
			Range:   XSDString,
		},
		{
			IRI:     Namespace + "type",
			Label:   "PEP type",
			Comment: "The type of the PEP",
			Domain:  ClassProposal,
			Range:   XSDString,
		},
		{
			IRI:     Namespace + "pythonVersion",
			Label:   "Python version",
			Comment: "The Python version this PEP is targeted for",
			Domain:  ClassProposal,
			Range:   XSDString,
		},
		{
			IRI:     Namespace + "requires",
			Label:   "requires PEP",
			Comment: "Other PEPs that this PEP depends on",
			Domain:  ClassProposal,
			Range:   ClassProposal,
			Object:  true,
		},
		{
			IRI:     Namespace + "replaces",
			Label:   "replaces PEP",
			Comment: "The PEP that this PEP replaces",
			Domain:  ClassProposal,
			Range:   ClassProposal,
			Object:  true,
		},
		{
			IRI:     Namespace + "supersededBy",
			Label:   "superseded by PEP",
			Comment: "The PEP that supersedes this PEP",
			Domain:  ClassProposal,
			Range:   ClassProposal,
			Object:  true,
		},
		{
			IRI:     Namespace + "discussionsTo",
			Label:   "discussions to",
			Comment: "The mailing list or URL where the PEP is being discussed",
			Domain:  ClassProposal,
			Range:   XSDString,
		},
		{
			IRI:     Namespace + "topic",
			Label:   "topic",
			Comment: "The topic area of the PEP",
			Domain:  ClassProposal,
			Range:   XSDString,
		},
		{
			IRI:     Namespace + "hasResolution",
			Label:   "has a resolution",
			Comment: "Resolution for this PEP",
			Domain:  ClassProposal,
			Range:   ClassResolution,
			Object:  true,
		},
		{
			IRI:     Namespace + "hasPost",
			Label:   "has post associated with PEP",
			Comment: "History of significant posts related to the PEP",
			Domain:  ClassProposal,
			Range:   ClassPost,
			Object:  true,
		},
		{
			IRI:     Namespace + "resolutionUrl",
			Label:   "resolution URL",
			Comment: "The URL of the resolution",
			Domain:  ClassResolution,
			Range:   XSDAnyURI,
		},
		{
			IRI:     Namespace + "resolutionDate",
			Label:   "resolution date",
			Comment: "The date of the resolution",
			Domain:  ClassResolution,
			Range:   XSDDate,
		},
		{
			IRI:     Namespace + "postUrl",
			Label:   "post URL",
			Comment: "The URL of the post",
			Domain:  ClassPost,
			Range:   XSDAnyURI,
		},
		{
			IRI:     Namespace + "postDate",
			Label:   "post date",
			Comment: "The date of the post",
			Domain:  ClassPost,
			Range:   XSDDate,
		},
	}
}
