package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/pepgraph/vocabulary/peps"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD - JSON for Linked Data",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat resolves a user-supplied format name, accepting common
// aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "turtle", "ttl":
		return FormatTurtle, nil
	case "ntriples", "nt":
		return FormatNTriples, nil
	case "jsonld", "json-ld":
		return FormatJSONLD, nil
	default:
		return "", fmt.Errorf("unknown format: %s (supported: turtle, ntriples, jsonld)", name)
	}
}

// toTurtle serializes to Turtle format: sorted prefix declarations, then
// one block per subject.
func (e *RDFExporter) toTurtle() string {
	var sb strings.Builder

	keys := make([]string, 0, len(e.prefixes))
	for k := range e.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, prefix := range keys {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, e.prefixes[prefix]))
	}
	sb.WriteString("\n")

	for _, subject := range e.subjects {
		writeSubjectTurtle(&sb, subject)
		sb.WriteString("\n")
	}

	return sb.String()
}

// writeSubjectTurtle writes a single subject block in Turtle format.
func writeSubjectTurtle(sb *strings.Builder, s Subject) {
	sb.WriteString(subjectTerm(s) + "\n")

	for i, typeIRI := range s.Types {
		sb.WriteString(fmt.Sprintf("    a <%s>", typeIRI))
		if i < len(s.Types)-1 || len(s.Statements) > 0 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}

	for i, st := range s.Statements {
		sb.WriteString(fmt.Sprintf("    <%s> %s", predicateIRI(st.Predicate), formatObject(st.Object)))
		if i < len(s.Statements)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

// toNTriples serializes to N-Triples format, one triple per line.
func (e *RDFExporter) toNTriples() string {
	var sb strings.Builder

	for _, s := range e.subjects {
		term := subjectTerm(s)
		for _, typeIRI := range s.Types {
			sb.WriteString(fmt.Sprintf("%s <%s> <%s> .\n", term, peps.RDFType, typeIRI))
		}
		for _, st := range s.Statements {
			sb.WriteString(fmt.Sprintf("%s <%s> %s .\n", term, predicateIRI(st.Predicate), formatObject(st.Object)))
		}
	}

	return sb.String()
}

// jsonldDocument is the JSON-LD document structure.
type jsonldDocument struct {
	Context map[string]string `json:"@context"`
	Graph   []map[string]any  `json:"@graph"`
}

// toJSONLD serializes to JSON-LD format.
func (e *RDFExporter) toJSONLD() string {
	doc := jsonldDocument{
		Context: e.prefixes,
		Graph:   make([]map[string]any, 0, len(e.subjects)),
	}

	for _, s := range e.subjects {
		doc.Graph = append(doc.Graph, subjectJSONLD(s))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// subjectJSONLD builds the JSON-LD node object for a subject. Repeated
// predicates collapse into arrays.
func subjectJSONLD(s Subject) map[string]any {
	node := make(map[string]any, len(s.Statements)+2)
	if s.Blank {
		node["@id"] = "_:" + s.ID
	} else {
		node["@id"] = s.ID
	}
	if len(s.Types) > 0 {
		node["@type"] = s.Types
	}

	for _, st := range s.Statements {
		key := predicateIRI(st.Predicate)
		value := objectJSONLD(st.Object)
		switch existing := node[key].(type) {
		case nil:
			node[key] = value
		case []any:
			node[key] = append(existing, value)
		default:
			node[key] = []any{existing, value}
		}
	}

	return node
}

// objectJSONLD formats an object value for JSON-LD output.
func objectJSONLD(obj any) any {
	switch v := obj.(type) {
	case IRI:
		return map[string]any{"@id": string(v)}
	case Blank:
		return map[string]any{"@id": "_:" + string(v)}
	case Literal:
		if v.Datatype == "" {
			return v.Value
		}
		return map[string]any{"@value": v.Value, "@type": v.Datatype}
	default:
		return v
	}
}
