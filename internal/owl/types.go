// Package owl provides the OWL class model and RDF/XML parser for the
// SOLI (Standard for Open Legal Information) ontology.
package owl

// Namespace URIs used by the SOLI ontology document.
const (
	NSRdf  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRdfs = "http://www.w3.org/2000/01/rdf-schema#"
	NSOwl  = "http://www.w3.org/2002/07/owl#"
	NSSkos = "http://www.w3.org/2004/02/skos/core#"
	NSDc   = "http://purl.org/dc/elements/1.1/"
	NSV1   = "http://www.loc.gov/mads/rdf/v1#"
	NSXsd  = "http://www.w3.org/2001/XMLSchema#"
	NSXml  = "http://www.w3.org/XML/1998/namespace"
	NSSoli = "https://soli.openlegalstandard.org/"
)

// NSMap maps namespace prefixes to their URIs.
var NSMap = map[string]string{
	"rdf":  NSRdf,
	"rdfs": NSRdfs,
	"owl":  NSOwl,
	"skos": NSSkos,
	"dc":   NSDc,
	"v1":   NSV1,
	"xsd":  NSXsd,
	"xml":  NSXml,
	"soli": NSSoli,
}

// OWLThing is the universal root class. It is accepted as a structural
// sentinel without a label and never indexed or edged.
const OWLThing = "http://www.w3.org/2002/07/owl#Thing"

// Triple is one (subject, predicate, object) fact extracted from the
// source document. Triples are immutable once the parse completes.
type Triple struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// OWLClass represents one class in the SOLI ontology.
//
// ParentClassOf is derived after parsing by inverting SubClassOf; it is
// the only field mutated after an OWLClass leaves the parser.
type OWLClass struct {
	IRI               string            `json:"iri"`
	Label             string            `json:"label,omitempty"`
	SubClassOf        []string          `json:"sub_class_of,omitempty"`
	ParentClassOf     []string          `json:"parent_class_of,omitempty"`
	IsDefinedBy       string            `json:"is_defined_by,omitempty"`
	SeeAlso           []string          `json:"see_also,omitempty"`
	Comment           string            `json:"comment,omitempty"`
	Deprecated        bool              `json:"deprecated,omitempty"`
	PreferredLabel    string            `json:"preferred_label,omitempty"`
	AlternativeLabels []string          `json:"alternative_labels,omitempty"`
	Translations      map[string]string `json:"translations,omitempty"`
	HiddenLabel       string            `json:"hidden_label,omitempty"`
	Definition        string            `json:"definition,omitempty"`
	Examples          []string          `json:"examples,omitempty"`
	Notes             []string          `json:"notes,omitempty"`
	HistoryNote       string            `json:"history_note,omitempty"`
	EditorialNote     string            `json:"editorial_note,omitempty"`
	InScheme          string            `json:"in_scheme,omitempty"`
	Identifier        string            `json:"identifier,omitempty"`
	Description       string            `json:"description,omitempty"`
	Source            string            `json:"source,omitempty"`
	Country           string            `json:"country,omitempty"`
}

// NewOWLClass creates an OWLClass with initialized collections.
func NewOWLClass(iri string) *OWLClass {
	return &OWLClass{
		IRI:          iri,
		Translations: make(map[string]string),
	}
}

// IsValid reports whether the class may enter the graph. A class needs a
// label unless it is the owl:Thing root sentinel.
func (c *OWLClass) IsValid() bool {
	return c.Label != "" || c.IRI == OWLThing
}

func (c *OWLClass) String() string {
	return "OWLClass(label=" + c.Label + ", iri=" + c.IRI + ")"
}
