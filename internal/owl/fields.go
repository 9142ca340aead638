package owl

import "encoding/xml"

// fieldKind describes how a recognized class child element mutates the
// class under construction and whether it emits a triple.
type fieldKind int

const (
	// kindScalar sets a single text-valued field and emits a triple.
	kindScalar fieldKind = iota
	// kindList appends to an ordered text field and emits a triple.
	kindList
	// kindFlag sets a boolean marker and emits a "true" triple.
	kindFlag
	// kindScalarNoTriple sets a scalar without emitting a triple.
	kindScalarNoTriple
)

// fieldSpec maps one qualified tag to its assignment rule. Adding a newly
// recognized tag is a table edit, not a new parser branch.
type fieldSpec struct {
	predicate string
	kind      fieldKind
	set       func(c *OWLClass, text string)
}

// textFields covers the text-valued class children. Resource-valued tags
// (subClassOf, isDefinedBy, seeAlso) and the label-routing tags (altLabel,
// hiddenLabel) need attribute handling and live in the parser itself.
var textFields = map[xml.Name]fieldSpec{
	{Space: NSRdfs, Local: "label"}: {
		predicate: "rdfs:label",
		kind:      kindScalar,
		set:       func(c *OWLClass, text string) { c.Label = text },
	},
	{Space: NSRdfs, Local: "comment"}: {
		predicate: "rdfs:comment",
		kind:      kindScalar,
		set:       func(c *OWLClass, text string) { c.Comment = text },
	},
	{Space: NSOwl, Local: "deprecated"}: {
		predicate: "owl:deprecated",
		kind:      kindFlag,
		set:       func(c *OWLClass, _ string) { c.Deprecated = true },
	},
	{Space: NSSkos, Local: "prefLabel"}: {
		predicate: "skos:prefLabel",
		kind:      kindScalarNoTriple,
		set:       func(c *OWLClass, text string) { c.PreferredLabel = text },
	},
	{Space: NSSkos, Local: "definition"}: {
		predicate: "skos:definition",
		kind:      kindScalar,
		set:       func(c *OWLClass, text string) { c.Definition = text },
	},
	{Space: NSSkos, Local: "example"}: {
		predicate: "skos:example",
		kind:      kindList,
		set:       func(c *OWLClass, text string) { c.Examples = append(c.Examples, text) },
	},
	{Space: NSSkos, Local: "note"}: {
		predicate: "skos:note",
		kind:      kindList,
		set:       func(c *OWLClass, text string) { c.Notes = append(c.Notes, text) },
	},
	{Space: NSSkos, Local: "historyNote"}: {
		predicate: "skos:historyNote",
		kind:      kindScalar,
		set:       func(c *OWLClass, text string) { c.HistoryNote = text },
	},
	{Space: NSSkos, Local: "editorialNote"}: {
		predicate: "skos:editorialNote",
		kind:      kindScalar,
		set:       func(c *OWLClass, text string) { c.EditorialNote = text },
	},
	{Space: NSSkos, Local: "inScheme"}: {
		predicate: "skos:inScheme",
		kind:      kindScalar,
		set:       func(c *OWLClass, text string) { c.InScheme = text },
	},
	{Space: NSDc, Local: "identifier"}: {
		predicate: "dc:identifier",
		kind:      kindScalar,
		set:       func(c *OWLClass, text string) { c.Identifier = text },
	},
	{Space: NSDc, Local: "description"}: {
		predicate: "dc:description",
		kind:      kindScalar,
		set:       func(c *OWLClass, text string) { c.Description = text },
	},
	{Space: NSDc, Local: "source"}: {
		predicate: "dc:source",
		kind:      kindScalar,
		set:       func(c *OWLClass, text string) { c.Source = text },
	},
	{Space: NSV1, Local: "country"}: {
		predicate: "v1:country",
		kind:      kindScalar,
		set:       func(c *OWLClass, text string) { c.Country = text },
	},
}
