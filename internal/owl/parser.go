package owl

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/alea-institute/soli-go/internal/logging"
)

var log = logging.New("owl")

// Document is the result of parsing one ontology snapshot: the class
// sequence in source order, the frozen triple log, and the ontology
// metadata. It is never mutated after Parse returns.
type Document struct {
	Title       string
	Description string
	Classes     []*OWLClass
	Triples     []Triple
}

// node is a generic XML element tree. Decoding through it tolerates
// unknown tags at any nesting level, which the evolving SOLI ontology
// requires.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

// attr returns the value of the named attribute, matching either the
// resolved namespace URI or the raw prefix. encoding/xml reports the
// predeclared xml: prefix unresolved, so both forms occur in practice.
func (n *node) attr(space, prefix, local string) string {
	for _, a := range n.Attrs {
		if a.Name.Local != local {
			continue
		}
		if a.Name.Space == space || a.Name.Space == prefix {
			return a.Value
		}
	}
	return ""
}

// Parse converts a raw OWL/RDF-XML document into a Document. A malformed
// root is a hard failure; malformed individual classes are skipped with a
// diagnostic and never abort the parse.
func Parse(buffer []byte) (*Document, error) {
	decoder := xml.NewDecoder(bytes.NewReader(buffer))
	doc := &Document{}

	// find the document root
	var root *xml.StartElement
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing ontology document: %w", err)
		}
		if start, ok := token.(xml.StartElement); ok {
			root = &start
			break
		}
	}
	if root == nil {
		return nil, fmt.Errorf("parsing ontology document: no root element")
	}

	// parse each top-level child node
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing ontology document: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		var n node
		if err := decoder.DecodeElement(&n, &start); err != nil {
			return nil, fmt.Errorf("parsing ontology node: %w", err)
		}
		doc.parseNode(&n)
	}

	return doc, nil
}

// parseNode dispatches one top-level node by qualified tag name.
// Property declarations, named individuals, and generic descriptions are
// recognized but intentionally produce no entity.
func (d *Document) parseNode(n *node) {
	switch n.XMLName {
	case xml.Name{Space: NSOwl, Local: "Class"}:
		d.parseClass(n)
	case xml.Name{Space: NSOwl, Local: "Ontology"}:
		d.parseOntology(n)
	case xml.Name{Space: NSOwl, Local: "ObjectProperty"},
		xml.Name{Space: NSOwl, Local: "DatatypeProperty"},
		xml.Name{Space: NSOwl, Local: "AnnotationProperty"},
		xml.Name{Space: NSOwl, Local: "NamedIndividual"},
		xml.Name{Space: NSRdf, Local: "Description"}:
		// recognized node kinds with no entity representation
	default:
		log.Debug("unknown_node", map[string]interface{}{"tag": n.XMLName.Local})
	}
}

// parseOntology captures document-level title and description.
func (d *Document) parseOntology(n *node) {
	for i := range n.Children {
		child := &n.Children[i]
		switch child.XMLName {
		case xml.Name{Space: NSDc, Local: "title"}:
			d.Title = child.Text
		case xml.Name{Space: NSDc, Local: "description"}:
			d.Description = child.Text
		}
	}
}

// parseClass builds one OWLClass from an owl:Class node, appending its
// triples to the document log. Classes without an rdf:about identity or
// without a label are skipped with a diagnostic.
func (d *Document) parseClass(n *node) {
	iri := n.attr(NSRdf, "rdf", "about")
	if iri == "" {
		log.Info("missing_iri", map[string]interface{}{"tag": n.XMLName.Local})
		return
	}

	class := NewOWLClass(iri)

	for i := range n.Children {
		child := &n.Children[i]

		switch child.XMLName {
		case xml.Name{Space: NSRdfs, Local: "subClassOf"}:
			if parent := child.attr(NSRdf, "rdf", "resource"); parent != "" {
				class.SubClassOf = append(class.SubClassOf, parent)
				d.Triples = append(d.Triples, Triple{iri, "rdfs:subClassOf", parent})
			}
			continue

		case xml.Name{Space: NSRdfs, Local: "isDefinedBy"}:
			if definedBy := child.attr(NSRdf, "rdf", "resource"); definedBy != "" {
				class.IsDefinedBy = definedBy
				d.Triples = append(d.Triples, Triple{iri, "rdfs:isDefinedBy", definedBy})
			}
			continue

		case xml.Name{Space: NSRdfs, Local: "seeAlso"}:
			if seeAlso := child.attr(NSRdf, "rdf", "resource"); seeAlso != "" {
				class.SeeAlso = append(class.SeeAlso, seeAlso)
				d.Triples = append(d.Triples, Triple{iri, "rdfs:seeAlso", seeAlso})
			}
			continue

		case xml.Name{Space: NSSkos, Local: "altLabel"}:
			// language-tagged alt labels are translations; bare ones are
			// synonyms for the search indices
			if lang := child.attr(NSXml, "xml", "lang"); lang != "" {
				class.Translations[lang] = child.Text
			} else {
				class.AlternativeLabels = append(class.AlternativeLabels, child.Text)
			}
			d.Triples = append(d.Triples, Triple{iri, "skos:altLabel", child.Text})
			continue

		case xml.Name{Space: NSSkos, Local: "hiddenLabel"}:
			class.HiddenLabel = child.Text
			class.AlternativeLabels = append(class.AlternativeLabels, child.Text)
			d.Triples = append(d.Triples, Triple{iri, "skos:hiddenLabel", child.Text})
			continue
		}

		spec, ok := textFields[child.XMLName]
		if !ok {
			log.Debug("unknown_tag", map[string]interface{}{
				"iri": iri,
				"tag": child.XMLName.Local,
			})
			continue
		}

		spec.set(class, child.Text)
		switch spec.kind {
		case kindScalarNoTriple:
			// state only, no triple
		case kindFlag:
			d.Triples = append(d.Triples, Triple{iri, spec.predicate, "true"})
		default:
			d.Triples = append(d.Triples, Triple{iri, spec.predicate, child.Text})
		}
	}

	if !class.IsValid() {
		log.Info("invalid_class", map[string]interface{}{"iri": iri})
		return
	}

	d.Classes = append(d.Classes, class)
}
