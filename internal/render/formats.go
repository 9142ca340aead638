package render

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/alea-institute/soli-go/internal/owl"
)

// ToJSON serializes a class to its canonical JSON form.
func ToJSON(c *owl.OWLClass) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal class: %w", err)
	}
	return string(data), nil
}

// FromJSON reconstructs a class from its canonical JSON form.
func FromJSON(data string) (*owl.OWLClass, error) {
	c := owl.NewOWLClass("")
	if err := json.Unmarshal([]byte(data), c); err != nil {
		return nil, fmt.Errorf("unmarshal class: %w", err)
	}
	return c, nil
}

// ToJSONLD builds a JSON-LD document for a single class. The @context
// carries the full namespace map so the compact terms resolve.
func ToJSONLD(c *owl.OWLClass) map[string]any {
	doc := map[string]any{
		"@context": map[string]any{
			"@vocab": owl.NSSoli,
			"dc":     owl.NSDc,
			"v1":     owl.NSV1,
			"owl":    owl.NSOwl,
			"rdf":    owl.NSRdf,
			"xsd":    owl.NSXsd,
			"soli":   owl.NSSoli,
			"rdfs":   owl.NSRdfs,
			"skos":   owl.NSSkos,
			"xml":    owl.NSXml,
		},
		"@id":        c.IRI,
		"@type":      "owl:Class",
		"rdfs:label": c.Label,
	}
	if c.IsDefinedBy != "" {
		doc["rdfs:isDefinedBy"] = c.IsDefinedBy
	}
	if len(c.SeeAlso) > 0 {
		doc["rdfs:seeAlso"] = append([]string(nil), c.SeeAlso...)
	}
	if c.Comment != "" {
		doc["rdfs:comment"] = c.Comment
	}
	if c.Deprecated {
		doc["owl:deprecated"] = c.Deprecated
	}
	if c.PreferredLabel != "" {
		doc["skos:prefLabel"] = c.PreferredLabel
	}
	if len(c.AlternativeLabels) > 0 {
		doc["skos:altLabel"] = append([]string(nil), c.AlternativeLabels...)
	}
	if len(c.Translations) > 0 {
		tagged := make([]map[string]string, 0, len(c.Translations))
		for _, lang := range sortedKeys(c.Translations) {
			tagged = append(tagged, map[string]string{
				"@value":    c.Translations[lang],
				"@language": lang,
			})
		}
		doc["skos:altLabel"] = tagged
	}
	if len(c.SubClassOf) > 0 {
		refs := make([]map[string]string, 0, len(c.SubClassOf))
		for _, iri := range c.SubClassOf {
			refs = append(refs, map[string]string{"@id": iri})
		}
		doc["rdfs:subClassOf"] = refs
	}
	if c.HiddenLabel != "" {
		doc["skos:hiddenLabel"] = c.HiddenLabel
	}
	if c.Definition != "" {
		doc["skos:definition"] = c.Definition
	}
	if len(c.Examples) > 0 {
		doc["skos:example"] = append([]string(nil), c.Examples...)
	}
	if len(c.Notes) > 0 {
		doc["skos:note"] = append([]string(nil), c.Notes...)
	}
	if c.HistoryNote != "" {
		doc["skos:historyNote"] = c.HistoryNote
	}
	if c.EditorialNote != "" {
		doc["skos:editorialNote"] = c.EditorialNote
	}
	if c.InScheme != "" {
		doc["skos:inScheme"] = c.InScheme
	}
	if c.Identifier != "" {
		doc["dc:identifier"] = c.Identifier
	}
	if c.Description != "" {
		doc["dc:description"] = c.Description
	}
	if c.Source != "" {
		doc["dc:source"] = c.Source
	}
	if c.Country != "" {
		doc["v1:country"] = c.Country
	}
	return doc
}

// ToJSONLDString renders the JSON-LD document as an indented string.
func ToJSONLDString(c *owl.OWLClass) (string, error) {
	data, err := json.MarshalIndent(ToJSONLD(c), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal json-ld: %w", err)
	}
	return string(data), nil
}

// ToOWLXML renders a class back to its owl:Class element form.
func ToOWLXML(c *owl.OWLClass) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<owl:Class xmlns:owl=%q xmlns:rdf=%q xmlns:rdfs=%q xmlns:skos=%q xmlns:dc=%q xmlns:lmss=%q rdf:about=%q>\n",
		owl.NSOwl, owl.NSRdf, owl.NSRdfs, owl.NSSkos, owl.NSDc, owl.NSV1, c.IRI)
	for _, iri := range c.SubClassOf {
		fmt.Fprintf(&sb, "  <rdfs:subClassOf rdf:resource=%q/>\n", iri)
	}
	if c.IsDefinedBy != "" {
		fmt.Fprintf(&sb, "  <rdfs:isDefinedBy rdf:resource=%q/>\n", c.IsDefinedBy)
	}
	writeElem(&sb, "rdfs:label", c.Label)
	for _, alt := range c.AlternativeLabels {
		writeElem(&sb, "skos:altLabel", alt)
	}
	for _, lang := range sortedKeys(c.Translations) {
		fmt.Fprintf(&sb, "  <skos:altLabel xml:lang=%q>%s</skos:altLabel>\n", lang, escapeXML(c.Translations[lang]))
	}
	if c.HiddenLabel != "" {
		writeElem(&sb, "skos:hiddenLabel", c.HiddenLabel)
	}
	if c.PreferredLabel != "" {
		writeElem(&sb, "skos:prefLabel", c.PreferredLabel)
	}
	if c.Definition != "" {
		writeElem(&sb, "skos:definition", c.Definition)
	}
	for _, ex := range c.Examples {
		writeElem(&sb, "skos:example", ex)
	}
	for _, note := range c.Notes {
		writeElem(&sb, "skos:note", note)
	}
	if c.Comment != "" {
		writeElem(&sb, "rdfs:comment", c.Comment)
	}
	if c.Deprecated {
		writeElem(&sb, "owl:deprecated", "true")
	}
	if c.HistoryNote != "" {
		writeElem(&sb, "skos:historyNote", c.HistoryNote)
	}
	if c.EditorialNote != "" {
		writeElem(&sb, "skos:editorialNote", c.EditorialNote)
	}
	if c.InScheme != "" {
		writeElem(&sb, "skos:inScheme", c.InScheme)
	}
	if c.Identifier != "" {
		writeElem(&sb, "dc:identifier", c.Identifier)
	}
	if c.Description != "" {
		writeElem(&sb, "dc:description", c.Description)
	}
	if c.Source != "" {
		writeElem(&sb, "dc:source", c.Source)
	}
	if c.Country != "" {
		writeElem(&sb, "lmss:country", c.Country)
	}
	sb.WriteString("</owl:Class>\n")
	return sb.String()
}

// ToMarkdown renders a class as a markdown document.
func ToMarkdown(c *owl.OWLClass) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", c.Label)
	fmt.Fprintf(&sb, "**IRI:** %s\n\n", c.IRI)
	sb.WriteString("## Labels\n\n")
	if c.PreferredLabel != "" {
		fmt.Fprintf(&sb, "**Preferred Label:** %s\n\n", c.PreferredLabel)
	}
	if len(c.AlternativeLabels) > 0 {
		sb.WriteString("**Alternative Labels:**\n")
		for _, alt := range c.AlternativeLabels {
			fmt.Fprintf(&sb, "\n- %s", alt)
		}
		sb.WriteString("\n\n")
	}
	if len(c.Translations) > 0 {
		sb.WriteString("**Translations:**\n")
		for _, lang := range sortedKeys(c.Translations) {
			fmt.Fprintf(&sb, "\n- %s: %s", lang, c.Translations[lang])
		}
		sb.WriteString("\n\n")
	}
	if c.HiddenLabel != "" {
		fmt.Fprintf(&sb, "**Hidden Label:** %s\n\n", c.HiddenLabel)
	}
	if c.Definition != "" {
		fmt.Fprintf(&sb, "## Definition\n\n%s\n\n", c.Definition)
	}
	writeSection(&sb, "Examples", c.Examples)
	writeSection(&sb, "Sub Class Of", c.SubClassOf)
	writeSection(&sb, "Parent Class Of", c.ParentClassOf)
	if c.IsDefinedBy != "" {
		fmt.Fprintf(&sb, "**Is Defined By:** %s\n\n", c.IsDefinedBy)
	}
	writeSection(&sb, "See Also", c.SeeAlso)
	if c.Comment != "" {
		fmt.Fprintf(&sb, "**Comment:** %s\n\n", c.Comment)
	}
	fmt.Fprintf(&sb, "**Deprecated:** %v\n\n", c.Deprecated)
	writeSection(&sb, "Notes", c.Notes)
	if c.HistoryNote != "" {
		fmt.Fprintf(&sb, "**History Note:** %s\n\n", c.HistoryNote)
	}
	if c.EditorialNote != "" {
		fmt.Fprintf(&sb, "**Editorial Note:** %s\n\n", c.EditorialNote)
	}
	if c.InScheme != "" {
		fmt.Fprintf(&sb, "**In Scheme:** %s\n\n", c.InScheme)
	}
	if c.Identifier != "" {
		fmt.Fprintf(&sb, "**Identifier:** %s\n\n", c.Identifier)
	}
	if c.Description != "" {
		fmt.Fprintf(&sb, "**Description:** %s\n\n", c.Description)
	}
	if c.Source != "" {
		fmt.Fprintf(&sb, "**Source:** %s\n\n", c.Source)
	}
	if c.Country != "" {
		fmt.Fprintf(&sb, "**Country:** %s\n\n", c.Country)
	}
	return sb.String()
}

func writeSection(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
	sb.WriteString("\n")
}

func writeElem(sb *strings.Builder, tag, text string) {
	fmt.Fprintf(sb, "  <%s>%s</%s>\n", tag, escapeXML(text), tag)
}

func escapeXML(s string) string {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		return s
	}
	return sb.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
