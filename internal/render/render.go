// Package render formats ontology entities for terminal output and
// for machine consumption (JSON, JSON-LD, OWL XML, markdown).
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/alea-institute/soli-go/internal/owl"
	"github.com/alea-institute/soli-go/internal/search"
)

// Renderer handles terminal output formatting.
type Renderer struct {
	pretty bool
}

// New creates a new renderer. When pretty is false the output is plain
// text suitable for piping.
func New(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

// Class formats a single class as a terminal summary.
func (r *Renderer) Class(c *owl.OWLClass) string {
	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString(c.Label) + "\n")
		sb.WriteString(strings.Repeat("─", 60) + "\n")
	} else {
		sb.WriteString(c.Label + "\n")
	}

	r.field(&sb, "IRI", c.IRI)
	r.field(&sb, "Preferred", c.PreferredLabel)
	if len(c.AlternativeLabels) > 0 {
		r.field(&sb, "Also known as", strings.Join(c.AlternativeLabels, ", "))
	}
	r.field(&sb, "Definition", c.Definition)
	if len(c.SubClassOf) > 0 {
		r.field(&sb, "Parents", strings.Join(c.SubClassOf, ", "))
	}
	if len(c.ParentClassOf) > 0 {
		r.field(&sb, "Children", fmt.Sprintf("%d classes", len(c.ParentClassOf)))
	}
	r.field(&sb, "Identifier", c.Identifier)
	if c.Deprecated {
		if r.pretty {
			sb.WriteString(color.YellowString("  deprecated\n"))
		} else {
			sb.WriteString("  deprecated\n")
		}
	}

	return sb.String()
}

// ClassList formats classes one per line with IRI and label.
func (r *Renderer) ClassList(classes []*owl.OWLClass) string {
	if len(classes) == 0 {
		return "No classes found"
	}

	var sb strings.Builder
	for _, c := range classes {
		if r.pretty {
			fmt.Fprintf(&sb, "%s  %s\n", color.CyanString(c.Label), color.HiBlackString(c.IRI))
		} else {
			fmt.Fprintf(&sb, "%s\t%s\n", c.Label, c.IRI)
		}
	}
	return sb.String()
}

// Matches formats scored search results.
func (r *Renderer) Matches(matches []search.Match) string {
	if len(matches) == 0 {
		return "No matches found"
	}

	var sb strings.Builder
	for _, m := range matches {
		score := fmt.Sprintf("%5.1f", m.Score)
		if r.pretty {
			fmt.Fprintf(&sb, "%s  %s  %s\n", color.GreenString(score), color.CyanString(m.Class.Label), color.HiBlackString(m.Class.IRI))
		} else {
			fmt.Fprintf(&sb, "%s\t%s\t%s\n", score, m.Class.Label, m.Class.IRI)
		}
	}
	return sb.String()
}

// Triples formats RDF triples in a tab-separated form.
func (r *Renderer) Triples(triples []owl.Triple) string {
	if len(triples) == 0 {
		return "No triples found"
	}

	var sb strings.Builder
	for _, t := range triples {
		if r.pretty {
			fmt.Fprintf(&sb, "%s  %s  %s\n", color.HiBlackString(t.Subject), color.CyanString(t.Predicate), t.Object)
		} else {
			fmt.Fprintf(&sb, "%s\t%s\t%s\n", t.Subject, t.Predicate, t.Object)
		}
	}
	return sb.String()
}

// Tree formats a class hierarchy as an indented tree. The classes are
// expected in depth-first order with a parallel depth slice, as produced
// by the traversal helpers.
func (r *Renderer) Tree(classes []*owl.OWLClass, depths []int) string {
	if len(classes) == 0 {
		return "No classes found"
	}

	var sb strings.Builder
	for i, c := range classes {
		depth := 0
		if i < len(depths) {
			depth = depths[i]
		}
		indent := strings.Repeat("  ", depth)
		if r.pretty {
			fmt.Fprintf(&sb, "%s%s\n", indent, color.CyanString(c.Label))
		} else {
			fmt.Fprintf(&sb, "%s%s\n", indent, c.Label)
		}
	}
	return sb.String()
}

func (r *Renderer) field(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	if r.pretty {
		fmt.Fprintf(sb, "  %s %s\n", color.HiBlackString(name+":"), value)
	} else {
		fmt.Fprintf(sb, "  %s: %s\n", name, value)
	}
}
