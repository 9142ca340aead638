package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alea-institute/soli-go/internal/owl"
)

// testDoc builds a small hierarchy:
//
//	owl:Thing
//	└── A (Area of Law)
//	    ├── B (Tax Law, alt "Taxation")
//	    │   └── D (Income Tax, child of both B and C)
//	    └── C (Corporate Law)
//	        └── D
func testDoc() *owl.Document {
	thing := owl.NewOWLClass(owl.OWLThing)

	a := owl.NewOWLClass(BaseIRI + "A")
	a.Label = "Area of Law"
	a.SubClassOf = []string{owl.OWLThing}

	b := owl.NewOWLClass(BaseIRI + "B")
	b.Label = "Tax Law"
	b.AlternativeLabels = []string{"Taxation"}
	b.SubClassOf = []string{a.IRI}

	c := owl.NewOWLClass(BaseIRI + "C")
	c.Label = "Corporate Law"
	c.SubClassOf = []string{a.IRI}

	d := owl.NewOWLClass(BaseIRI + "D")
	d.Label = "Income Tax"
	d.SubClassOf = []string{b.IRI, c.IRI}

	return &owl.Document{
		Title:   "SOLI",
		Classes: []*owl.OWLClass{thing, a, b, c, d},
		Triples: []owl.Triple{
			{Subject: a.IRI, Predicate: "rdfs:label", Object: "Area of Law"},
			{Subject: b.IRI, Predicate: "rdfs:label", Object: "Tax Law"},
			{Subject: b.IRI, Predicate: "rdfs:subClassOf", Object: a.IRI},
			{Subject: c.IRI, Predicate: "rdfs:subClassOf", Object: a.IRI},
		},
	}
}

func TestNewSnapshotIndexing(t *testing.T) {
	s := NewSnapshot(testDoc())

	// owl:Thing is never indexed
	assert.Equal(t, 4, s.Len())
	assert.False(t, s.Contains(owl.OWLThing))

	a, ok := s.ByIRI(BaseIRI + "A")
	require.True(t, ok)
	assert.Equal(t, "Area of Law", a.Label)

	first, ok := s.ByIndex(0)
	require.True(t, ok)
	assert.Equal(t, a, first)

	_, ok = s.ByIndex(99)
	assert.False(t, ok)
	_, ok = s.ByIndex(-1)
	assert.False(t, ok)
}

func TestSnapshotEdgeInversion(t *testing.T) {
	s := NewSnapshot(testDoc())

	a, _ := s.ByIRI(BaseIRI + "A")
	assert.Equal(t, []string{BaseIRI + "B", BaseIRI + "C"}, a.ParentClassOf)

	b, _ := s.ByIRI(BaseIRI + "B")
	assert.Equal(t, []string{BaseIRI + "D"}, b.ParentClassOf)

	// every subClassOf entry except owl:Thing appears inverted
	for _, class := range s.Classes() {
		for _, parentIRI := range class.SubClassOf {
			if parentIRI == owl.OWLThing {
				continue
			}
			parent, ok := s.ByIRI(parentIRI)
			require.True(t, ok)
			assert.Contains(t, parent.ParentClassOf, class.IRI)
		}
	}

	// the adjacency map mirrors the per-class edges and drives traversal
	assert.Equal(t, []string{BaseIRI + "B", BaseIRI + "C"}, s.classEdges[BaseIRI+"A"])
	assert.Equal(t, []string{BaseIRI + "D"}, s.classEdges[BaseIRI+"B"])
	assert.Empty(t, s.classEdges[BaseIRI+"D"])
}

func TestSnapshotLabelLookup(t *testing.T) {
	s := NewSnapshot(testDoc())

	byLabel := s.ByLabel("Tax Law", false)
	require.Len(t, byLabel, 1)
	assert.Equal(t, BaseIRI+"B", byLabel[0].IRI)

	// alt label only resolves when included
	assert.Empty(t, s.ByLabel("Taxation", false))
	assert.Len(t, s.ByLabel("Taxation", true), 1)

	byAlt := s.ByAltLabel("Taxation", false)
	require.Len(t, byAlt, 1)
	assert.Equal(t, BaseIRI+"B", byAlt[0].IRI)

	assert.Empty(t, s.ByAltLabel("Tax Law", false))
	assert.Len(t, s.ByAltLabel("Tax Law", true), 1)

	assert.ElementsMatch(t, []string{"Area of Law", "Tax Law", "Corporate Law", "Income Tax"}, s.Labels())
	assert.ElementsMatch(t, []string{"Taxation"}, s.AltLabels())
}

func TestSnapshotIDsDiffer(t *testing.T) {
	first := NewSnapshot(testDoc())
	second := NewSnapshot(testDoc())
	assert.NotEqual(t, first.ID, second.ID)
}

func TestNormalizeIRI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical passthrough", BaseIRI + "R001", BaseIRI + "R001"},
		{"soli prefix", "soli:R001", BaseIRI + "R001"},
		{"lmss prefix", "lmss:R001", BaseIRI + "R001"},
		{"legacy http base", "http://lmss.sali.org/R001", BaseIRI + "R001"},
		{"bare token", "R001", BaseIRI + "R001"},
		{"owl thing untouched", owl.OWLThing, owl.OWLThing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIRI(tt.in))
		})
	}
}

func TestSnapshotLookupNormalizes(t *testing.T) {
	s := NewSnapshot(testDoc())

	for _, form := range []string{
		BaseIRI + "A",
		"soli:A",
		"lmss:A",
		"http://lmss.sali.org/A",
		"A",
	} {
		class, ok := s.ByIRI(form)
		require.True(t, ok, "form %q", form)
		assert.Equal(t, "Area of Law", class.Label)
		assert.True(t, s.Contains(form))
	}
}
