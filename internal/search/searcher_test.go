package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alea-institute/soli-go/internal/graph"
	"github.com/alea-institute/soli-go/internal/owl"
)

func testSnapshot() *graph.Snapshot {
	mk := func(suffix, label, definition string, altLabels ...string) *owl.OWLClass {
		c := owl.NewOWLClass(graph.BaseIRI + suffix)
		c.Label = label
		c.Definition = definition
		c.AlternativeLabels = altLabels
		return c
	}

	return graph.NewSnapshot(&owl.Document{
		Classes: []*owl.OWLClass{
			mk("A", "Tax Law", "Rules governing taxation of income and assets."),
			mk("B", "Tax Court", "A forum that hears tax disputes."),
			mk("C", "Contract Law", "Rules governing agreements between parties.", "Agreements"),
			mk("D", "Tort Law", ""),
			mk("E", "IP", "Intellectual property rules."),
		},
	})
}

func TestByPrefix(t *testing.T) {
	s := New(testSnapshot())

	matches := s.ByPrefix("Tax")
	require.Len(t, matches, 2)
	// shortest matched label first
	assert.Equal(t, "Tax Law", matches[0].Label)
	assert.Equal(t, "Tax Court", matches[1].Label)

	assert.Empty(t, s.ByPrefix("Zoning"))
}

func TestByPrefixMatchesAltLabels(t *testing.T) {
	s := New(testSnapshot())

	matches := s.ByPrefix("Agree")
	require.Len(t, matches, 1)
	assert.Equal(t, "Contract Law", matches[0].Label)
}

func TestByPrefixTrieSkipsShortLabels(t *testing.T) {
	s := New(testSnapshot())

	// "IP" is below the trie's minimum indexed length
	assert.Empty(t, s.ByPrefix("IP"))

	// the linear fallback has no such floor
	linear := New(testSnapshot(), WithoutTrie())
	assert.Len(t, linear.ByPrefix("IP"), 1)
}

func TestByPrefixMemoized(t *testing.T) {
	s := New(testSnapshot())
	first := s.ByPrefix("Tax")
	second := s.ByPrefix("Tax")
	assert.Equal(t, first, second)
}

func TestByLabelExactMatchScoresHighest(t *testing.T) {
	s := New(testSnapshot())

	matches, err := s.ByLabel("Tax Law", false, 5)
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	assert.Equal(t, "Tax Law", matches[0].Class.Label)
	assert.Equal(t, float64(100), matches[0].Score)
	for _, m := range matches[1:] {
		assert.Less(t, m.Score, float64(100))
	}
}

func TestByLabelTypoTolerant(t *testing.T) {
	s := New(testSnapshot())

	matches, err := s.ByLabel("Tax Lw", false, 3)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "Tax Law", matches[0].Class.Label)
}

func TestByLabelDeduplicatesClasses(t *testing.T) {
	s := New(testSnapshot())

	matches, err := s.ByLabel("Contract", true, 10)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, m := range matches {
		assert.False(t, seen[m.Class.IRI], "class %s returned twice", m.Class.IRI)
		seen[m.Class.IRI] = true
	}
}

func TestByLabelDefaultLimit(t *testing.T) {
	s := New(testSnapshot())

	matches, err := s.ByLabel("Law", false, 0)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(matches), DefaultLimit)
	assert.NotEmpty(t, matches)
}

func TestByDefinition(t *testing.T) {
	s := New(testSnapshot())

	matches, err := s.ByDefinition("rules governing taxation", 3)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "Tax Law", matches[0].Class.Label)
	assert.Equal(t, float64(100), matches[0].Score)

	// classes without a definition are never candidates
	for _, m := range matches {
		assert.NotEqual(t, "Tort Law", m.Class.Label)
	}
}

func TestFuzzyUnavailable(t *testing.T) {
	s := New(testSnapshot(), WithoutFuzzy())

	assert.False(t, s.FuzzyAvailable())

	_, err := s.ByLabel("Tax", false, 5)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.ByDefinition("tax", 5)
	assert.ErrorIs(t, err, ErrUnavailable)

	// prefix search is unaffected
	assert.NotEmpty(t, s.ByPrefix("Tax"))
}

func TestFilter(t *testing.T) {
	s := New(testSnapshot())

	filtered := s.Filter("txl")
	assert.Contains(t, filtered, "Tax Law")
	assert.NotContains(t, filtered, "IP")
}
