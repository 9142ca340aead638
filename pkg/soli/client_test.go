package soli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alea-institute/soli-go/internal/config"
	"github.com/alea-institute/soli-go/internal/graph"
)

const testOntology = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#"
         xmlns:skos="http://www.w3.org/2004/02/skos/core#"
         xmlns:dc="http://purl.org/dc/elements/1.1/">
  <owl:Ontology rdf:about="https://soli.openlegalstandard.org/">
    <dc:title>SOLI</dc:title>
    <dc:description>Test ontology.</dc:description>
  </owl:Ontology>
  <owl:Class rdf:about="https://soli.openlegalstandard.org/RSYBzf149Mi5KE0YtmpUmr">
    <rdfs:label>Area of Law</rdfs:label>
    <rdfs:subClassOf rdf:resource="http://www.w3.org/2002/07/owl#Thing"/>
  </owl:Class>
  <owl:Class rdf:about="https://soli.openlegalstandard.org/R100">
    <rdfs:label>Tax Law</rdfs:label>
    <rdfs:subClassOf rdf:resource="https://soli.openlegalstandard.org/RSYBzf149Mi5KE0YtmpUmr"/>
    <skos:altLabel>Taxation</skos:altLabel>
    <skos:definition>Rules governing taxation.</skos:definition>
  </owl:Class>
  <owl:Class rdf:about="https://soli.openlegalstandard.org/R101">
    <rdfs:label>Income Tax</rdfs:label>
    <rdfs:subClassOf rdf:resource="https://soli.openlegalstandard.org/R100"/>
  </owl:Class>
</rdf:RDF>`

func testClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewFromBuffer([]byte(testOntology))
	require.NoError(t, err)
	return client
}

func TestNewFromBuffer(t *testing.T) {
	client := testClient(t)

	assert.Equal(t, 3, client.Len())
	assert.Equal(t, "SOLI", client.Title())
	assert.Equal(t, "Test ontology.", client.Description())
	assert.Equal(t, "SOLI <buffer>", client.String())
}

func TestNewFromBufferMalformed(t *testing.T) {
	_, err := NewFromBuffer([]byte("<rdf:RDF><owl:Class"))
	assert.Error(t, err)
}

func TestClientLookup(t *testing.T) {
	client := testClient(t)

	class, ok := client.Get("soli:R100")
	require.True(t, ok)
	assert.Equal(t, "Tax Law", class.Label)

	assert.True(t, client.Contains("R100"))
	assert.False(t, client.Contains("R999"))

	byLabel := client.GetByLabel("Tax Law", false)
	require.Len(t, byLabel, 1)

	byAlt := client.GetByAltLabel("Taxation", false)
	require.Len(t, byAlt, 1)
	assert.Equal(t, "Tax Law", byAlt[0].Label)

	first, ok := client.GetByIndex(0)
	require.True(t, ok)
	assert.Equal(t, "Area of Law", first.Label)
}

func TestClientTraversal(t *testing.T) {
	client := testClient(t)

	parents := client.GetParents("R101", DefaultMaxDepth)
	require.Len(t, parents, 3)
	assert.Equal(t, "Income Tax", parents[0].Label)
	assert.Equal(t, "Tax Law", parents[1].Label)
	assert.Equal(t, "Area of Law", parents[2].Label)

	children := client.GetChildren("RSYBzf149Mi5KE0YtmpUmr", DefaultMaxDepth)
	assert.Len(t, children, 2)

	subgraph := client.GetSubgraph("RSYBzf149Mi5KE0YtmpUmr", DefaultMaxDepth)
	assert.Len(t, subgraph, 3)
}

func TestClientSearch(t *testing.T) {
	client := testClient(t)

	require.True(t, client.SearchAvailable())

	byPrefix := client.SearchByPrefix("Tax")
	require.NotEmpty(t, byPrefix)
	assert.Equal(t, "Tax Law", byPrefix[0].Label)

	matches, err := client.SearchByLabel("Tax Law", false, 5)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "Tax Law", matches[0].Class.Label)
	assert.Equal(t, float64(100), matches[0].Score)

	defMatches, err := client.SearchByDefinition("taxation rules", 5)
	require.NoError(t, err)
	require.NotEmpty(t, defMatches)
	assert.Equal(t, "Tax Law", defMatches[0].Class.Label)
}

func TestClientTriples(t *testing.T) {
	client := testClient(t)

	bySubject := client.TriplesBySubject("https://soli.openlegalstandard.org/R100")
	assert.Len(t, bySubject, 4)

	byPredicate := client.TriplesByPredicate("rdfs:label")
	assert.Len(t, byPredicate, 3)

	byObject := client.TriplesByObject("Tax Law")
	assert.Len(t, byObject, 1)
}

func TestRefreshUnavailableFromBuffer(t *testing.T) {
	client := testClient(t)

	err := client.Refresh(context.Background())
	assert.Error(t, err)

	_, err = client.Branches(context.Background())
	assert.Error(t, err)
}

// bufferHTTPClient serves a fixed body for every request.
type bufferHTTPClient struct {
	body     string
	requests int
}

func (b *bufferHTTPClient) Do(*http.Request) (*http.Response, error) {
	b.requests++
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewReader([]byte(b.body))),
		Header:     make(http.Header),
	}, nil
}

func TestNewAndRefreshSwapSnapshot(t *testing.T) {
	cfg := &config.Config{
		Source:   config.SourceHTTP,
		URL:      "https://example.com/SOLI.owl",
		CacheDir: t.TempDir(),
		UseCache: false,
	}
	httpClient := &bufferHTTPClient{body: testOntology}

	client, err := New(context.Background(), cfg, WithHTTPClient(httpClient), WithoutCache())
	require.NoError(t, err)
	defer client.Close()

	before := client.Snapshot()
	assert.Equal(t, 3, client.Len())

	// refresh with an extra class swaps in a new snapshot
	httpClient.body = strings.Replace(testOntology, "</rdf:RDF>", `
  <owl:Class rdf:about="https://soli.openlegalstandard.org/R102">
    <rdfs:label>Payroll Tax</rdfs:label>
    <rdfs:subClassOf rdf:resource="https://soli.openlegalstandard.org/R100"/>
  </owl:Class>
</rdf:RDF>`, 1)

	require.NoError(t, client.Refresh(context.Background()))
	after := client.Snapshot()

	assert.NotEqual(t, before.ID, after.ID)
	assert.Equal(t, 4, client.Len())
	assert.True(t, client.Contains("R102"))

	// the old snapshot is untouched
	assert.False(t, before.Contains("R102"))
}

func TestRefreshKeepsSnapshotOnFailure(t *testing.T) {
	cfg := &config.Config{
		Source:   config.SourceHTTP,
		URL:      "https://example.com/SOLI.owl",
		UseCache: false,
	}
	httpClient := &bufferHTTPClient{body: testOntology}

	client, err := New(context.Background(), cfg, WithHTTPClient(httpClient), WithoutCache())
	require.NoError(t, err)
	defer client.Close()

	before := client.Snapshot()

	httpClient.body = "<rdf:RDF><broken"
	require.Error(t, client.Refresh(context.Background()))

	assert.Same(t, before, client.Snapshot())
	assert.Equal(t, 3, client.Len())
}

func TestGenerateIRI(t *testing.T) {
	client := testClient(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		iri, err := client.GenerateIRI()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(iri, graph.BaseIRI))
		assert.False(t, client.Contains(iri))

		suffix := strings.TrimPrefix(iri, graph.BaseIRI)
		assert.NotEmpty(t, suffix)
		for _, ch := range suffix {
			ok := ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9')
			assert.True(t, ok, "non-alphanumeric rune %q in %s", ch, iri)
		}

		assert.False(t, seen[iri], "duplicate IRI %s", iri)
		seen[iri] = true
	}
}

func TestTaxonomyGetters(t *testing.T) {
	client := testClient(t)

	// the branch root itself is excluded
	areas := client.GetAreasOfLaw(DefaultMaxDepth)
	require.Len(t, areas, 2)
	assert.Equal(t, "Tax Law", areas[0].Label)
	assert.Equal(t, "Income Tax", areas[1].Label)

	byType := client.GetByType(AreaOfLaw, DefaultMaxDepth)
	assert.Equal(t, areas, byType)

	// a branch root missing from the document yields nothing
	assert.Empty(t, client.GetCurrencies(DefaultMaxDepth))
}

func TestTypeIRI(t *testing.T) {
	assert.Equal(t,
		"https://soli.openlegalstandard.org/RSYBzf149Mi5KE0YtmpUmr",
		TypeIRI(AreaOfLaw))

	types := AllTypes()
	assert.Len(t, types, 24)
	for _, typ := range types {
		assert.NotEmpty(t, TypeIRIs[typ], "missing IRI for %s", typ)
	}
}
