package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alea-institute/soli-go/internal/config"
	"github.com/alea-institute/soli-go/internal/store"
)

// mockHTTPClient returns canned responses by URL.
type mockHTTPClient struct {
	responses map[string]mockResponse
	requests  []string
}

type mockResponse struct {
	status int
	body   string
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.requests = append(m.requests, req.URL.String())
	resp, ok := m.responses[req.URL.String()]
	if !ok {
		return nil, fmt.Errorf("no route for %s", req.URL.String())
	}
	return &http.Response{
		StatusCode: resp.status,
		Body:       io.NopCloser(bytes.NewReader([]byte(resp.body))),
		Header:     make(http.Header),
	}, nil
}

// memCache is an in-memory Cache for loader tests.
type memCache struct {
	docs map[string]string
	puts int
}

func newMemCache() *memCache {
	return &memCache{docs: make(map[string]string)}
}

func (c *memCache) Get(_ context.Context, descriptor string) (string, error) {
	body, ok := c.docs[descriptor]
	if !ok {
		return "", &store.NotFoundError{Key: descriptor}
	}
	return body, nil
}

func (c *memCache) Put(_ context.Context, descriptor, body string) error {
	c.docs[descriptor] = body
	c.puts++
	return nil
}

func githubConfig() *config.Config {
	return &config.Config{
		Source:    config.SourceGitHub,
		RepoOwner: "alea-institute",
		RepoName:  "soli",
		Branch:    "1.0.0",
	}
}

const rawURL = "https://raw.githubusercontent.com/alea-institute/soli/1.0.0/SOLI.owl"

func TestLoadRawGitHub(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]mockResponse{
		rawURL: {status: 200, body: "<rdf:RDF/>"},
	}}
	loader := NewWithClient(githubConfig(), nil, client)

	body, err := loader.LoadRaw(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "<rdf:RDF/>", body)
	assert.Equal(t, []string{rawURL}, client.requests)
}

func TestLoadRawHTTPSource(t *testing.T) {
	cfg := &config.Config{Source: config.SourceHTTP, URL: "https://example.com/SOLI.owl"}
	client := &mockHTTPClient{responses: map[string]mockResponse{
		cfg.URL: {status: 200, body: "doc"},
	}}
	loader := NewWithClient(cfg, nil, client)

	body, err := loader.LoadRaw(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "doc", body)
}

func TestLoadRawCachesResult(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]mockResponse{
		rawURL: {status: 200, body: "cached body"},
	}}
	cache := newMemCache()
	loader := NewWithClient(githubConfig(), cache, client)
	ctx := context.Background()

	// first load fetches and fills the cache
	body, err := loader.LoadRaw(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "cached body", body)
	assert.Equal(t, 1, cache.puts)

	// second load is served from cache without a request
	body, err = loader.LoadRaw(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "cached body", body)
	assert.Len(t, client.requests, 1)
}

func TestLoadRawBypassesCache(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]mockResponse{
		rawURL: {status: 200, body: "fresh"},
	}}
	cache := newMemCache()
	cache.docs[githubConfig().Descriptor()] = "stale"
	loader := NewWithClient(githubConfig(), cache, client)

	body, err := loader.LoadRaw(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "fresh", body)
	// bypass does not rewrite the cache either
	assert.Equal(t, "stale", cache.docs[githubConfig().Descriptor()])
}

func TestLoadRawErrorStatus(t *testing.T) {
	client := &mockHTTPClient{responses: map[string]mockResponse{
		rawURL: {status: 404, body: "not found"},
	}}
	loader := NewWithClient(githubConfig(), nil, client)

	_, err := loader.LoadRaw(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestLoadRawInvalidConfig(t *testing.T) {
	loader := NewWithClient(&config.Config{Source: "ftp"}, nil, &mockHTTPClient{})
	_, err := loader.LoadRaw(context.Background(), false)
	assert.Error(t, err)
}

func TestListBranches(t *testing.T) {
	url := "https://api.github.com/repos/alea-institute/soli/branches"
	client := &mockHTTPClient{responses: map[string]mockResponse{
		url: {status: 200, body: `[{"name": "main"}, {"name": "1.0.0"}, {"name": "2.0.0"}]`},
	}}
	loader := NewWithClient(githubConfig(), nil, client)

	branches, err := loader.ListBranches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "1.0.0", "2.0.0"}, branches)
}

func TestListBranchesError(t *testing.T) {
	url := "https://api.github.com/repos/alea-institute/soli/branches"
	client := &mockHTTPClient{responses: map[string]mockResponse{
		url: {status: 403, body: "rate limited"},
	}}
	loader := NewWithClient(githubConfig(), nil, client)

	_, err := loader.ListBranches(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
