// Package fetch loads the raw ontology document from its source
// (GitHub or a plain HTTP URL), consulting the local document cache.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alea-institute/soli-go/internal/config"
	"github.com/alea-institute/soli-go/internal/logging"
	"github.com/alea-institute/soli-go/internal/store"
)

var log = logging.New("fetch")

// HTTPClient interface for HTTP requests (enables testing)
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Verify http.Client implements HTTPClient
var _ HTTPClient = (*http.Client)(nil)

// Cache is the subset of the document cache the loader needs.
type Cache interface {
	Get(ctx context.Context, descriptor string) (string, error)
	Put(ctx context.Context, descriptor, body string) error
}

// Loader fetches ontology documents for a configured source.
type Loader struct {
	cfg    *config.Config
	client HTTPClient
	cache  Cache
}

// New creates a Loader. cache may be nil to disable caching entirely.
func New(cfg *config.Config, cache Cache) *Loader {
	return &Loader{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
		cache:  cache,
	}
}

// NewWithClient creates a Loader with an injected HTTP client.
func NewWithClient(cfg *config.Config, cache Cache, client HTTPClient) *Loader {
	return &Loader{cfg: cfg, client: client, cache: cache}
}

// LoadRaw returns the full ontology document text. When useCache is true
// the document cache is consulted first and refreshed on a miss; a
// transport failure is returned as a hard error.
func (l *Loader) LoadRaw(ctx context.Context, useCache bool) (string, error) {
	if err := l.cfg.Validate(); err != nil {
		return "", err
	}
	descriptor := l.cfg.Descriptor()

	if useCache && l.cache != nil {
		body, err := l.cache.Get(ctx, descriptor)
		if err == nil {
			log.Info("cache_hit", map[string]interface{}{"descriptor": descriptor})
			return body, nil
		}
		if !store.IsNotFound(err) {
			log.Warn("cache_read_failed", map[string]interface{}{"descriptor": descriptor}, err)
		}
	}

	start := time.Now()
	var body string
	var err error
	switch l.cfg.Source {
	case config.SourceGitHub:
		body, err = l.fetchGitHub(ctx)
	case config.SourceHTTP:
		body, err = l.fetchURL(ctx, l.cfg.URL)
	}
	if err != nil {
		return "", err
	}
	log.TimedEvent("fetched", start, map[string]interface{}{"descriptor": descriptor})

	if useCache && l.cache != nil {
		if err := l.cache.Put(ctx, descriptor, body); err != nil {
			log.Warn("cache_write_failed", map[string]interface{}{"descriptor": descriptor}, err)
		}
	}

	return body, nil
}

// fetchGitHub loads the document from the raw GitHub object URL.
func (l *Loader) fetchGitHub(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/SOLI.owl",
		config.DefaultGitHubObjectURL, l.cfg.RepoOwner, l.cfg.RepoName, l.cfg.Branch)
	return l.fetchURL(ctx, url)
}

// fetchURL performs one GET and returns the response body as text.
func (l *Loader) fetchURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("loading ontology from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("loading ontology from %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading ontology from %s: %w", url, err)
	}
	return string(body), nil
}
