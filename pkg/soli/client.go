// Package soli is the public client for the SOLI (Standard for Open
// Legal Information) ontology: loading, lookup, traversal, and search
// over the class graph.
package soli

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alea-institute/soli-go/internal/config"
	"github.com/alea-institute/soli-go/internal/fetch"
	"github.com/alea-institute/soli-go/internal/graph"
	"github.com/alea-institute/soli-go/internal/logging"
	"github.com/alea-institute/soli-go/internal/owl"
	"github.com/alea-institute/soli-go/internal/search"
	"github.com/alea-institute/soli-go/internal/store"
)

var log = logging.New("soli")

// DefaultMaxDepth bounds graph traversals.
const DefaultMaxDepth = graph.DefaultMaxDepth

// state is one immutable snapshot plus its search indices. Refresh swaps
// the whole state pointer, so readers never observe a partial rebuild
// and caches can never outlive their snapshot.
type state struct {
	snapshot *graph.Snapshot
	searcher *search.Searcher
}

// Client is a read-mostly handle on one loaded ontology. All query
// methods are safe for concurrent use; Refresh may run concurrently
// with readers because it swaps in a fully-built snapshot.
type Client struct {
	cfg    *config.Config
	loader *fetch.Loader
	cache  *store.DocumentCache

	current atomic.Pointer[state]
}

// Option configures a Client before the initial load.
type Option func(*options)

type options struct {
	httpClient   fetch.HTTPClient
	disableCache bool
	cycleGuard   bool
}

// WithHTTPClient injects the HTTP client used for fetching.
func WithHTTPClient(client fetch.HTTPClient) Option {
	return func(o *options) { o.httpClient = client }
}

// WithoutCache disables the on-disk document cache.
func WithoutCache() Option {
	return func(o *options) { o.disableCache = true }
}

// WithCycleGuard enables the visited-set bound on traversals.
func WithCycleGuard() Option {
	return func(o *options) { o.cycleGuard = true }
}

// New loads the ontology for cfg and returns a ready Client. A nil cfg
// uses the canonical GitHub source.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	client := &Client{cfg: cfg}

	var cache fetch.Cache
	if cfg.UseCache && !o.disableCache {
		documentCache, err := store.Open(cfg.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("opening document cache: %w", err)
		}
		client.cache = documentCache
		cache = documentCache
	}

	if o.httpClient != nil {
		client.loader = fetch.NewWithClient(cfg, cache, o.httpClient)
	} else {
		client.loader = fetch.New(cfg, cache)
	}

	if err := client.load(ctx, cfg.UseCache && !o.disableCache, o.cycleGuard); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// NewFromBuffer builds a Client directly from raw ontology text,
// bypassing fetch and cache. Refresh is unavailable on such a client.
func NewFromBuffer(buffer []byte, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	client := &Client{}
	if err := client.install(buffer, o.cycleGuard); err != nil {
		return nil, err
	}
	return client, nil
}

// load fetches, parses, and installs a snapshot. On failure any previous
// snapshot stays current.
func (c *Client) load(ctx context.Context, useCache, cycleGuard bool) error {
	start := time.Now()
	buffer, err := c.loader.LoadRaw(ctx, useCache)
	if err != nil {
		return err
	}
	log.TimedEvent("loaded", start, map[string]interface{}{"source": c.cfg.String()})

	return c.install([]byte(buffer), cycleGuard)
}

// install parses a buffer and atomically swaps in the new state.
func (c *Client) install(buffer []byte, cycleGuard bool) error {
	start := time.Now()
	doc, err := owl.Parse(buffer)
	if err != nil {
		return err
	}

	snapshot := graph.NewSnapshot(doc)
	snapshot.CycleGuard = cycleGuard
	next := &state{
		snapshot: snapshot,
		searcher: search.New(snapshot),
	}
	c.current.Store(next)

	log.TimedEvent("parsed", start, map[string]interface{}{
		"classes": snapshot.Len(),
		"triples": len(snapshot.Triples()),
	})
	return nil
}

// Refresh discards the current snapshot and rebuilds it from freshly
// fetched source text, bypassing the cache. Readers keep the previous
// snapshot until the new one is fully built.
func (c *Client) Refresh(ctx context.Context) error {
	if c.loader == nil {
		return fmt.Errorf("refresh unavailable: client was built from a buffer")
	}
	previous := c.current.Load()
	cycleGuard := previous != nil && previous.snapshot.CycleGuard
	return c.load(ctx, false, cycleGuard)
}

// Close releases the document cache, if any.
func (c *Client) Close() error {
	if c.cache != nil {
		return c.cache.Close()
	}
	return nil
}

// Branches lists the ontology repository's GitHub branches.
func (c *Client) Branches(ctx context.Context) ([]string, error) {
	if c.loader == nil {
		return nil, fmt.Errorf("branches unavailable: client was built from a buffer")
	}
	return c.loader.ListBranches(ctx)
}

// Snapshot returns the current immutable snapshot.
func (c *Client) Snapshot() *graph.Snapshot {
	return c.current.Load().snapshot
}

func (c *Client) searcher() *search.Searcher {
	return c.current.Load().searcher
}

// Len returns the number of classes in the current snapshot.
func (c *Client) Len() int { return c.Snapshot().Len() }

// Title returns the ontology document title.
func (c *Client) Title() string { return c.Snapshot().Title }

// Description returns the ontology document description.
func (c *Client) Description() string { return c.Snapshot().Description }

// Get returns the class for an IRI in any supported form.
func (c *Client) Get(iri string) (*owl.OWLClass, bool) {
	return c.Snapshot().ByIRI(iri)
}

// GetByIndex returns the class at a sequence position.
func (c *Client) GetByIndex(index int) (*owl.OWLClass, bool) {
	return c.Snapshot().ByIndex(index)
}

// Contains reports whether an IRI resolves to a class.
func (c *Client) Contains(iri string) bool {
	return c.Snapshot().Contains(iri)
}

// GetByLabel returns all classes with the given primary label.
func (c *Client) GetByLabel(label string, includeAltLabels bool) []*owl.OWLClass {
	return c.Snapshot().ByLabel(label, includeAltLabels)
}

// GetByAltLabel returns all classes with the given alternative label.
func (c *Client) GetByAltLabel(altLabel string, includePrimaryLabels bool) []*owl.OWLClass {
	return c.Snapshot().ByAltLabel(altLabel, includePrimaryLabels)
}

// GetParents returns iri's class followed by its recursive ancestors.
func (c *Client) GetParents(iri string, maxDepth int) []*owl.OWLClass {
	return c.Snapshot().GetParents(iri, maxDepth)
}

// GetChildren returns the descendants of iri, excluding iri itself.
func (c *Client) GetChildren(iri string, maxDepth int) []*owl.OWLClass {
	return c.Snapshot().GetChildren(iri, maxDepth)
}

// GetSubgraph returns iri's class followed by its recursive descendants.
func (c *Client) GetSubgraph(iri string, maxDepth int) []*owl.OWLClass {
	return c.Snapshot().GetSubgraph(iri, maxDepth)
}

// SearchByPrefix returns classes whose labels start with prefix,
// shortest matched label first.
func (c *Client) SearchByPrefix(prefix string) []*owl.OWLClass {
	return c.searcher().ByPrefix(prefix)
}

// SearchByLabel runs a fuzzy search over labels.
func (c *Client) SearchByLabel(query string, includeAltLabels bool, limit int) ([]search.Match, error) {
	return c.searcher().ByLabel(query, includeAltLabels, limit)
}

// SearchByDefinition runs a token-set fuzzy search over definitions.
func (c *Client) SearchByDefinition(query string, limit int) ([]search.Match, error) {
	return c.searcher().ByDefinition(query, limit)
}

// SearchAvailable reports whether fuzzy search can run.
func (c *Client) SearchAvailable() bool {
	return c.searcher().FuzzyAvailable()
}

// TriplesBySubject returns all triples with the given subject.
func (c *Client) TriplesBySubject(subject string) []owl.Triple {
	return c.Snapshot().TriplesBySubject(subject)
}

// TriplesByPredicate returns all triples with the given predicate.
func (c *Client) TriplesByPredicate(predicate string) []owl.Triple {
	return c.Snapshot().TriplesByPredicate(predicate)
}

// TriplesByObject returns all triples with the given object.
func (c *Client) TriplesByObject(object string) []owl.Triple {
	return c.Snapshot().TriplesByObject(object)
}

// String identifies the client's source.
func (c *Client) String() string {
	if c.cfg == nil {
		return "SOLI <buffer>"
	}
	return fmt.Sprintf("SOLI <%s>", c.cfg.String())
}
