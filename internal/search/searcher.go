package search

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/alea-institute/soli-go/internal/graph"
	"github.com/alea-institute/soli-go/internal/owl"
)

// MinPrefixLength is the shortest label admitted into the prefix trie.
const MinPrefixLength = 3

// DefaultLimit is the result cap used when a caller passes a
// non-positive limit.
const DefaultLimit = 10

// ErrUnavailable indicates the fuzzy-matching capability is disabled.
// Distinct from an empty result set.
var ErrUnavailable = errors.New("fuzzy search unavailable")

// Match pairs a class with its similarity score. Higher is more similar;
// identical strings score 100.
type Match struct {
	Class *owl.OWLClass
	Score float64
}

// Searcher provides prefix and fuzzy lookup over one snapshot's labels.
// All caches are owned by the Searcher, so swapping snapshots (and their
// searchers) on refresh can never serve stale results.
type Searcher struct {
	snapshot *graph.Snapshot
	trie     *trie
	fuzzyOn  bool

	prefixMu    sync.Mutex
	prefixCache map[string][]*owl.OWLClass
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithoutTrie forces the linear prefix-scan fallback.
func WithoutTrie() Option {
	return func(s *Searcher) { s.trie = nil }
}

// WithoutFuzzy disables the fuzzy-matching capability. Fuzzy searches
// then fail with ErrUnavailable.
func WithoutFuzzy() Option {
	return func(s *Searcher) { s.fuzzyOn = false }
}

// New builds a Searcher for a snapshot, indexing every label and
// alternative label of length >= MinPrefixLength into the prefix trie.
func New(snapshot *graph.Snapshot, opts ...Option) *Searcher {
	s := &Searcher{
		snapshot:    snapshot,
		trie:        newTrie(),
		fuzzyOn:     true,
		prefixCache: make(map[string][]*owl.OWLClass),
	}

	for _, label := range snapshot.Labels() {
		if len(label) >= MinPrefixLength {
			s.trie.Insert(label)
		}
	}
	for _, altLabel := range snapshot.AltLabels() {
		if len(altLabel) >= MinPrefixLength {
			s.trie.Insert(altLabel)
		}
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FuzzyAvailable reports whether fuzzy searches can run. Callers may
// branch on this instead of discovering ErrUnavailable on first use.
func (s *Searcher) FuzzyAvailable() bool {
	return s.fuzzyOn
}

// ByPrefix returns every class with a label or alternative label
// starting with prefix, shortest matched string first. Results are
// memoized for the life of the Searcher.
func (s *Searcher) ByPrefix(prefix string) []*owl.OWLClass {
	s.prefixMu.Lock()
	if cached, ok := s.prefixCache[prefix]; ok {
		s.prefixMu.Unlock()
		return cached
	}
	s.prefixMu.Unlock()

	var keys []string
	if s.trie != nil {
		keys = s.trie.KeysWithPrefix(prefix)
	} else {
		for _, label := range s.snapshot.Labels() {
			if strings.HasPrefix(label, prefix) {
				keys = append(keys, label)
			}
		}
		for _, altLabel := range s.snapshot.AltLabels() {
			if strings.HasPrefix(altLabel, prefix) {
				keys = append(keys, altLabel)
			}
		}
		sort.Strings(keys)
	}

	// shortest match first: a shorter label containing the prefix is the
	// more direct hit
	sort.SliceStable(keys, func(i, j int) bool {
		return len(keys[i]) < len(keys[j])
	})

	var classes []*owl.OWLClass
	for _, key := range keys {
		classes = append(classes, s.snapshot.ByLabel(key, false)...)
		classes = append(classes, s.snapshot.ByAltLabel(key, false)...)
	}

	s.prefixMu.Lock()
	s.prefixCache[prefix] = classes
	s.prefixMu.Unlock()

	return classes
}

// scored is one ranked candidate string.
type scored struct {
	value string
	score float64
	index int
}

// rank scores every candidate against the query and returns the top
// limit candidates ordered by descending score, shorter strings first on
// ties.
func rank(query string, candidates []string, limit int, scorer func(a, b string) float64) []scored {
	results := make([]scored, 0, len(candidates))
	for i, candidate := range candidates {
		results = append(results, scored{
			value: candidate,
			score: scorer(query, candidate),
			index: i,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return len(results[i].value) < len(results[j].value)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// ByLabel runs a fuzzy search over label strings, deduplicating classes
// by IRI until limit unique classes are collected.
func (s *Searcher) ByLabel(query string, includeAltLabels bool, limit int) ([]Match, error) {
	if !s.fuzzyOn {
		return nil, ErrUnavailable
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	candidates := s.snapshot.Labels()
	if includeAltLabels {
		candidates = append(candidates, s.snapshot.AltLabels()...)
	}

	var matches []Match
	seen := make(map[string]bool)
	for _, candidate := range rank(query, candidates, limit, stringRatio) {
		for _, class := range s.snapshot.ByLabel(candidate.value, includeAltLabels) {
			if seen[class.IRI] {
				continue
			}
			seen[class.IRI] = true
			matches = append(matches, Match{Class: class, Score: candidate.score})
			if len(matches) >= limit {
				return matches, nil
			}
		}
	}

	return matches, nil
}

// ByDefinition runs a token-set fuzzy search over class definitions.
// Classes without a definition are not candidates.
func (s *Searcher) ByDefinition(query string, limit int) ([]Match, error) {
	if !s.fuzzyOn {
		return nil, ErrUnavailable
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var classIndices []int
	var definitions []string
	for i, class := range s.snapshot.Classes() {
		if class.Definition != "" {
			classIndices = append(classIndices, i)
			definitions = append(definitions, class.Definition)
		}
	}

	var matches []Match
	for _, candidate := range rank(query, definitions, limit, tokenSetRatio) {
		class, _ := s.snapshot.ByIndex(classIndices[candidate.index])
		matches = append(matches, Match{Class: class, Score: candidate.score})
		if len(matches) >= limit {
			break
		}
	}

	return matches, nil
}

// labelSource adapts a label slice to fuzzy.Source for subsequence
// filtering.
type labelSource []string

func (l labelSource) String(i int) string { return l[i] }
func (l labelSource) Len() int            { return len(l) }

// Filter returns labels matching query as a ranked character
// subsequence. Used by interactive narrowing (e.g. the class browser);
// fuzzy ranked search should go through ByLabel.
func (s *Searcher) Filter(query string) []string {
	labels := labelSource(s.snapshot.Labels())
	results := fuzzy.FindFrom(query, labels)

	filtered := make([]string, 0, len(results))
	for _, result := range results {
		filtered = append(filtered, labels[result.Index])
	}
	return filtered
}
