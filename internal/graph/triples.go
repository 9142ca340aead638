package graph

import (
	"errors"
	"fmt"

	"github.com/alea-institute/soli-go/internal/owl"
)

// FilterKind selects which triple element a filter matches against.
type FilterKind string

const (
	FilterSubject   FilterKind = "subject"
	FilterPredicate FilterKind = "predicate"
	FilterObject    FilterKind = "object"
)

// ErrInvalidFilter indicates an unknown FilterKind. This is a programmer
// error, not a data condition.
var ErrInvalidFilter = errors.New("invalid triple filter")

type tripleFilterKey struct {
	kind  FilterKind
	value string
}

// Triples returns the frozen triple log in parse order. The slice must
// be treated as read-only.
func (s *Snapshot) Triples() []owl.Triple {
	return s.triples
}

// FilterTriples scans the frozen triple log for matches, in parse order.
// Results are memoized per (kind, value) for the snapshot's lifetime.
func (s *Snapshot) FilterTriples(kind FilterKind, value string) ([]owl.Triple, error) {
	switch kind {
	case FilterSubject, FilterPredicate, FilterObject:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, kind)
	}

	key := tripleFilterKey{kind: kind, value: value}

	s.tripleMu.Lock()
	if cached, ok := s.tripleCache[key]; ok {
		s.tripleMu.Unlock()
		return cached, nil
	}
	s.tripleMu.Unlock()

	var matches []owl.Triple
	for _, triple := range s.triples {
		var field string
		switch kind {
		case FilterSubject:
			field = triple.Subject
		case FilterPredicate:
			field = triple.Predicate
		case FilterObject:
			field = triple.Object
		}
		if field == value {
			matches = append(matches, triple)
		}
	}

	s.tripleMu.Lock()
	s.tripleCache[key] = matches
	s.tripleMu.Unlock()

	return matches, nil
}

// TriplesBySubject returns all triples whose subject equals the value.
func (s *Snapshot) TriplesBySubject(subject string) []owl.Triple {
	matches, _ := s.FilterTriples(FilterSubject, subject)
	return matches
}

// TriplesByPredicate returns all triples whose predicate equals the value.
func (s *Snapshot) TriplesByPredicate(predicate string) []owl.Triple {
	matches, _ := s.FilterTriples(FilterPredicate, predicate)
	return matches
}

// TriplesByObject returns all triples whose object equals the value.
func (s *Snapshot) TriplesByObject(object string) []owl.Triple {
	matches, _ := s.FilterTriples(FilterObject, object)
	return matches
}
