// Package graph builds and serves the in-memory index over one parsed
// ontology snapshot: class sequence, IRI and label lookup maps, and the
// derived parent/child adjacency.
package graph

import (
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/alea-institute/soli-go/internal/logging"
	"github.com/alea-institute/soli-go/internal/owl"
)

var log = logging.New("graph")

// Snapshot is one fully-indexed, logically immutable ontology instance.
// All reads are safe for concurrent use once NewSnapshot returns; refresh
// is handled by swapping in a whole new Snapshot, never by mutation.
type Snapshot struct {
	// ID distinguishes snapshots so callers can scope their own caches.
	ID          string
	Title       string
	Description string

	// CycleGuard enables a visited-set bound on traversals. The source
	// data is asserted acyclic, so it is off by default.
	CycleGuard bool

	classes         []*owl.OWLClass
	iriToIndex      map[string]int
	labelToIndex    map[string][]int
	altLabelToIndex map[string][]int
	// classEdges is the inverted subClassOf adjacency; child traversal
	// walks it rather than per-class ParentClassOf.
	classEdges map[string][]string
	triples    []owl.Triple

	normMu    sync.Mutex
	normCache map[string]string

	tripleMu    sync.Mutex
	tripleCache map[tripleFilterKey][]owl.Triple
}

// NewSnapshot indexes a parsed document. Class positions follow document
// order; the owl:Thing root sentinel is never indexed. The derived
// ParentClassOf edges are materialized here in a single pass, logging
// dangling parent references instead of failing.
func NewSnapshot(doc *owl.Document) *Snapshot {
	s := &Snapshot{
		ID:              ulid.Make().String(),
		Title:           doc.Title,
		Description:     doc.Description,
		iriToIndex:      make(map[string]int),
		labelToIndex:    make(map[string][]int),
		altLabelToIndex: make(map[string][]int),
		classEdges:      make(map[string][]string),
		normCache:       make(map[string]string),
		tripleCache:     make(map[tripleFilterKey][]owl.Triple),
	}

	for _, class := range doc.Classes {
		if class.IRI == owl.OWLThing {
			continue
		}
		s.classes = append(s.classes, class)
		index := len(s.classes) - 1
		s.iriToIndex[class.IRI] = index

		if class.Label != "" {
			s.labelToIndex[class.Label] = append(s.labelToIndex[class.Label], index)
		}
		for _, altLabel := range class.AlternativeLabels {
			if altLabel != "" {
				s.altLabelToIndex[altLabel] = append(s.altLabelToIndex[altLabel], index)
			}
		}
	}

	// invert subClassOf into parent edges
	for _, class := range s.classes {
		for _, parent := range class.SubClassOf {
			if parent == owl.OWLThing {
				continue
			}
			s.classEdges[parent] = append(s.classEdges[parent], class.IRI)

			if parentIndex, ok := s.iriToIndex[parent]; ok {
				parentClass := s.classes[parentIndex]
				parentClass.ParentClassOf = append(parentClass.ParentClassOf, class.IRI)
			} else {
				log.Warn("dangling_parent", map[string]interface{}{
					"child":  class.IRI,
					"parent": parent,
				}, nil)
			}
		}
	}

	s.triples = make([]owl.Triple, len(doc.Triples))
	copy(s.triples, doc.Triples)

	return s
}

// Len returns the number of indexed classes.
func (s *Snapshot) Len() int {
	return len(s.classes)
}

// ByIndex returns the class at a sequence position.
func (s *Snapshot) ByIndex(index int) (*owl.OWLClass, bool) {
	if index < 0 || index >= len(s.classes) {
		return nil, false
	}
	return s.classes[index], true
}

// ByIRI returns the class for an IRI in any supported form.
func (s *Snapshot) ByIRI(iri string) (*owl.OWLClass, bool) {
	index, ok := s.iriToIndex[s.normalize(iri)]
	if !ok {
		return nil, false
	}
	return s.classes[index], true
}

// Contains reports whether an IRI resolves to an indexed class.
func (s *Snapshot) Contains(iri string) bool {
	_, ok := s.iriToIndex[s.normalize(iri)]
	return ok
}

// ByLabel returns all classes with the given primary label, optionally
// including alternative-label matches.
func (s *Snapshot) ByLabel(label string, includeAltLabels bool) []*owl.OWLClass {
	var classes []*owl.OWLClass
	for _, index := range s.labelToIndex[label] {
		classes = append(classes, s.classes[index])
	}
	if includeAltLabels {
		for _, index := range s.altLabelToIndex[label] {
			classes = append(classes, s.classes[index])
		}
	}
	return classes
}

// ByAltLabel returns all classes with the given alternative label,
// optionally including primary-label matches.
func (s *Snapshot) ByAltLabel(altLabel string, includePrimaryLabels bool) []*owl.OWLClass {
	var classes []*owl.OWLClass
	for _, index := range s.altLabelToIndex[altLabel] {
		classes = append(classes, s.classes[index])
	}
	if includePrimaryLabels {
		for _, index := range s.labelToIndex[altLabel] {
			classes = append(classes, s.classes[index])
		}
	}
	return classes
}

// Labels returns the primary label keys in no particular order.
func (s *Snapshot) Labels() []string {
	keys := make([]string, 0, len(s.labelToIndex))
	for key := range s.labelToIndex {
		keys = append(keys, key)
	}
	return keys
}

// AltLabels returns the alternative label keys in no particular order.
func (s *Snapshot) AltLabels() []string {
	keys := make([]string, 0, len(s.altLabelToIndex))
	for key := range s.altLabelToIndex {
		keys = append(keys, key)
	}
	return keys
}

// Classes returns the class sequence in document order. The slice must be
// treated as read-only.
func (s *Snapshot) Classes() []*owl.OWLClass {
	return s.classes
}
