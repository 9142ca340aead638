package graph

import "github.com/alea-institute/soli-go/internal/owl"

// DefaultMaxDepth bounds recursive traversals. The ontology is asserted
// acyclic, so this is a safety limit rather than a correctness one.
const DefaultMaxDepth = 16

// GetParents returns the class for iri followed by the recursive
// concatenation of its ancestors along subClassOf, up to maxDepth hops.
// Diamond inheritance yields duplicate entries; callers wanting a set
// must dedupe by IRI.
func (s *Snapshot) GetParents(iri string, maxDepth int) []*owl.OWLClass {
	var visited map[string]bool
	if s.CycleGuard {
		visited = make(map[string]bool)
	}
	return s.walkParents(iri, maxDepth, visited)
}

func (s *Snapshot) walkParents(iri string, maxDepth int, visited map[string]bool) []*owl.OWLClass {
	index, ok := s.iriToIndex[s.normalize(iri)]
	if !ok {
		return nil
	}

	class := s.classes[index]
	if visited != nil {
		if visited[class.IRI] {
			return nil
		}
		visited[class.IRI] = true
	}

	parents := []*owl.OWLClass{class}
	if maxDepth != 0 {
		for _, parent := range class.SubClassOf {
			parents = append(parents, s.walkParents(parent, maxDepth-1, visited)...)
		}
	}

	return parents
}

// GetSubgraph returns the class for iri followed by the recursive
// concatenation of its descendants along the derived parentClassOf
// edges, up to maxDepth hops. Duplicates are preserved as in GetParents.
func (s *Snapshot) GetSubgraph(iri string, maxDepth int) []*owl.OWLClass {
	var visited map[string]bool
	if s.CycleGuard {
		visited = make(map[string]bool)
	}
	return s.walkChildren(iri, maxDepth, visited)
}

func (s *Snapshot) walkChildren(iri string, maxDepth int, visited map[string]bool) []*owl.OWLClass {
	index, ok := s.iriToIndex[s.normalize(iri)]
	if !ok {
		return nil
	}

	class := s.classes[index]
	if visited != nil {
		if visited[class.IRI] {
			return nil
		}
		visited[class.IRI] = true
	}

	subgraph := []*owl.OWLClass{class}
	if maxDepth != 0 {
		for _, child := range s.classEdges[class.IRI] {
			subgraph = append(subgraph, s.walkChildren(child, maxDepth-1, visited)...)
		}
	}

	return subgraph
}

// GetChildren returns the descendants of iri, excluding the class itself.
func (s *Snapshot) GetChildren(iri string, maxDepth int) []*owl.OWLClass {
	root, _ := s.ByIRI(iri)

	var children []*owl.OWLClass
	for _, class := range s.GetSubgraph(iri, maxDepth) {
		if class != root {
			children = append(children, class)
		}
	}
	return children
}
