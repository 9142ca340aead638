package graph

import "strings"

// BaseIRI is the canonical prefix of every SOLI class IRI.
const BaseIRI = "https://soli.openlegalstandard.org/"

// legacyHTTPBase is the pre-rename base URL still found in older data.
const legacyHTTPBase = "http://lmss.sali.org/"

// NormalizeIRI canonicalizes an IRI: soli:/lmss: vendor prefixes and the
// legacy HTTP base are stripped, and a bare token is re-anchored on the
// canonical base. Already-canonical and foreign absolute IRIs pass
// through unchanged. Pure function of its input.
func NormalizeIRI(iri string) string {
	if strings.HasPrefix(iri, BaseIRI) {
		return iri
	}

	iri = strings.TrimPrefix(iri, "soli:")
	iri = strings.TrimPrefix(iri, "lmss:")
	iri = strings.TrimPrefix(iri, legacyHTTPBase)

	if !strings.Contains(iri, "/") {
		return BaseIRI + iri
	}

	return iri
}

// normalize memoizes NormalizeIRI per snapshot, since every lookup runs
// through it.
func (s *Snapshot) normalize(iri string) string {
	s.normMu.Lock()
	defer s.normMu.Unlock()

	if normalized, ok := s.normCache[iri]; ok {
		return normalized
	}
	normalized := NormalizeIRI(iri)
	s.normCache[iri] = normalized
	return normalized
}
