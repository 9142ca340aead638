package soli

import (
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"

	"github.com/alea-institute/soli-go/internal/graph"
)

// maxIRIAttempts bounds IRI generation retries on collision.
const maxIRIAttempts = 16

// GenerateIRI mints a new class IRI in the WebProtege style: a uuid4
// encoded as URL-safe base64 stripped to alphanumerics, anchored on the
// canonical base. Retries on the unlikely collision with an existing
// class.
func (c *Client) GenerateIRI() (string, error) {
	snapshot := c.Snapshot()

	for attempt := 0; attempt < maxIRIAttempts; attempt++ {
		id := uuid.New()
		encoded := base64.RawURLEncoding.EncodeToString(id[:])

		token := make([]byte, 0, len(encoded))
		for i := 0; i < len(encoded); i++ {
			ch := encoded[i]
			if ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9') {
				token = append(token, ch)
			}
		}

		iri := graph.BaseIRI + string(token)
		if snapshot.Contains(iri) {
			continue
		}
		return iri, nil
	}

	return "", fmt.Errorf("failed to generate a unique IRI after %d attempts", maxIRIAttempts)
}
