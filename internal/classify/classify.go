// Package classify maps free text onto ontology classes using an LLM.
// The caller supplies the candidate classes (typically one taxonomy
// branch) and the model picks which of them describe the text.
package classify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alea-institute/soli-go/internal/graph"
	"github.com/alea-institute/soli-go/internal/logging"
	"github.com/alea-institute/soli-go/internal/owl"
)

// ErrNoAPIKey indicates classification was requested without credentials.
var ErrNoAPIKey = errors.New("classify: no API key configured")

const (
	// promptTokenBudget caps the candidate listing so large branches
	// do not blow up the request.
	promptTokenBudget = 8000

	responseMaxTokens = 1024

	systemPrompt = "You classify text against a legal ontology. " +
		"Given a document and a list of candidate classes, select the classes " +
		"that apply. Respond with a JSON array of IRI strings, most relevant " +
		"first, and nothing else. Respond with [] if none apply."
)

var log = logging.New("classify")

// Completer produces a text completion for a prompt pair.
type Completer interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// Result is a class the model selected, in relevance order.
type Result struct {
	Class *owl.OWLClass
	Rank  int
}

// Classifier matches text against snapshot classes.
type Classifier struct {
	completer Completer
	snapshot  *graph.Snapshot
}

// New creates a classifier over a snapshot.
func New(completer Completer, snapshot *graph.Snapshot) *Classifier {
	return &Classifier{completer: completer, snapshot: snapshot}
}

// Classify asks the model which candidate classes describe the text.
// Candidates beyond the prompt token budget are dropped, label order
// preserved. Results reference classes from the snapshot; IRIs the model
// invents are discarded.
func (c *Classifier) Classify(ctx context.Context, text string, candidates []*owl.OWLClass, limit int) ([]Result, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	started := time.Now()

	prompt := c.buildPrompt(text, candidates)
	raw, err := c.completer.Complete(ctx, systemPrompt, prompt, responseMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	iris, err := parseIRIList(raw)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	var results []Result
	for _, iri := range iris {
		class, ok := c.snapshot.ByIRI(iri)
		if !ok {
			log.Debug("unknown_iri_dropped", map[string]any{"iri": iri})
			continue
		}
		results = append(results, Result{Class: class, Rank: len(results) + 1})
		if limit > 0 && len(results) >= limit {
			break
		}
	}

	log.TimedEvent("classify_complete", started, map[string]any{
		"candidates": len(candidates),
		"selected":   len(results),
	})
	return results, nil
}

func (c *Classifier) buildPrompt(text string, candidates []*owl.OWLClass) string {
	var sb strings.Builder
	sb.WriteString("Candidate classes:\n")
	budget := promptTokenBudget - countTokens(text)
	listed := 0
	for _, cand := range candidates {
		line := fmt.Sprintf("- %s <%s>", cand.Label, cand.IRI)
		if cand.Definition != "" {
			line += ": " + cand.Definition
		}
		line += "\n"
		budget -= countTokens(line)
		if budget < 0 {
			break
		}
		sb.WriteString(line)
		listed++
	}
	if listed < len(candidates) {
		log.Warn("candidates_truncated", map[string]any{
			"listed": listed,
			"total":  len(candidates),
		}, nil)
	}
	sb.WriteString("\nDocument:\n")
	sb.WriteString(text)
	return sb.String()
}

// parseIRIList extracts a JSON string array from a model response,
// tolerating surrounding prose or a code fence.
func parseIRIList(raw string) ([]string, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in response")
	}
	var iris []string
	if err := json.Unmarshal([]byte(raw[start:end+1]), &iris); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	for i, iri := range iris {
		iris[i] = graph.NormalizeIRI(iri)
	}
	return iris, nil
}
