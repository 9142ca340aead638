package export

import (
	"context"
	"fmt"
	"time"

	"github.com/alea-institute/soli-go/internal/graph"
	"github.com/alea-institute/soli-go/internal/logging"
	"github.com/alea-institute/soli-go/internal/owl"
)

const batchSize = 500

var log = logging.New("export")

// Exporter writes snapshot classes and subclass edges to a graph database.
type Exporter struct {
	driver Driver
}

// NewExporter wraps a connected driver.
func NewExporter(driver Driver) *Exporter {
	return &Exporter{driver: driver}
}

// Push writes every class as an OWLClass node and every subclass
// relation as a SUBCLASS_OF edge. Nodes are merged on IRI so repeated
// exports update in place.
func (e *Exporter) Push(ctx context.Context, snapshot *graph.Snapshot) error {
	started := time.Now()

	if err := e.driver.ExecuteWrite(ctx,
		"CREATE INDEX ON :OWLClass(iri)", nil); err != nil {
		// Neo4j and Memgraph disagree on index syntax; an existing
		// index also errors. Neither failure blocks the export.
		log.Debug("index_create_skipped", map[string]any{"error": err.Error()})
	}

	classes := snapshot.Classes()
	if err := e.pushNodes(ctx, classes); err != nil {
		return err
	}
	edges := 0
	if err := e.pushEdges(ctx, classes, &edges); err != nil {
		return err
	}

	log.TimedEvent("export_complete", started, map[string]any{
		"classes": len(classes),
		"edges":   edges,
	})
	return nil
}

func (e *Exporter) pushNodes(ctx context.Context, classes []*owl.OWLClass) error {
	for start := 0; start < len(classes); start += batchSize {
		end := min(start+batchSize, len(classes))
		rows := make([]map[string]any, 0, end-start)
		for _, c := range classes[start:end] {
			rows = append(rows, map[string]any{
				"iri":        c.IRI,
				"label":      c.Label,
				"prefLabel":  c.PreferredLabel,
				"altLabels":  c.AlternativeLabels,
				"definition": c.Definition,
				"identifier": c.Identifier,
				"deprecated": c.Deprecated,
			})
		}
		err := e.driver.ExecuteWrite(ctx, `
			UNWIND $rows AS row
			MERGE (c:OWLClass {iri: row.iri})
			SET c.label = row.label,
			    c.pref_label = row.prefLabel,
			    c.alt_labels = row.altLabels,
			    c.definition = row.definition,
			    c.identifier = row.identifier,
			    c.deprecated = row.deprecated`,
			map[string]any{"rows": rows})
		if err != nil {
			return fmt.Errorf("push nodes [%d:%d]: %w", start, end, err)
		}
	}
	return nil
}

func (e *Exporter) pushEdges(ctx context.Context, classes []*owl.OWLClass, count *int) error {
	var rows []map[string]any
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		err := e.driver.ExecuteWrite(ctx, `
			UNWIND $rows AS row
			MATCH (child:OWLClass {iri: row.child})
			MATCH (parent:OWLClass {iri: row.parent})
			MERGE (child)-[:SUBCLASS_OF]->(parent)`,
			map[string]any{"rows": rows})
		if err != nil {
			return fmt.Errorf("push edges: %w", err)
		}
		*count += len(rows)
		rows = rows[:0]
		return nil
	}

	for _, c := range classes {
		for _, parent := range c.SubClassOf {
			if parent == owl.OWLThing {
				continue
			}
			rows = append(rows, map[string]any{"child": c.IRI, "parent": parent})
			if len(rows) >= batchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
	}
	return flush()
}

// Count returns the number of OWLClass nodes currently stored.
func (e *Exporter) Count(ctx context.Context) (int64, error) {
	records, err := e.driver.Execute(ctx,
		"MATCH (c:OWLClass) RETURN count(c) AS n", nil)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}
	n, _ := records[0]["n"].(int64)
	return n, nil
}
