// Package export pushes an ontology snapshot into a Bolt-speaking graph
// database (Neo4j or Memgraph) so the hierarchy can be queried in Cypher.
package export

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Record represents a single result row from a query.
type Record map[string]any

// Driver defines the graph database operations the exporter needs.
// Any Bolt-compatible database can implement it.
type Driver interface {
	Execute(ctx context.Context, query string, params map[string]any) ([]Record, error)
	ExecuteWrite(ctx context.Context, query string, params map[string]any) error
	Close(ctx context.Context) error
	Ping(ctx context.Context) error
}

// Config holds database connection settings.
type Config struct {
	URI      string
	Username string
	Password string
}

// Bolt implements Driver over the neo4j bolt protocol.
type Bolt struct {
	driver neo4j.DriverWithContext
}

// NewBolt opens a bolt connection. An empty username selects
// unauthenticated access, which Memgraph allows by default.
func NewBolt(cfg Config) (*Bolt, error) {
	auth := neo4j.NoAuth()
	if cfg.Username != "" {
		auth = neo4j.BasicAuth(cfg.Username, cfg.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth)
	if err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}
	return &Bolt{driver: driver}, nil
}

// Execute runs a read query and returns results.
func (b *Bolt) Execute(ctx context.Context, query string, params map[string]any) ([]Record, error) {
	session := b.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	var records []Record
	for result.Next(ctx) {
		rec := result.Record()
		record := make(Record)
		for _, key := range rec.Keys {
			val, _ := rec.Get(key)
			record[key] = val
		}
		records = append(records, record)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("result iteration failed: %w", err)
	}
	return records, nil
}

// ExecuteWrite runs a write query.
func (b *Bolt) ExecuteWrite(ctx context.Context, query string, params map[string]any) error {
	session := b.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	if _, err := session.Run(ctx, query, params); err != nil {
		return fmt.Errorf("write query failed: %w", err)
	}
	return nil
}

// Close releases the database driver.
func (b *Bolt) Close(ctx context.Context) error {
	return b.driver.Close(ctx)
}

// Ping checks database connectivity.
func (b *Bolt) Ping(ctx context.Context) error {
	return b.driver.VerifyConnectivity(ctx)
}
