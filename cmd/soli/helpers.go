package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alea-institute/soli-go/internal/graph"
	"github.com/alea-institute/soli-go/internal/owl"
	"github.com/alea-institute/soli-go/pkg/soli"
)

// newClient loads config and builds a ready client, exiting on failure.
func newClient(ctx context.Context) *soli.Client {
	cfg := loadConfig()
	opts := []soli.Option{}
	if noCache {
		opts = append(opts, soli.WithoutCache())
	}
	client, err := soli.New(ctx, cfg, opts...)
	if err != nil {
		exitOnError(err)
	}
	return client
}

// resolveClass finds a class by IRI first, then by label, then by
// alternative label. Exits when nothing matches.
func resolveClass(client *soli.Client, key string) *owl.OWLClass {
	if c, ok := client.Get(key); ok {
		return c
	}
	if matches := client.GetByLabel(key, false); len(matches) > 0 {
		return matches[0]
	}
	if matches := client.GetByAltLabel(key, false); len(matches) > 0 {
		return matches[0]
	}
	exitOnError(fmt.Errorf("no class found for %q", key))
	return nil
}

// exitOnError prints the error to stderr and exits.
func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// effectiveDepth maps the flag default 0 to the library default so the
// traversal commands are not silently bounded at zero hops.
func effectiveDepth(depth int) int {
	if depth == 0 {
		return graph.DefaultMaxDepth
	}
	return depth
}

// buildTree walks children depth-first from a root IRI, producing the
// class list and a parallel depth slice for indented rendering.
func buildTree(client *soli.Client, iri string, maxDepth int) ([]*owl.OWLClass, []int) {
	var classes []*owl.OWLClass
	var depths []int

	var walk func(iri string, depth, remaining int)
	walk = func(iri string, depth, remaining int) {
		c, ok := client.Get(iri)
		if !ok {
			return
		}
		classes = append(classes, c)
		depths = append(depths, depth)
		if remaining == 1 {
			return
		}
		for _, child := range c.ParentClassOf {
			walk(child, depth+1, remaining-1)
		}
	}

	walk(iri, 0, effectiveDepth(maxDepth))
	return classes, depths
}
