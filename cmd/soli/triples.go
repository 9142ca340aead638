package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alea-institute/soli-go/internal/owl"
	"github.com/alea-institute/soli-go/internal/render"
)

func triplesCmd() *cobra.Command {
	var (
		subject   string
		predicate string
		object    string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "triples",
		Short: "Query RDF triples",
		Long: `List triples filtered by subject, predicate, or object.

Exactly one filter flag must be set. Subject and object values accept
the same IRI forms as lookup.`,
		Run: func(cmd *cobra.Command, args []string) {
			set := 0
			for _, v := range []string{subject, predicate, object} {
				if v != "" {
					set++
				}
			}
			if set != 1 {
				exitOnError(fmt.Errorf("set exactly one of --subject, --predicate, --object"))
			}

			client := newClient(cmd.Context())
			defer client.Close()

			var triples []owl.Triple
			switch {
			case subject != "":
				triples = client.TriplesBySubject(subject)
			case predicate != "":
				triples = client.TriplesByPredicate(predicate)
			default:
				triples = client.TriplesByObject(object)
			}

			if limit > 0 && len(triples) > limit {
				triples = triples[:limit]
			}
			fmt.Print(render.New(pretty).Triples(triples))
		},
	}
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Filter by subject IRI")
	cmd.Flags().StringVarP(&predicate, "predicate", "p", "", "Filter by predicate IRI")
	cmd.Flags().StringVarP(&object, "object", "o", "", "Filter by object value")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum results (0 = all)")
	return cmd
}
