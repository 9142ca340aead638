package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alea-institute/soli-go/internal/render"
)

func searchCmd() *cobra.Command {
	var (
		limit      int
		altLabels  bool
		definition bool
		prefix     bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search classes by label, prefix, or definition",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client := newClient(cmd.Context())
			defer client.Close()

			r := render.New(pretty)
			query := args[0]

			if prefix {
				classes := client.SearchByPrefix(query)
				if limit > 0 && len(classes) > limit {
					classes = classes[:limit]
				}
				fmt.Print(r.ClassList(classes))
				return
			}

			if definition {
				matches, err := client.SearchByDefinition(query, limit)
				if err != nil {
					exitOnError(err)
				}
				fmt.Print(r.Matches(matches))
				return
			}

			matches, err := client.SearchByLabel(query, altLabels, limit)
			if err != nil {
				exitOnError(err)
			}
			fmt.Print(r.Matches(matches))
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum results")
	cmd.Flags().BoolVarP(&altLabels, "alt-labels", "a", false, "Include alternative labels")
	cmd.Flags().BoolVarP(&definition, "definition", "d", false, "Search definitions instead of labels")
	cmd.Flags().BoolVarP(&prefix, "prefix", "p", false, "Exact prefix search")
	return cmd
}
