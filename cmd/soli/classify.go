package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alea-institute/soli-go/internal/render"
	"github.com/alea-institute/soli-go/internal/search"
)

func classifyCmd() *cobra.Command {
	var (
		branchName string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Classify text against a taxonomy branch with an LLM",
		Long: `Classify text onto ontology classes. Reads from stdin when no
argument is given. Requires ANTHROPIC_API_KEY.

  soli classify --type "Area of Law" "Dispute over a commercial lease"
  cat matter.txt | soli classify --type "Area of Law"`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			text := ""
			if len(args) > 0 {
				text = args[0]
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					exitOnError(err)
				}
				text = string(data)
			}
			if strings.TrimSpace(text) == "" {
				exitOnError(fmt.Errorf("no text to classify"))
			}

			t, ok := matchType(branchName)
			if !ok {
				exitOnError(fmt.Errorf("unknown taxonomy branch %q", branchName))
			}

			client := newClient(cmd.Context())
			defer client.Close()

			results, err := client.Classify(cmd.Context(), text, t, limit)
			if err != nil {
				exitOnError(err)
			}

			matches := make([]search.Match, 0, len(results))
			for _, res := range results {
				matches = append(matches, search.Match{Class: res.Class, Score: float64(100 - (res.Rank-1)*10)})
			}
			fmt.Print(render.New(pretty).Matches(matches))
		},
	}
	cmd.Flags().StringVarP(&branchName, "type", "t", "Area of Law", "Taxonomy branch to classify against")
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "Maximum results")
	return cmd
}
