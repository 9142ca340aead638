package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alea-institute/soli-go/internal/render"
	"github.com/alea-institute/soli-go/pkg/soli"
)

func taxonomyCmd() *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Taxonomy branch commands",
	}

	typesCmd := &cobra.Command{
		Use:   "types",
		Short: "List the top-level taxonomy branches",
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range soli.AllTypes() {
				fmt.Printf("%s\t%s\n", t, soli.TypeIRI(t))
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [branch]",
		Short: "List classes in one taxonomy branch",
		Long: `List all classes under a branch root, e.g.:

  soli taxonomy list "Area of Law"
  soli taxonomy list currency`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			t, ok := matchType(args[0])
			if !ok {
				exitOnError(fmt.Errorf("unknown taxonomy branch %q", args[0]))
			}

			client := newClient(cmd.Context())
			defer client.Close()

			classes := client.GetByType(t, effectiveDepth(depth))
			fmt.Print(render.New(pretty).ClassList(classes))
		},
	}
	listCmd.Flags().IntVarP(&depth, "depth", "d", 0, "Maximum traversal depth (0 = default)")

	cmd.AddCommand(typesCmd, listCmd)
	return cmd
}

// matchType resolves a user-supplied branch name case-insensitively.
func matchType(name string) (soli.SOLIType, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, t := range soli.AllTypes() {
		if strings.ToLower(string(t)) == want {
			return t, true
		}
	}
	return "", false
}
