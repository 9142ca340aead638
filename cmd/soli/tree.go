package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alea-institute/soli-go/internal/render"
)

func treeCmd() *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Hierarchy traversal commands",
	}

	parentsCmd := &cobra.Command{
		Use:   "parents [iri-or-label]",
		Short: "Show ancestor classes up to the root",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client := newClient(cmd.Context())
			defer client.Close()

			class := resolveClass(client, args[0])
			parents := client.GetParents(class.IRI, effectiveDepth(depth))
			fmt.Print(render.New(pretty).ClassList(parents))
		},
	}

	childrenCmd := &cobra.Command{
		Use:   "children [iri-or-label]",
		Short: "Show descendant classes",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client := newClient(cmd.Context())
			defer client.Close()

			class := resolveClass(client, args[0])
			children := client.GetChildren(class.IRI, effectiveDepth(depth))
			fmt.Print(render.New(pretty).ClassList(children))
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [iri-or-label]",
		Short: "Show the subtree rooted at a class",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client := newClient(cmd.Context())
			defer client.Close()

			class := resolveClass(client, args[0])
			classes, depths := buildTree(client, class.IRI, depth)
			fmt.Print(render.New(pretty).Tree(classes, depths))
		},
	}

	cmd.PersistentFlags().IntVarP(&depth, "depth", "d", 0, "Maximum traversal depth (0 = default)")
	cmd.AddCommand(parentsCmd, childrenCmd, showCmd)
	return cmd
}
