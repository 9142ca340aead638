package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func branchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List ontology branches available on GitHub",
		Run: func(cmd *cobra.Command, args []string) {
			client := newClient(cmd.Context())
			defer client.Close()

			branches, err := client.Branches(cmd.Context())
			if err != nil {
				exitOnError(err)
			}
			for _, b := range branches {
				fmt.Println(b)
			}
		},
	}
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-download the ontology, bypassing the cache",
		Run: func(cmd *cobra.Command, args []string) {
			client := newClient(cmd.Context())
			defer client.Close()

			if err := client.Refresh(cmd.Context()); err != nil {
				exitOnError(err)
			}
			fmt.Printf("Refreshed: %s\n", client.String())
		},
	}
}
