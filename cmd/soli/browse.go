package main

import (
	"github.com/spf13/cobra"

	"github.com/alea-institute/soli-go/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the ontology interactively",
		Run: func(cmd *cobra.Command, args []string) {
			client := newClient(cmd.Context())
			defer client.Close()

			if err := tui.Run(client.Snapshot()); err != nil {
				exitOnError(err)
			}
		},
	}
}
