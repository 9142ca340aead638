package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alea-institute/soli-go/internal/config"
	"github.com/alea-institute/soli-go/internal/export"
)

func exportCmd() *cobra.Command {
	var uri string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Push the ontology to a graph database",
		Long: `Export classes and subclass edges to Neo4j or Memgraph over bolt.

Connection settings come from NEO4J_URI, NEO4J_USER, and NEO4J_PASSWORD;
--uri overrides the address.`,
		Run: func(cmd *cobra.Command, args []string) {
			env := config.GetEnv()
			dbCfg := export.Config{
				URI:      env.Neo4jURI,
				Username: env.Neo4jUser,
				Password: env.Neo4jPassword,
			}
			if uri != "" {
				dbCfg.URI = uri
			}

			driver, err := export.NewBolt(dbCfg)
			if err != nil {
				exitOnError(err)
			}
			defer driver.Close(cmd.Context())

			if err := driver.Ping(cmd.Context()); err != nil {
				exitOnError(fmt.Errorf("database unreachable: %w", err))
			}

			client := newClient(cmd.Context())
			defer client.Close()

			exporter := export.NewExporter(driver)
			if err := exporter.Push(cmd.Context(), client.Snapshot()); err != nil {
				exitOnError(err)
			}

			count, err := exporter.Count(cmd.Context())
			if err != nil {
				exitOnError(err)
			}
			fmt.Printf("Exported %d classes to %s\n", count, dbCfg.URI)
		},
	}
	cmd.Flags().StringVar(&uri, "uri", "", "Bolt URI override")
	return cmd
}
