package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alea-institute/soli-go/internal/render"
)

func lookupCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "lookup [iri-or-label]",
		Short: "Show a single ontology class",
		Long: `Look up a class by IRI, label, or alternative label.

IRIs are accepted in full form, as soli:/lmss: prefixed forms, or as a
bare identifier. Output format defaults to a terminal summary; use
--format for markdown, json, jsonld, or owl.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client := newClient(cmd.Context())
			defer client.Close()

			class := resolveClass(client, args[0])

			switch format {
			case "", "text":
				fmt.Print(render.New(pretty).Class(class))
			case "markdown", "md":
				fmt.Print(render.ToMarkdown(class))
			case "json":
				out, err := render.ToJSON(class)
				if err != nil {
					exitOnError(err)
				}
				fmt.Println(out)
			case "jsonld":
				out, err := render.ToJSONLDString(class)
				if err != nil {
					exitOnError(err)
				}
				fmt.Println(out)
			case "owl", "xml":
				fmt.Print(render.ToOWLXML(class))
			default:
				exitOnError(fmt.Errorf("unknown format %q", format))
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json, jsonld, owl")
	return cmd
}
