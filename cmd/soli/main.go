// Package main provides the soli CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alea-institute/soli-go/internal/config"
	"github.com/alea-institute/soli-go/internal/logging"
)

var (
	version = "0.1.0"

	configPath string
	branch     string
	noCache    bool
	plain      bool
	verbose    bool

	pretty = true
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "soli",
		Short: "SOLI legal ontology client",
		Long: `soli: query the SOLI (Standard for Open Legal Information) ontology.

Fetches the ontology from GitHub (cached locally), parses it into a
class graph, and exposes lookup, traversal, search, and export commands.

Use 'soli lookup <iri-or-label>' to inspect a class.
Use 'soli search <query>' for fuzzy search.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			pretty = !plain && term.IsTerminal(int(os.Stdout.Fd()))
			if verbose {
				logging.SetLevel(logging.LevelDebug)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.soli/config.json)")
	rootCmd.PersistentFlags().StringVar(&branch, "branch", "", "Ontology branch or tag override")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the local document cache")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		lookupCmd(),
		searchCmd(),
		treeCmd(),
		triplesCmd(),
		taxonomyCmd(),
		branchesCmd(),
		refreshCmd(),
		exportCmd(),
		browseCmd(),
		classifyCmd(),
		configCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("soli %s\n", version)
		},
	}
}

func loadConfig() *config.Config {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg := config.LoadOrDefault(path)
	if branch != "" {
		cfg.Branch = branch
	}
	return cfg
}
