package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alea-institute/soli-go/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				exitOnError(err)
			}
			fmt.Println(string(data))
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Run: func(cmd *cobra.Command, args []string) {
			path := configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil {
				exitOnError(fmt.Errorf("config already exists at %s", path))
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				exitOnError(err)
			}
			data, err := json.MarshalIndent(map[string]any{"soli": config.Default()}, "", "  ")
			if err != nil {
				exitOnError(err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				exitOnError(err)
			}
			fmt.Printf("Wrote %s\n", path)
		},
	}

	cmd.AddCommand(showCmd, initCmd)
	return cmd
}
