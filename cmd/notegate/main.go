// Package main is the entrypoint for the notegate CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/notegate/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "notegate",
		Short: "Metadata gateway for markdown notes",
		Long:  "notegate — extracts and normalizes note metadata (frontmatter, Spotlight, filesystem) before handing notes to a note-creation sink.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(processCmd())
	root.AddCommand(watchCmd())
	root.AddCommand(configCmd())
	root.AddCommand(versionCmd())

	root.PersistentFlags().StringVar(&config.Override, "config", "", "Config file path (overrides NOTEGATE_CONFIG)")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the notegate version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("notegate %s\n", Version)
			return nil
		},
	}
}
