package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/gantry/internal/cli"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the recipe catalog",
	Long: `Loads every recipe in the catalog directory and checks its structure:
defined first steps, transition targets that exist, positive guardrails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogDir, _ := cmd.Flags().GetString("catalog")
		return cli.ValidateCatalog(catalogDir)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
