package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gantry",
	Short: "Gantry drives agent workflows through recipe definitions",
	Long: `Gantry walks a recipe (a static graph of steps) by repeatedly prompting
an external text-generating agent and extracting a structured outcome from
each reply to decide the next step.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("catalog", "./recipes", "Directory containing recipe YAML files")
}
