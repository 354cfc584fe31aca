package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/gantry/internal/catalog"
	"github.com/aretw0/gantry/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <recipe-id>",
	Short: "Export a recipe as a Mermaid diagram",
	Long:  `Outputs a Mermaid flowchart (graph TD) of the recipe's steps, outcome transitions and exits.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalogDir, _ := cmd.Flags().GetString("catalog")

		cat, err := catalog.LoadDir(catalogDir)
		if err != nil {
			fmt.Printf("Error loading catalog: %v\n", err)
			os.Exit(1)
		}

		recipe, ok := cat.Recipe(args[0])
		if !ok {
			fmt.Printf("Unknown recipe %q\n", args[0])
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(recipe, nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
