package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/gantry/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the recipes in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogDir, _ := cmd.Flags().GetString("catalog")

		cat, err := catalog.LoadDir(catalogDir)
		if err != nil {
			return err
		}

		for _, id := range cat.List() {
			recipe, ok := cat.Recipe(id)
			if !ok {
				continue
			}
			fmt.Printf("%s\t(%d steps, starts at %q)\n", recipe.ID, len(recipe.Steps), recipe.FirstStep)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
