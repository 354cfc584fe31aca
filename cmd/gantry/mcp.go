package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/gantry"
	mcpAdapter "github.com/aretw0/gantry/internal/adapters/mcp"
	"github.com/aretw0/gantry/internal/catalog"
	"github.com/aretw0/gantry/internal/logging"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long: `Exposes the catalog and the outcome pipeline as MCP tools so agent
hosts can inspect recipes and dry-run extraction without embedding the
library.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogDir, _ := cmd.Flags().GetString("catalog")

		cat, err := catalog.LoadDir(catalogDir)
		if err != nil {
			return err
		}

		// Stdout carries the MCP protocol; logs must stay on stderr.
		orc := gantry.New(cat, gantry.WithLogger(logging.New(slog.LevelWarn)))

		return mcpAdapter.NewServer(orc).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
