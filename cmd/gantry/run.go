package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/gantry/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <recipe-id>",
	Short: "Run a recipe against an external agent",
	Long: `Starts (or resumes) a recipe run. Each step's prompt is piped to the agent
command's stdin and the reply is read from its stdout; the trailing JSON
outcome in the reply decides the next step.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogDir, _ := cmd.Flags().GetString("catalog")
		session, _ := cmd.Flags().GetString("session")
		resume, _ := cmd.Flags().GetBool("resume")
		agentCmd, _ := cmd.Flags().GetString("agent")
		agentArgs, _ := cmd.Flags().GetStringArray("agent-arg")
		redisAddr, _ := cmd.Flags().GetString("redis")
		metricsAddr, _ := cmd.Flags().GetString("metrics")
		headless, _ := cmd.Flags().GetBool("headless")
		debug, _ := cmd.Flags().GetBool("debug")

		if resume && session == "" {
			return fmt.Errorf("--resume requires --session")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.RunRecipe(ctx, cli.RunOptions{
			CatalogDir:   catalogDir,
			RecipeID:     args[0],
			SessionID:    session,
			Resume:       resume,
			AgentCommand: agentCmd,
			AgentArgs:    agentArgs,
			RedisAddr:    redisAddr,
			MetricsAddr:  metricsAddr,
			Headless:     headless,
			Debug:        debug,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("agent", "claude", "Agent command to invoke for each step")
	runCmd.Flags().StringArray("agent-arg", []string{"-p"}, "Arguments for the agent command (repeatable)")
	runCmd.Flags().String("session", "", "Session ID for persisted run state")
	runCmd.Flags().Bool("resume", false, "Resume a persisted session instead of starting fresh")
	runCmd.Flags().String("redis", "", "Redis address for durable run state (host:port)")
	runCmd.Flags().String("metrics", "", "Expose Prometheus metrics on this address (host:port)")
	runCmd.Flags().Bool("headless", false, "Plain output, no banner or markdown rendering")
	runCmd.Flags().Bool("debug", false, "Enable debug logging")
}
