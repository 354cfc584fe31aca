package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/gantry"
	httpAdapter "github.com/aretw0/gantry/internal/adapters/http"
	redisAdapter "github.com/aretw0/gantry/internal/adapters/redis"
	"github.com/aretw0/gantry/internal/catalog"
	"github.com/aretw0/gantry/internal/logging"
	"github.com/aretw0/gantry/internal/observability"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the introspection HTTP server",
	Long: `Serves the recipe catalog, persisted run state and Prometheus metrics
over a JSON API. Point it at the same Redis as your run hosts to watch
in-flight recipes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogDir, _ := cmd.Flags().GetString("catalog")
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")

		cat, err := catalog.LoadDir(catalogDir)
		if err != nil {
			return err
		}

		logger := logging.New(slog.LevelInfo)
		opts := []gantry.Option{gantry.WithLogger(logger)}
		if redisAddr != "" {
			opts = append(opts, gantry.WithStore(redisAdapter.New(redisAddr, "", 0)))
		}
		orc := gantry.New(cat, opts...)

		handler := httpAdapter.NewHandler(orc, observability.New(), logger)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)
		go func() {
			fmt.Printf("Starting Gantry server on %s\n", srv.Addr)
			fmt.Printf("Serving catalog from: %s\n", catalogDir)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			fmt.Printf("\nShutdown signal received: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				srv.Close()
				return fmt.Errorf("could not stop server gracefully: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("port", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for shared run state (host:port)")
}
