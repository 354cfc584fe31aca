// Package cli implements the host loop and shared wiring for the gantry
// commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/gantry"
	"github.com/aretw0/gantry/internal/adapters/agent"
	"github.com/aretw0/gantry/internal/catalog"
	"github.com/aretw0/gantry/internal/logging"
	"github.com/aretw0/gantry/internal/observability"
	"github.com/aretw0/gantry/internal/presentation/tui"
	"github.com/aretw0/gantry/pkg/domain"
	"github.com/aretw0/gantry/pkg/outcome"
	"github.com/aretw0/gantry/pkg/ports"
)

// RunOptions configures a recipe run driven from the command line.
type RunOptions struct {
	CatalogDir string
	RecipeID   string

	// SessionID keys the persisted run state. Empty generates one.
	SessionID string
	// Resume loads an existing session instead of starting fresh.
	Resume bool

	// AgentCommand and AgentArgs form the external agent command line.
	AgentCommand string
	AgentArgs    []string

	// Runner overrides the process runner; used by tests and embedders.
	Runner ports.AgentRunner

	// RedisAddr switches run persistence to Redis when non-empty.
	RedisAddr string

	// MetricsAddr exposes Prometheus metrics on this address when non-empty.
	MetricsAddr string

	Headless bool
	Debug    bool
}

// RunRecipe executes the host loop for one recipe run: guardrail check,
// prompt, agent call, outcome extraction, transition — until the run
// terminates. Extraction failures terminate the run; re-prompting policies
// belong to outer tooling.
func RunRecipe(ctx context.Context, opts RunOptions) error {
	logger := newLogger(opts.Debug)

	cat, err := catalog.LoadDir(opts.CatalogDir)
	if err != nil {
		return err
	}

	store, locker, err := newStore(opts)
	if err != nil {
		return err
	}

	orc := gantry.New(cat, gantry.WithLogger(logger), gantry.WithStore(store))

	runner := opts.Runner
	if runner == nil {
		runner = agent.NewProcess(opts.AgentCommand, opts.AgentArgs)
	}

	metrics := observability.New()
	if opts.MetricsAddr != "" {
		go serveMetrics(opts.MetricsAddr, metrics, logger)
	}

	interactive := !opts.Headless && isTerminal()
	render := newReplyRenderer(interactive)
	if interactive {
		tui.PrintBanner()
	}

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = fmt.Sprintf("%s-%d", opts.RecipeID, time.Now().Unix())
	}

	if locker != nil {
		unlock, err := locker.Lock(ctx, sessionID, 30*time.Minute)
		if err != nil {
			return fmt.Errorf("session %q is locked by another host: %w", sessionID, err)
		}
		defer unlock(context.Background())
	}

	var run *domain.Run
	if opts.Resume {
		run, err = orc.ResumeRun(ctx, sessionID)
	} else {
		run, err = orc.StartRun(ctx, sessionID, opts.RecipeID)
	}
	if err != nil {
		return err
	}
	logger.Info("run started", "recipe", run.RecipeID, "session", sessionID, "step", run.CurrentStep)

	for !run.Terminal() {
		if err := ctx.Err(); err != nil {
			return err
		}

		exceeded, err := orc.ShouldExit(run)
		if err != nil {
			return err
		}
		if exceeded {
			if err := orc.MarkExceeded(ctx, sessionID, run); err != nil {
				return err
			}
			metrics.RunsFinished.WithLabelValues(run.RecipeID, "guardrail").Inc()
			break
		}

		step, err := orc.CurrentStep(run)
		if err != nil {
			return err
		}
		logger.Info("executing step", "step", step.Name, "iteration", run.IterationCount)

		reply, err := runner.Invoke(ctx, orc.BuildPrompt(step))
		if err != nil {
			metrics.RunsFinished.WithLabelValues(run.RecipeID, "agent-error").Inc()
			return fmt.Errorf("agent invocation on step %q: %w", step.Name, err)
		}
		render(reply)

		res := orc.ExtractOutcome(reply, step)
		if !res.Success {
			metrics.ExtractionFailures.WithLabelValues(run.RecipeID, outcome.FailureKind(res)).Inc()
			metrics.RunsFinished.WithLabelValues(run.RecipeID, "extraction-error").Inc()
			if res.MalformedJSON != "" {
				logger.Error("agent reply rejected", "step", step.Name, "error", res.Error, "malformed_json", res.MalformedJSON)
			} else {
				logger.Error("agent reply rejected", "step", step.Name, "error", res.Error)
			}
			return fmt.Errorf("step %q: %s", step.Name, res.Error)
		}
		logger.Info("outcome extracted", "step", step.Name, "outcome", res.Outcome)

		action := orc.NextAction(step, res.Outcome)
		if err := orc.Advance(ctx, sessionID, run, action); err != nil {
			return err
		}
		metrics.StepsTotal.WithLabelValues(run.RecipeID).Inc()
	}

	if run.Status == domain.StatusExited {
		metrics.RunsFinished.WithLabelValues(run.RecipeID, "exit").Inc()
	}

	logger.Info("run finished", "status", run.Status, "reason", run.ExitReason, "iterations", run.IterationCount)
	fmt.Printf("Run finished (%s): %s\n", run.Status, run.ExitReason)
	return nil
}

func newLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelInfo)
}

func serveMetrics(addr string, metrics *observability.Metrics, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", "error", err)
	}
}
