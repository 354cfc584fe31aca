// Package gantry orchestrates multi-step agent workflows ("recipes").
//
// A recipe is a static graph of steps; each step sends a prompt to an
// external text-generating agent and classifies the reply into an outcome
// tag, which drives the transition to the next step or an exit. Gantry owns
// the deterministic parts — outcome extraction, validation and the step
// transition engine — and leaves the agent call itself behind the
// ports.AgentRunner interface.
//
// The Orchestrator is the high-level entry point wrapping the internal
// runtime. Hosts drive it in a loop:
//
//	run, err := orc.StartRun(ctx, session, "code-review")
//	for {
//	    if done, _ := orc.ShouldExit(run); done { ... }
//	    step, _ := orc.CurrentStep(run)
//	    reply, _ := runner.Invoke(ctx, orc.BuildPrompt(step))
//	    res := orc.ExtractOutcome(reply, step)
//	    action := orc.NextAction(step, res.Outcome)
//	    orc.Advance(ctx, session, run, action)
//	}
package gantry

import (
	"context"
	"log/slog"

	"github.com/aretw0/gantry/internal/adapters/memory"
	"github.com/aretw0/gantry/internal/logging"
	"github.com/aretw0/gantry/internal/runtime"
	"github.com/aretw0/gantry/pkg/domain"
	"github.com/aretw0/gantry/pkg/outcome"
	"github.com/aretw0/gantry/pkg/ports"
	"github.com/aretw0/gantry/pkg/prompt"
)

// Orchestrator is the high-level entry point for the Gantry library.
// It wraps the internal runtime and persists run state through a RunStore.
type Orchestrator struct {
	catalog ports.RecipeCatalog
	store   ports.RunStore
	engine  *runtime.Engine
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Orchestrator.
type Option func(*Orchestrator)

// WithLogger injects a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithStore injects a RunStore, replacing the default in-memory store.
func WithStore(store ports.RunStore) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// New creates an Orchestrator over a read-only recipe catalog.
func New(catalog ports.RecipeCatalog, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog: catalog,
		store:   memory.NewStore(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.engine = runtime.NewEngine(catalog, runtime.WithLogger(o.logger))
	return o
}

// Recipes returns the IDs of all known recipes.
func (o *Orchestrator) Recipes() []string {
	return o.catalog.List()
}

// Recipe resolves a recipe ID. Unknown IDs return domain.ErrUnknownRecipe.
func (o *Orchestrator) Recipe(id string) (*domain.Recipe, error) {
	return o.engine.Recipe(id)
}

// StartRun creates a fresh run for the recipe and persists it under the
// session ID.
func (o *Orchestrator) StartRun(ctx context.Context, sessionID, recipeID string) (*domain.Run, error) {
	run, err := o.engine.Create(recipeID)
	if err != nil {
		return nil, err
	}
	if err := o.store.Save(ctx, sessionID, run); err != nil {
		return nil, err
	}
	return run, nil
}

// ResumeRun loads the persisted run for a session.
// Returns domain.ErrSessionNotFound for unknown sessions.
func (o *Orchestrator) ResumeRun(ctx context.Context, sessionID string) (*domain.Run, error) {
	return o.store.Load(ctx, sessionID)
}

// Sessions lists persisted session IDs.
func (o *Orchestrator) Sessions(ctx context.Context) ([]string, error) {
	return o.store.List(ctx)
}

// EndRun discards the persisted state of a session.
func (o *Orchestrator) EndRun(ctx context.Context, sessionID string) error {
	return o.store.Delete(ctx, sessionID)
}

// CurrentStep resolves the run's current step definition.
func (o *Orchestrator) CurrentStep(run *domain.Run) (*domain.Step, error) {
	return o.engine.CurrentStep(run)
}

// ShouldExit reports whether the run's iteration guardrail has been reached.
// Hosts check this before every cycle, independent of outcome-driven exits.
func (o *Orchestrator) ShouldExit(run *domain.Run) (bool, error) {
	recipe, err := o.engine.Recipe(run.RecipeID)
	if err != nil {
		return false, err
	}
	return o.engine.ShouldExit(run, recipe), nil
}

// BuildPrompt renders the step's full prompt: its instruction text with the
// outcome contract block appended.
func (o *Orchestrator) BuildPrompt(step *domain.Step) string {
	return prompt.AppendRequirements(step.Prompt, step.Name, step.ExpectedOutcomes())
}

// ExtractOutcome turns the agent's raw reply into a validated outcome for
// the step.
func (o *Orchestrator) ExtractOutcome(raw string, step *domain.Step) domain.OutcomeResult {
	return outcome.Extract(raw, step.ExpectedOutcomes())
}

// NextAction computes the transition for a step's outcome.
func (o *Orchestrator) NextAction(step *domain.Step, tag domain.Tag) domain.NextAction {
	return o.engine.DetermineNextAction(step, tag)
}

// Advance applies the action to the run and persists the result.
func (o *Orchestrator) Advance(ctx context.Context, sessionID string, run *domain.Run, action domain.NextAction) error {
	o.engine.Apply(run, action)
	return o.store.Save(ctx, sessionID, run)
}

// MarkExceeded records a guardrail stop and persists it.
func (o *Orchestrator) MarkExceeded(ctx context.Context, sessionID string, run *domain.Run) error {
	recipe, err := o.engine.Recipe(run.RecipeID)
	if err != nil {
		return err
	}
	o.engine.MarkExceeded(run, recipe)
	return o.store.Save(ctx, sessionID, run)
}
