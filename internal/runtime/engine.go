// Package runtime implements the orchestration state machine.
//
// The engine owns no mutable state of its own: it consults the read-only
// recipe catalog and operates on the caller's Run, so any number of runs can
// share one engine.
package runtime

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/gantry/internal/logging"
	"github.com/aretw0/gantry/pkg/domain"
	"github.com/aretw0/gantry/pkg/ports"
)

// Engine is the core state machine runner for recipe runs.
type Engine struct {
	catalog ports.RecipeCatalog
	logger  *slog.Logger
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger injects a structured logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates an engine bound to a recipe catalog.
func NewEngine(catalog ports.RecipeCatalog, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog: catalog,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recipe resolves a recipe ID against the catalog.
func (e *Engine) Recipe(id string) (*domain.Recipe, error) {
	recipe, ok := e.catalog.Recipe(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRecipe, id)
	}
	return recipe, nil
}

// Create starts a fresh run for the given recipe.
// Unknown recipe IDs return domain.ErrUnknownRecipe; the caller must check,
// there is no implicit fallback. A recipe whose first step is undefined is a
// malformed definition and returns domain.ErrUnknownStep.
func (e *Engine) Create(recipeID string) (*domain.Run, error) {
	recipe, err := e.Recipe(recipeID)
	if err != nil {
		return nil, err
	}
	if _, ok := FindStep(recipe, recipe.FirstStep); !ok {
		return nil, fmt.Errorf("%w: recipe %q names first step %q", domain.ErrUnknownStep, recipeID, recipe.FirstStep)
	}

	run := domain.NewRun(recipeID, recipe.FirstStep)
	e.logger.Debug("run created", "recipe", recipeID, "step", run.CurrentStep)
	return run, nil
}

// CurrentStep resolves the run's current step definition.
// A run pointing at an undefined step means the recipe definition is
// malformed; that is a fatal orchestration error for the run.
func (e *Engine) CurrentStep(run *domain.Run) (*domain.Step, error) {
	recipe, err := e.Recipe(run.RecipeID)
	if err != nil {
		return nil, err
	}
	step, ok := FindStep(recipe, run.CurrentStep)
	if !ok {
		return nil, fmt.Errorf("%w: %q in recipe %q", domain.ErrUnknownStep, run.CurrentStep, run.RecipeID)
	}
	return step, nil
}

// ShouldExit reports whether the iteration guardrail has been reached.
// The boundary is inclusive: a count exactly at the limit is exceeded.
// Hosts check this proactively before each cycle; it is a normal termination
// condition, not an error.
func (e *Engine) ShouldExit(run *domain.Run, recipe *domain.Recipe) bool {
	return run.IterationCount >= recipe.MaxIterations
}

// DetermineNextAction computes the next action from a step's outcome.
// A transition to a named step advances; an explicit exit transition or an
// outcome with no transition terminates. The exit reason distinguishes the
// two and, for the unmatched case, names the tag.
func (e *Engine) DetermineNextAction(step *domain.Step, tag domain.Tag) domain.NextAction {
	tr, ok := FindTransition(step, tag)
	if !ok {
		return domain.Exit(fmt.Sprintf("no transition defined for outcome %q on step %q", tag, step.Name))
	}

	if tr.IsExit() {
		reason := tr.ExitReason
		if reason == "" {
			reason = fmt.Sprintf("recipe completed via exit transition on step %q", step.Name)
		}
		return domain.Exit(reason)
	}

	return domain.NextStep(tr.To)
}

// Apply mutates the run according to the action: advancing sets the current
// step and counts the completed cycle, exiting marks the run terminal.
func (e *Engine) Apply(run *domain.Run, action domain.NextAction) {
	if action.IsExit() {
		run.Status = domain.StatusExited
		run.ExitReason = action.Reason
		e.logger.Debug("run exited", "recipe", run.RecipeID, "reason", action.Reason)
		return
	}

	run.CurrentStep = action.StepName
	run.IterationCount++
	run.History = append(run.History, action.StepName)
	e.logger.Debug("run advanced", "recipe", run.RecipeID, "step", action.StepName, "iteration", run.IterationCount)
}

// MarkExceeded records that the guardrail stopped the run.
func (e *Engine) MarkExceeded(run *domain.Run, recipe *domain.Recipe) {
	run.Status = domain.StatusExceeded
	run.ExitReason = fmt.Sprintf("iteration guardrail reached (%d of %d)", run.IterationCount, recipe.MaxIterations)
	e.logger.Debug("run exceeded guardrail", "recipe", run.RecipeID, "iterations", run.IterationCount)
}
