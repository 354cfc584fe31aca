package domain

import "time"

// RunStatus defines the current mode of a recipe run.
type RunStatus string

const (
	// StatusRunning means the run has a current step and is below the guardrail.
	StatusRunning RunStatus = "running"

	// StatusExceeded means the iteration count reached the recipe's limit.
	// This is a normal termination condition, not a fault.
	StatusExceeded RunStatus = "exceeded-guardrail"

	// StatusExited means a step's outcome produced a terminal exit action.
	StatusExited RunStatus = "exited"
)

// Run is the mutable state of one in-flight recipe invocation.
// A Run is exclusively owned by a single host loop; concurrent runs each
// hold their own instance and share only the read-only Recipe.
type Run struct {
	RecipeID string `json:"recipe_id"`

	// CurrentStep names the step the next cycle will execute.
	CurrentStep string `json:"current_step"`

	// IterationCount starts at 1 and increments once per completed step cycle.
	IterationCount int `json:"iteration_count"`

	// StartTime is the wall-clock timestamp of run creation.
	StartTime time.Time `json:"start_time"`

	Status RunStatus `json:"status"`

	// ExitReason records why the run terminated, once Status is terminal.
	ExitReason string `json:"exit_reason,omitempty"`

	// History tracks the steps taken, for debugging and introspection.
	History []string `json:"history,omitempty"`
}

// NewRun creates a fresh run positioned at the recipe's first step.
func NewRun(recipeID, firstStep string) *Run {
	return &Run{
		RecipeID:       recipeID,
		CurrentStep:    firstStep,
		IterationCount: 1,
		StartTime:      time.Now(),
		Status:         StatusRunning,
		History:        []string{firstStep},
	}
}

// Terminal reports whether the run has stopped.
func (r *Run) Terminal() bool {
	return r.Status == StatusExited || r.Status == StatusExceeded
}

// Clone returns a deep copy, so stores and callers cannot alias History.
func (r *Run) Clone() *Run {
	cp := *r
	cp.History = append([]string(nil), r.History...)
	return &cp
}
