package domain

// DefaultMaxIterations is the guardrail applied when a recipe does not set
// one explicitly.
const DefaultMaxIterations = 10

// Recipe is a static, named workflow definition.
// Recipes are loaded once at startup and treated as read-only; a single
// Recipe may be shared by any number of concurrent runs without locking.
type Recipe struct {
	ID string `json:"id" yaml:"id"`

	// FirstStep names the step a fresh run starts on.
	FirstStep string `json:"first_step" yaml:"first_step"`

	// MaxIterations is the guardrail preventing infinite looping.
	// A run whose iteration count reaches this value must stop.
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`

	Steps []Step `json:"steps" yaml:"steps"`
}

// Step represents one stage of a recipe.
type Step struct {
	Name string `json:"name" yaml:"name"`

	// Prompt is the instruction text sent to the agent for this step.
	// The outcome contract block is appended to it by the host.
	Prompt string `json:"prompt" yaml:"prompt"`

	// Outcomes is the set of tags the agent is allowed to report.
	Outcomes []Tag `json:"outcomes" yaml:"outcomes"`

	// Transitions maps an outcome tag to what happens next.
	// A tag with no entry here falls through to an exit action.
	Transitions map[Tag]Transition `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// ExpectedOutcomes returns the step's accepted tags as a set.
func (s *Step) ExpectedOutcomes() TagSet {
	return NewTagSet(s.Outcomes...)
}

// Transition defines a rule to move from one step to another.
type Transition struct {
	// To is the target step name. Empty means "exit the recipe".
	To string `json:"to,omitempty" yaml:"to,omitempty"`

	// ExitReason is the human-readable reason reported when To is empty.
	ExitReason string `json:"exit_reason,omitempty" yaml:"exit_reason,omitempty"`
}

// IsExit reports whether the transition terminates the recipe.
func (t Transition) IsExit() bool {
	return t.To == ""
}
