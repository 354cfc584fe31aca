package dsl

import "github.com/aretw0/gantry/pkg/domain"

// StepBuilder provides a fluent API for configuring a step.
type StepBuilder struct {
	step    domain.Step
	builder *Builder
}

// Prompt sets the instruction text sent to the agent for this step.
func (s *StepBuilder) Prompt(text string) *StepBuilder {
	s.step.Prompt = text
	return s
}

// Outcome declares a tag the agent may report without binding a transition
// to it. Reporting it ends the run, since an unmapped tag falls through to
// an exit action.
func (s *StepBuilder) Outcome(tag domain.Tag) *StepBuilder {
	s.addOutcome(tag)
	return s
}

// On maps an outcome tag to the target step, declaring the tag as accepted.
func (s *StepBuilder) On(tag domain.Tag, target string) *StepBuilder {
	s.addOutcome(tag)
	s.step.Transitions[tag] = domain.Transition{To: target}
	return s
}

// Exit maps an outcome tag to recipe termination with the given reason.
func (s *StepBuilder) Exit(tag domain.Tag, reason string) *StepBuilder {
	s.addOutcome(tag)
	s.step.Transitions[tag] = domain.Transition{ExitReason: reason}
	return s
}

// Step starts configuring another step on the parent builder, allowing
// chained definitions.
func (s *StepBuilder) Step(name string) *StepBuilder {
	return s.builder.Step(name)
}

// Build returns the underlying domain.Step. This is primarily used by the
// Builder, but exposed for advanced usage.
func (s *StepBuilder) Build() domain.Step {
	return s.step
}

func (s *StepBuilder) addOutcome(tag domain.Tag) {
	for _, t := range s.step.Outcomes {
		if t == tag {
			return
		}
	}
	s.step.Outcomes = append(s.step.Outcomes, tag)
}
