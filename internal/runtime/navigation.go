package runtime

import "github.com/aretw0/gantry/pkg/domain"

// FindStep looks up a step by name within a recipe.
// Absence is signalled by the boolean, distinctly from any step content.
func FindStep(recipe *domain.Recipe, name string) (*domain.Step, bool) {
	for i := range recipe.Steps {
		if recipe.Steps[i].Name == name {
			return &recipe.Steps[i], true
		}
	}
	return nil, false
}

// FindTransition looks up the transition for an outcome tag on a step.
// Absence (no entry for the tag) is signalled distinctly from an entry that
// maps to an exit transition.
func FindTransition(step *domain.Step, tag domain.Tag) (domain.Transition, bool) {
	tr, ok := step.Transitions[tag]
	return tr, ok
}
