package dsl

import (
	"fmt"

	"github.com/aretw0/gantry/internal/catalog"
	"github.com/aretw0/gantry/pkg/domain"
)

// Builder manages recipe construction.
type Builder struct {
	id            string
	firstStep     string
	maxIterations int
	order         []string
	steps         map[string]*StepBuilder
}

// NewRecipe creates a builder for a recipe with the given ID.
func NewRecipe(id string) *Builder {
	return &Builder{
		id:    id,
		steps: make(map[string]*StepBuilder),
	}
}

// Start names the step a fresh run begins on. Defaults to the first step
// added.
func (b *Builder) Start(name string) *Builder {
	b.firstStep = name
	return b
}

// MaxIterations sets the iteration guardrail.
func (b *Builder) MaxIterations(n int) *Builder {
	b.maxIterations = n
	return b
}

// Step creates a step in the recipe. If the step already exists, it returns
// the existing builder.
func (b *Builder) Step(name string) *StepBuilder {
	if sb, ok := b.steps[name]; ok {
		return sb
	}
	sb := &StepBuilder{
		step: domain.Step{
			Name:        name,
			Transitions: make(map[domain.Tag]domain.Transition),
		},
		builder: b,
	}
	b.order = append(b.order, name)
	b.steps[name] = sb
	return sb
}

// Build compiles and validates the recipe.
func (b *Builder) Build() (*domain.Recipe, error) {
	recipe := &domain.Recipe{
		ID:            b.id,
		FirstStep:     b.firstStep,
		MaxIterations: b.maxIterations,
	}
	if recipe.FirstStep == "" && len(b.order) > 0 {
		recipe.FirstStep = b.order[0]
	}
	if recipe.MaxIterations == 0 {
		recipe.MaxIterations = domain.DefaultMaxIterations
	}

	for _, name := range b.order {
		recipe.Steps = append(recipe.Steps, b.steps[name].step)
	}

	if err := catalog.ValidateRecipe(recipe); err != nil {
		return nil, fmt.Errorf("invalid recipe %q: %w", b.id, err)
	}
	return recipe, nil
}
