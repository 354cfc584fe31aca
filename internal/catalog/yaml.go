package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/gantry/pkg/domain"
)

// LoadFile reads and validates a single recipe definition from a YAML file.
func LoadFile(path string) (*domain.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe file: %w", err)
	}

	var recipe domain.Recipe
	if err := yaml.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	if err := ValidateRecipe(&recipe); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return &recipe, nil
}

// LoadDir loads every *.yaml / *.yml recipe in a directory into a catalog.
func LoadDir(dir string) (*Memory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog dir: %w", err)
	}

	cat := NewMemory()
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		recipe, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, exists := cat.Recipe(recipe.ID); exists {
			return nil, fmt.Errorf("duplicate recipe id %q (%s)", recipe.ID, entry.Name())
		}
		cat.Add(recipe)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("no recipe files found in %s", dir)
	}
	return cat, nil
}

// ValidateRecipe checks the structural invariants of a recipe definition:
// a non-empty ID, a positive guardrail, a defined first step, transitions
// that only target defined steps, and transition tags drawn from the step's
// own outcome set.
func ValidateRecipe(recipe *domain.Recipe) error {
	if recipe.ID == "" {
		return fmt.Errorf("recipe has no id")
	}
	if recipe.MaxIterations <= 0 {
		return fmt.Errorf("recipe %q: max_iterations must be positive, got %d", recipe.ID, recipe.MaxIterations)
	}
	if len(recipe.Steps) == 0 {
		return fmt.Errorf("recipe %q: has no steps", recipe.ID)
	}

	names := make(map[string]bool, len(recipe.Steps))
	for _, step := range recipe.Steps {
		if step.Name == "" {
			return fmt.Errorf("recipe %q: step with empty name", recipe.ID)
		}
		if names[step.Name] {
			return fmt.Errorf("recipe %q: duplicate step %q", recipe.ID, step.Name)
		}
		names[step.Name] = true
	}

	if recipe.FirstStep == "" {
		return fmt.Errorf("recipe %q: first_step is required", recipe.ID)
	}
	if !names[recipe.FirstStep] {
		return fmt.Errorf("recipe %q: first_step %q is not a defined step", recipe.ID, recipe.FirstStep)
	}

	for _, step := range recipe.Steps {
		if len(step.Outcomes) == 0 {
			return fmt.Errorf("recipe %q: step %q accepts no outcomes", recipe.ID, step.Name)
		}
		accepted := step.ExpectedOutcomes()
		for tag, tr := range step.Transitions {
			if !accepted.Has(tag) {
				return fmt.Errorf("recipe %q: step %q has a transition for %q, which is not an accepted outcome", recipe.ID, step.Name, tag)
			}
			if tr.To != "" && !names[tr.To] {
				return fmt.Errorf("recipe %q: step %q transitions to undefined step %q on %q", recipe.ID, step.Name, tr.To, tag)
			}
		}
	}

	return nil
}
