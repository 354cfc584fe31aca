package cli

import (
	"fmt"

	"github.com/aretw0/gantry/internal/catalog"
)

// ValidateCatalog loads every recipe in the directory and reports what it
// found. Structural problems (undefined transition targets, missing first
// steps, non-positive guardrails) surface as errors from the loader.
func ValidateCatalog(dir string) error {
	cat, err := catalog.LoadDir(dir)
	if err != nil {
		return err
	}

	for _, id := range cat.List() {
		recipe, _ := cat.Recipe(id)
		fmt.Printf("✓ %s (%d steps, guardrail %d)\n", id, len(recipe.Steps), recipe.MaxIterations)
	}
	return nil
}
