package ports

import "github.com/aretw0/gantry/pkg/domain"

// RecipeCatalog is the read-only table of recipe definitions.
// The core never constructs or mutates recipes; it only looks them up.
// Implementations must be safe for concurrent reads.
type RecipeCatalog interface {
	// Recipe returns the definition for the given ID.
	// The second return value is false when the ID is unknown; there is no
	// implicit fallback recipe.
	Recipe(id string) (*domain.Recipe, bool)

	// List returns the IDs of all known recipes.
	List() []string
}
