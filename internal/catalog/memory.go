// Package catalog provides recipe catalog implementations: an in-memory
// table for tests and embedding hosts, and a YAML loader for catalogs kept
// on disk.
package catalog

import (
	"sort"
	"sync"

	"github.com/aretw0/gantry/pkg/domain"
)

// Memory implements ports.RecipeCatalog over an in-memory table.
// Safe for concurrent reads; Add is meant for startup wiring only.
type Memory struct {
	mu      sync.RWMutex
	recipes map[string]*domain.Recipe
}

// NewMemory creates an empty in-memory catalog.
func NewMemory() *Memory {
	return &Memory{
		recipes: make(map[string]*domain.Recipe),
	}
}

// Add registers a recipe. An existing recipe with the same ID is replaced.
func (m *Memory) Add(recipe *domain.Recipe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recipes[recipe.ID] = recipe
}

// Recipe looks up a definition by ID.
func (m *Memory) Recipe(id string) (*domain.Recipe, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.recipes[id]
	return r, ok
}

// List returns all recipe IDs in lexical order.
func (m *Memory) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.recipes))
	for id := range m.recipes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
