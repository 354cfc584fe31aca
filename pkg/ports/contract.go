package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/gantry/pkg/domain"
)

// RunStoreContract is a reusable test suite that verifies an adapter
// complies with the RunStore port. Adapter tests call it with a fresh,
// empty store.
func RunStoreContract(t *testing.T, store RunStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-session")
		if !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Save_Load_Roundtrip", func(t *testing.T) {
		run := domain.NewRun("code-review", "review")
		run.IterationCount = 3
		run.History = append(run.History, "fix")

		if err := store.Save(ctx, "s1", run); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		loaded, err := store.Load(ctx, "s1")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.RecipeID != "code-review" {
			t.Errorf("recipe ID = %q, want %q", loaded.RecipeID, "code-review")
		}
		if loaded.CurrentStep != "review" {
			t.Errorf("current step = %q, want %q", loaded.CurrentStep, "review")
		}
		if loaded.IterationCount != 3 {
			t.Errorf("iteration count = %d, want 3", loaded.IterationCount)
		}
		if len(loaded.History) != 2 {
			t.Errorf("history length = %d, want 2", len(loaded.History))
		}
		if loaded.StartTime.IsZero() {
			t.Error("start time should survive the roundtrip")
		}
	})

	t.Run("Save_Isolates_Caller_Mutation", func(t *testing.T) {
		run := domain.NewRun("code-review", "review")
		if err := store.Save(ctx, "s2", run); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		// Mutating the caller's copy must not leak into the store.
		run.CurrentStep = "mutated"
		run.History = append(run.History, "mutated")

		loaded, err := store.Load(ctx, "s2")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.CurrentStep != "review" {
			t.Errorf("store state leaked caller mutation: step = %q", loaded.CurrentStep)
		}
	})

	t.Run("List", func(t *testing.T) {
		sessions, err := store.List(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		found := map[string]bool{}
		for _, id := range sessions {
			found[id] = true
		}
		if !found["s1"] || !found["s2"] {
			t.Errorf("list = %v, want it to include s1 and s2", sessions)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Delete(ctx, "s1"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		_, err := store.Load(ctx, "s1")
		if !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
		}
	})
}
