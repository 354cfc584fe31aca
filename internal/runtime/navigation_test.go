package runtime

import (
	"testing"

	"github.com/aretw0/gantry/pkg/domain"
)

func TestFindStep(t *testing.T) {
	recipe := &domain.Recipe{
		ID: "r",
		Steps: []domain.Step{
			{Name: "one"},
			{Name: "two"},
		},
	}

	step, ok := FindStep(recipe, "two")
	if !ok || step.Name != "two" {
		t.Errorf("FindStep(two) = %v, %v", step, ok)
	}

	if _, ok := FindStep(recipe, "three"); ok {
		t.Error("FindStep should report absence for undefined steps")
	}
}

func TestFindTransition(t *testing.T) {
	step := &domain.Step{
		Name: "s",
		Transitions: map[domain.Tag]domain.Transition{
			domain.TagComplete:    {ExitReason: "done"},
			domain.TagIssuesFound: {To: "fix"},
		},
	}

	t.Run("exit transition is present, not absent", func(t *testing.T) {
		tr, ok := FindTransition(step, domain.TagComplete)
		if !ok {
			t.Fatal("an entry mapping to exit must be distinct from no entry")
		}
		if !tr.IsExit() {
			t.Error("transition without target should be an exit")
		}
	})

	t.Run("step transition", func(t *testing.T) {
		tr, ok := FindTransition(step, domain.TagIssuesFound)
		if !ok || tr.To != "fix" {
			t.Errorf("transition = %v, %v", tr, ok)
		}
	})

	t.Run("absent entry", func(t *testing.T) {
		if _, ok := FindTransition(step, domain.TagOther); ok {
			t.Error("expected absence for an unmapped tag")
		}
	})

	t.Run("nil map", func(t *testing.T) {
		if _, ok := FindTransition(&domain.Step{Name: "bare"}, domain.TagComplete); ok {
			t.Error("expected absence on a step without transitions")
		}
	})
}
