package dsl_test

import (
	"testing"

	"github.com/aretw0/gantry/pkg/domain"
	"github.com/aretw0/gantry/pkg/dsl"
)

func TestBuilder_Build(t *testing.T) {
	b := dsl.NewRecipe("code-review").
		Start("review").
		MaxIterations(5)

	b.Step("review").
		Prompt("Review the pending changes.").
		On(domain.TagIssuesFound, "fix-issues").
		Exit(domain.TagComplete, "review passed")

	b.Step("fix-issues").
		Prompt("Fix the issues found.").
		On(domain.TagComplete, "review")

	recipe, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if recipe.ID != "code-review" {
		t.Errorf("ID = %q, want code-review", recipe.ID)
	}
	if recipe.FirstStep != "review" {
		t.Errorf("FirstStep = %q, want review", recipe.FirstStep)
	}
	if recipe.MaxIterations != 5 {
		t.Errorf("MaxIterations = %d, want 5", recipe.MaxIterations)
	}
	if len(recipe.Steps) != 2 {
		t.Fatalf("Steps = %d, want 2", len(recipe.Steps))
	}

	review := recipe.Steps[0]
	if review.Name != "review" {
		t.Errorf("first step = %q, want review (insertion order)", review.Name)
	}
	if !review.ExpectedOutcomes().Has(domain.TagIssuesFound) {
		t.Error("On() did not declare issues-found as an accepted outcome")
	}
	if tr := review.Transitions[domain.TagComplete]; !tr.IsExit() || tr.ExitReason != "review passed" {
		t.Errorf("Exit() transition = %+v", tr)
	}
	if tr := review.Transitions[domain.TagIssuesFound]; tr.To != "fix-issues" {
		t.Errorf("On() transition = %+v", tr)
	}
}

func TestBuilder_Defaults(t *testing.T) {
	b := dsl.NewRecipe("minimal")
	b.Step("only").Prompt("Do the thing.").Exit(domain.TagComplete, "done")

	recipe, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if recipe.FirstStep != "only" {
		t.Errorf("FirstStep = %q, want first added step", recipe.FirstStep)
	}
	if recipe.MaxIterations != domain.DefaultMaxIterations {
		t.Errorf("MaxIterations = %d, want default %d", recipe.MaxIterations, domain.DefaultMaxIterations)
	}
}

func TestBuilder_OutcomeWithoutTransition(t *testing.T) {
	b := dsl.NewRecipe("r")
	b.Step("s").Prompt("p").
		Outcome(domain.TagOther).
		Exit(domain.TagComplete, "done")

	recipe, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	step := recipe.Steps[0]
	if !step.ExpectedOutcomes().Has(domain.TagOther) {
		t.Error("Outcome() did not declare the tag")
	}
	if _, ok := step.Transitions[domain.TagOther]; ok {
		t.Error("Outcome() must not bind a transition")
	}
}

func TestBuilder_InvalidRecipe(t *testing.T) {
	tests := []struct {
		name  string
		build func() *dsl.Builder
	}{
		{
			name: "transition to undefined step",
			build: func() *dsl.Builder {
				b := dsl.NewRecipe("r")
				b.Step("s").Prompt("p").On(domain.TagComplete, "ghost")
				return b
			},
		},
		{
			name: "no steps",
			build: func() *dsl.Builder {
				return dsl.NewRecipe("r")
			},
		},
		{
			name: "unknown start step",
			build: func() *dsl.Builder {
				b := dsl.NewRecipe("r").Start("ghost")
				b.Step("s").Prompt("p").Exit(domain.TagComplete, "done")
				return b
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.build().Build(); err == nil {
				t.Error("Build succeeded, want error")
			}
		})
	}
}

func TestBuilder_StepReturnsExisting(t *testing.T) {
	b := dsl.NewRecipe("r")
	first := b.Step("s")
	second := b.Step("s")
	if first != second {
		t.Error("Step() created a duplicate builder for the same name")
	}
}
