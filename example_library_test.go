package gantry_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/gantry"
	"github.com/aretw0/gantry/internal/adapters/agent"
	"github.com/aretw0/gantry/internal/catalog"
	"github.com/aretw0/gantry/pkg/domain"
	"github.com/aretw0/gantry/pkg/dsl"
)

// ExampleNew_library demonstrates how to use Gantry purely as a Go library,
// injecting an in-memory catalog without reading YAML from disk.
func ExampleNew_library() {
	// 1. Define the recipe using the fluent builder
	b := dsl.NewRecipe("code-review").Start("review")
	b.Step("review").
		Prompt("Review the pending changes.").
		On(domain.TagIssuesFound, "fix-issues").
		Exit(domain.TagComplete, "review passed")
	b.Step("fix-issues").
		Prompt("Fix the issues found.").
		On(domain.TagComplete, "review")

	recipe, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	cat := catalog.NewMemory()
	cat.Add(recipe)

	// 2. Initialize the orchestrator with a scripted agent
	orc := gantry.New(cat)
	runner := agent.NewMock(
		`{"outcome": "issues-found"}`,
		`{"outcome": "complete"}`,
		`{"outcome": "complete"}`,
	)

	// 3. Drive the host loop
	ctx := context.Background()
	run, err := orc.StartRun(ctx, "s1", "code-review")
	if err != nil {
		log.Fatal(err)
	}

	for !run.Terminal() {
		if exceeded, _ := orc.ShouldExit(run); exceeded {
			orc.MarkExceeded(ctx, "s1", run)
			break
		}

		step, err := orc.CurrentStep(run)
		if err != nil {
			log.Fatal(err)
		}

		reply, err := runner.Invoke(ctx, orc.BuildPrompt(step))
		if err != nil {
			log.Fatal(err)
		}

		res := orc.ExtractOutcome(reply, step)
		if !res.Success {
			log.Fatalf("reply rejected: %s", res.Error)
		}
		fmt.Printf("%s -> %s\n", step.Name, res.Outcome)

		orc.Advance(ctx, "s1", run, orc.NextAction(step, res.Outcome))
	}

	fmt.Println(run.ExitReason)
	// Output:
	// review -> issues-found
	// fix-issues -> complete
	// review -> complete
	// review passed
}
