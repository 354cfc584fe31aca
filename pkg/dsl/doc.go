/*
Package dsl provides a fluent Go builder for constructing recipes
programmatically, instead of loading them from YAML files. This is useful
for dynamic recipe generation, unit testing, and leveraging IDE
autocompletion and type-checking.

Example usage:

	b := dsl.NewRecipe("code-review").
		Start("review").
		MaxIterations(10)

	b.Step("review").
		Prompt("Review the pending changes.").
		On("issues-found", "fix-issues").
		Exit("complete", "review passed")

	b.Step("fix-issues").
		Prompt("Fix the issues found in the previous review.").
		On("complete", "review")

	recipe, err := b.Build()
	// ... register recipe in a catalog and pass it to gantry.New(...)
*/
package dsl
