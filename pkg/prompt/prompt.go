// Package prompt renders the outcome contract a step expects from the agent.
//
// The rendered block tells the agent which outcome tags are accepted and the
// exact JSON envelope to end its reply with, so the extractor on the other
// side of the call has something to find. Both functions are pure.
package prompt

import (
	"fmt"
	"strings"

	"github.com/aretw0/gantry/pkg/domain"
)

// FormatOutcomeBlock renders the instructional snippet for a step's outcome
// contract. Tags are listed in lexical order so the output is deterministic.
func FormatOutcomeBlock(stepName string, expected domain.TagSet) string {
	var b strings.Builder

	b.WriteString("## Required reply format\n\n")
	fmt.Fprintf(&b, "When you finish the %q step, end your reply with a single JSON object on its own line:\n\n", stepName)
	b.WriteString("{\"outcome\": \"<tag>\"}\n\n")
	b.WriteString("Accepted values for \"outcome\":\n")
	for _, tag := range expected.Sorted() {
		fmt.Fprintf(&b, "  - %s\n", tag)
	}
	if expected.Has(domain.TagOther) {
		b.WriteString("\nIf the outcome is \"other\", also include a non-empty \"otherDescription\" field explaining what happened.\n")
	}

	return b.String()
}

// AppendRequirements concatenates the outcome contract block after the
// original prompt. The original prompt is always a strict prefix of the
// result.
func AppendRequirements(original, stepName string, expected domain.TagSet) string {
	return original + "\n\n" + FormatOutcomeBlock(stepName, expected)
}
