package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/gantry/pkg/domain"
)

// Overlay contains dynamic run state to visualize on the graph.
type Overlay struct {
	VisitedSteps []string
	CurrentStep  string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a recipe.
// The first step is drawn as a circle, ordinary steps as rectangles, and
// exit transitions flow into stadium-shaped terminal nodes labeled with
// their exit reason. Overlay styles (visited/current) are applied when a
// run overlay is provided.
func GenerateMermaid(recipe *domain.Recipe, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	exitSeq := 0
	for _, step := range recipe.Steps {
		safeID := sanitizeMermaidID(step.Name)

		opener, closer := "[", "]"
		if step.Name == recipe.FirstStep {
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, step.Name, closer))

		// Sorted for stable output
		tags := make([]string, 0, len(step.Transitions))
		for tag := range step.Transitions {
			tags = append(tags, string(tag))
		}
		sort.Strings(tags)

		for _, tag := range tags {
			t := step.Transitions[domain.Tag(tag)]
			safeTag := strings.ReplaceAll(tag, "\"", "'")

			if t.IsExit() {
				exitSeq++
				exitID := fmt.Sprintf("exit_%d", exitSeq)
				reason := t.ExitReason
				if reason == "" {
					reason = "done"
				}
				sb.WriteString(fmt.Sprintf("    %s([\"%s\"])\n", exitID, strings.ReplaceAll(reason, "\"", "'")))
				sb.WriteString(fmt.Sprintf("    %s -. \"%s\" .-> %s\n", safeID, safeTag, exitID))
				continue
			}

			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, safeTag, sanitizeMermaidID(t.To)))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for high contrast regardless of theme
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, name := range overlay.VisitedSteps {
			safeID := sanitizeMermaidID(name)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentStep != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentStep)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
