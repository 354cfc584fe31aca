package outcome

import "strings"

// StripFences removes a single markdown code fence wrapping the text.
// The opening fence may carry a language tag (```json); the closing fence
// must be a bare ``` line. Text without a wrapping fence is returned
// unchanged, which makes the operation idempotent for fenced JSON payloads.
func StripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return text
	}

	// Opening line must be the fence itself, optionally with a language tag.
	opening := strings.TrimSpace(lines[0])
	if strings.ContainsAny(strings.TrimPrefix(opening, "```"), " \t`") {
		return text
	}

	if strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return text
	}

	return strings.Join(lines[1:len(lines)-1], "\n")
}
