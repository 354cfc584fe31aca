package outcome

import (
	"encoding/json"
	"fmt"
)

// SafeParse decodes a JSON object from untrusted text.
// Markdown fences are stripped first, then the text must parse as a single
// JSON object. Failures come back as error values; nothing escapes this
// boundary as a panic.
func SafeParse(text string) (map[string]any, error) {
	cleaned := StripFences(text)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return data, nil
}
