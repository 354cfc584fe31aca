package outcome

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/gantry/pkg/domain"
)

// Sentinel errors for the validation layer. Wrapped errors carry the
// offending value; use errors.Is to classify.
var (
	// ErrMissingOutcome means the payload had no "outcome" field.
	ErrMissingOutcome = errors.New("missing outcome field")

	// ErrUnexpectedOutcome means the reported tag is not in the step's set.
	ErrUnexpectedOutcome = errors.New("unexpected outcome")

	// ErrMissingDescription means the "other" tag arrived without a usable
	// otherDescription.
	ErrMissingDescription = errors.New(`outcome "other" requires a non-empty otherDescription`)
)

// envelope is the wire shape a well-behaved agent must emit.
type envelope struct {
	Outcome          string `mapstructure:"outcome"`
	OtherDescription string `mapstructure:"otherDescription"`
}

// Validate checks a parsed payload against the step's expected outcome set.
// On success it returns the coerced tag and, for domain.TagOther, the
// agent's description of what happened.
func Validate(data map[string]any, expected domain.TagSet) (domain.Tag, string, error) {
	if _, present := data["outcome"]; !present {
		return "", "", ErrMissingOutcome
	}

	var env envelope
	if err := mapstructure.Decode(data, &env); err != nil {
		return "", "", fmt.Errorf("outcome payload has an unexpected shape: %w", err)
	}
	if env.Outcome == "" {
		return "", "", ErrMissingOutcome
	}

	// Only values inside the known set are treated as tags.
	tag := domain.Tag(env.Outcome)
	if !expected.Has(tag) {
		return "", "", fmt.Errorf("%w %q: expected one of [%s]", ErrUnexpectedOutcome, env.Outcome, joinTags(expected))
	}

	if tag == domain.TagOther && strings.TrimSpace(env.OtherDescription) == "" {
		return "", "", ErrMissingDescription
	}

	return tag, env.OtherDescription, nil
}

func joinTags(set domain.TagSet) string {
	tags := set.Sorted()
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
