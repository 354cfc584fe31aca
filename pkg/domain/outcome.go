package domain

import "sort"

// Tag is a short symbolic outcome reported by the agent for a step.
// The set of valid tags is closed per step; anything outside it is rejected
// by the validator before being treated as a Tag.
type Tag string

// TagOther is the one tag with extra requirements: the agent must supply a
// non-empty description of what actually happened.
const TagOther Tag = "other"

// Common tags used by the built-in recipes. Recipes are free to define
// their own beyond these.
const (
	TagComplete    Tag = "complete"
	TagIssuesFound Tag = "issues-found"
)

// TagSet is a set of outcome tags.
type TagSet map[Tag]struct{}

// NewTagSet builds a set from the given tags.
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s TagSet) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}

// Sorted returns the tags in lexical order, for deterministic rendering.
func (s TagSet) Sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// OutcomeResult is the tagged result of outcome extraction.
// Exactly one of the two shapes is populated: a successful extraction
// carries Outcome (and Description for TagOther), a failed one carries
// Error and, when the failure was a parse failure, the offending substring
// in MalformedJSON for diagnostics.
type OutcomeResult struct {
	Success     bool   `json:"success"`
	Outcome     Tag    `json:"outcome,omitempty"`
	Description string `json:"description,omitempty"`

	Error         string `json:"error,omitempty"`
	MalformedJSON string `json:"malformed_json,omitempty"`
}

// GoodOutcome builds a successful result.
func GoodOutcome(tag Tag, description string) OutcomeResult {
	return OutcomeResult{Success: true, Outcome: tag, Description: description}
}

// BadOutcome builds a failed result.
func BadOutcome(errMsg string) OutcomeResult {
	return OutcomeResult{Success: false, Error: errMsg}
}
