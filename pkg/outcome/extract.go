package outcome

import (
	"errors"

	"github.com/aretw0/gantry/pkg/domain"
)

// ErrNoJSONFound means no balanced JSON object was located within the
// lookback window of the agent's reply.
var ErrNoJSONFound = errors.New("no JSON block found")

// Extract is the single entry point for turning a raw agent reply into a
// decision-ready outcome. It composes the locator, the safe parser and the
// validator; every failure mode is reported as a distinct, actionable
// message so the host can pick the right corrective prompt.
func Extract(raw string, expected domain.TagSet) domain.OutcomeResult {
	block, found := LocateBlock(raw)
	if !found {
		return domain.BadOutcome(ErrNoJSONFound.Error())
	}

	data, err := SafeParse(block)
	if err != nil {
		res := domain.BadOutcome(err.Error())
		res.MalformedJSON = block
		return res
	}

	tag, description, err := Validate(data, expected)
	if err != nil {
		return domain.BadOutcome(err.Error())
	}

	return domain.GoodOutcome(tag, description)
}

// FailureKind classifies a failed extraction for logging and metrics.
// Returns "" for successful results.
func FailureKind(res domain.OutcomeResult) string {
	switch {
	case res.Success:
		return ""
	case res.MalformedJSON != "":
		return "malformed-json"
	case res.Error == ErrNoJSONFound.Error():
		return "no-json"
	default:
		return "invalid-outcome"
	}
}
