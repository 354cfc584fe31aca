package outcome

import (
	"strings"
	"testing"

	"github.com/aretw0/gantry/pkg/domain"
)

func TestExtract(t *testing.T) {
	tags := domain.NewTagSet(domain.TagComplete, domain.TagOther)

	t.Run("valid outcome at tail of prose", func(t *testing.T) {
		res := Extract("Here is my review.\n\n{\"outcome\": \"complete\"}", tags)
		if !res.Success {
			t.Fatalf("expected success, got error %q", res.Error)
		}
		if res.Outcome != domain.TagComplete {
			t.Errorf("outcome = %q, want %q", res.Outcome, domain.TagComplete)
		}
	})

	t.Run("other carries its description", func(t *testing.T) {
		res := Extract("I need help.\n\n{\"outcome\":\"other\",\"otherDescription\":\"Blocked on API\"}", tags)
		if !res.Success {
			t.Fatalf("expected success, got error %q", res.Error)
		}
		if res.Outcome != domain.TagOther {
			t.Errorf("outcome = %q, want %q", res.Outcome, domain.TagOther)
		}
		if res.Description != "Blocked on API" {
			t.Errorf("description = %q, want %q", res.Description, "Blocked on API")
		}
	})

	t.Run("fenced envelope accepted", func(t *testing.T) {
		res := Extract("Review done.\n\n```json\n{\"outcome\": \"complete\"}\n```", tags)
		if !res.Success {
			t.Fatalf("expected success, got error %q", res.Error)
		}
	})

	t.Run("tag outside expected set fails naming the value", func(t *testing.T) {
		res := Extract("Here is my review.\n\n{\"outcome\": \"no-issues\"}", tags)
		if res.Success {
			t.Fatal("expected failure")
		}
		if !strings.Contains(res.Error, "no-issues") {
			t.Errorf("error %q should name the unexpected value", res.Error)
		}
	})

	t.Run("unexpected tag fails", func(t *testing.T) {
		res := Extract("Done.\n\n{\"outcome\":\"unexpected\"}", tags)
		if res.Success {
			t.Fatal("expected failure")
		}
	})

	t.Run("plain text reports no JSON block", func(t *testing.T) {
		res := Extract("Just plain text", domain.NewTagSet(domain.TagComplete))
		if res.Success {
			t.Fatal("expected failure")
		}
		if res.Error != "no JSON block found" {
			t.Errorf("error = %q, want %q", res.Error, "no JSON block found")
		}
	})

	t.Run("empty reply reports no JSON block", func(t *testing.T) {
		res := Extract("", tags)
		if res.Success || res.Error != "no JSON block found" {
			t.Errorf("got %+v, want no JSON block found failure", res)
		}
	})

	t.Run("malformed JSON preserves the substring", func(t *testing.T) {
		res := Extract("Answer below.\n{\"outcome\": complete}", tags)
		if res.Success {
			t.Fatal("expected failure")
		}
		if res.MalformedJSON != "{\"outcome\": complete}" {
			t.Errorf("malformed substring = %q, want the raw block", res.MalformedJSON)
		}
	})

	t.Run("missing outcome field", func(t *testing.T) {
		res := Extract("ok\n{\"status\": \"complete\"}", tags)
		if res.Success {
			t.Fatal("expected failure")
		}
		if !strings.Contains(res.Error, "missing outcome field") {
			t.Errorf("error = %q, want a missing-outcome message", res.Error)
		}
	})
}

func TestFailureKind(t *testing.T) {
	tags := domain.NewTagSet(domain.TagComplete)

	tests := []struct {
		name string
		res  domain.OutcomeResult
		want string
	}{
		{"success", Extract("x\n{\"outcome\": \"complete\"}", tags), ""},
		{"no json", Extract("no envelope here", tags), "no-json"},
		{"malformed", Extract("x\n{broken", tags), "no-json"},
		{"malformed block", Extract("x\n{\"outcome\": oops}", tags), "malformed-json"},
		{"validation", Extract("x\n{\"outcome\": \"nope\"}", tags), "invalid-outcome"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FailureKind(tt.res); got != tt.want {
				t.Errorf("FailureKind = %q, want %q", got, tt.want)
			}
		})
	}
}
