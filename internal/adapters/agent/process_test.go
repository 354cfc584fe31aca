package agent_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/gantry/internal/adapters/agent"
)

func TestProcess_Invoke(t *testing.T) {
	// cat echoes stdin back, which is exactly the shape of an agent call.
	runner := agent.NewProcess("cat", nil)

	reply, err := runner.Invoke(context.Background(), "hello agent\n{\"outcome\": \"complete\"}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "{\"outcome\": \"complete\"}") {
		t.Errorf("reply = %q, want the prompt echoed back", reply)
	}
}

func TestProcess_Invoke_CommandFailure(t *testing.T) {
	runner := agent.NewProcess("sh", []string{"-c", "echo boom >&2; exit 3"})

	_, err := runner.Invoke(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected an error from a failing command")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q should carry the agent's stderr", err)
	}
}

func TestProcess_Invoke_MissingCommand(t *testing.T) {
	runner := agent.NewProcess("definitely-not-a-real-command-zz", nil)

	if _, err := runner.Invoke(context.Background(), "prompt"); err == nil {
		t.Fatal("expected an error for a missing command")
	}
}

func TestProcess_Invoke_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := agent.NewProcess("sleep", []string{"10"})
	if _, err := runner.Invoke(ctx, "prompt"); err == nil {
		t.Fatal("expected an error when the context is already cancelled")
	}
}

func TestMock_Invoke(t *testing.T) {
	mock := agent.NewMock("first", "second")
	ctx := context.Background()

	for i, want := range []string{"first", "second", "second"} {
		got, err := mock.Invoke(ctx, "p")
		if err != nil {
			t.Fatalf("invoke %d failed: %v", i, err)
		}
		if got != want {
			t.Errorf("reply %d = %q, want %q", i, got, want)
		}
	}

	if len(mock.Prompts) != 3 {
		t.Errorf("recorded %d prompts, want 3", len(mock.Prompts))
	}
}
