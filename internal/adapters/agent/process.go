// Package agent provides AgentRunner implementations: a process runner that
// shells out to an external agent CLI, and a scripted mock for tests.
package agent

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Process implements ports.AgentRunner by executing an external command.
// The prompt is written to the command's stdin and the agent's reply is read
// from its stdout. One invocation spawns one process; timeouts and
// cancellation arrive through the context.
type Process struct {
	command string
	args    []string
	dir     string
}

// ProcessOption configures the runner.
type ProcessOption func(*Process)

// WithWorkDir sets the working directory for the spawned process.
func WithWorkDir(dir string) ProcessOption {
	return func(p *Process) {
		p.dir = dir
	}
}

// NewProcess creates a process runner for the given command line.
func NewProcess(command string, args []string, opts ...ProcessOption) *Process {
	p := &Process{
		command: command,
		args:    args,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Invoke runs the agent command once and returns its stdout.
// Stderr is captured and folded into the error on failure, since agent CLIs
// tend to put their diagnostics there.
func (p *Process) Invoke(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, p.command, p.args...)
	cmd.Stdin = strings.NewReader(prompt)
	cmd.Dir = p.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("agent command %q failed: %w: %s", p.command, err, msg)
		}
		return "", fmt.Errorf("agent command %q failed: %w", p.command, err)
	}

	return stdout.String(), nil
}
