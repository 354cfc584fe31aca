package ports

import "context"

// AgentRunner invokes the external text-generating agent.
// It is the only suspension point in a recipe run; everything else in the
// core is synchronous and non-blocking. Timeouts and cancellation are the
// caller's responsibility via ctx.
type AgentRunner interface {
	// Invoke sends the fully formatted prompt and returns the agent's raw
	// textual reply.
	Invoke(ctx context.Context, prompt string) (string, error)
}
