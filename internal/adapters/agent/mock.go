package agent

import (
	"context"
	"sync"
)

// Mock implements ports.AgentRunner with scripted replies, for tests and
// dry runs. Replies are consumed in order; the last one repeats once the
// script is exhausted.
type Mock struct {
	mu      sync.Mutex
	replies []string
	err     error
	next    int

	// Prompts records every prompt received, in order.
	Prompts []string
}

// NewMock creates a mock runner that plays back the given replies.
func NewMock(replies ...string) *Mock {
	return &Mock{replies: replies}
}

// Fail makes every subsequent Invoke return err.
func (m *Mock) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Invoke records the prompt and returns the next scripted reply.
func (m *Mock) Invoke(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)

	if m.err != nil {
		return "", m.err
	}
	if len(m.replies) == 0 {
		return "", nil
	}

	reply := m.replies[m.next]
	if m.next < len(m.replies)-1 {
		m.next++
	}
	return reply, nil
}
