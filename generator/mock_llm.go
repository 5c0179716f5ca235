package generator

import (
	"context"
	"strings"
)

// MockBackend is a canned ModelBackend for tests and local runs. Reply is
// returned verbatim when set; Err wins over Reply.
type MockBackend struct {
	Reply string
	Err   error

	// Calls counts Complete invocations, so tests can assert single-shot
	// behavior (the strategy never retries).
	Calls int
}

func (m *MockBackend) Complete(_ context.Context, _ Prompt) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}
	var sb strings.Builder
	sb.WriteString("# Generated Exercise\n\n")
	sb.WriteString("A placeholder exercise derived from the request.\n\n")
	sb.WriteString("**Tips:**\n- Keep it short.\n- Iterate.\n- Finish.\n")
	return sb.String(), nil
}
