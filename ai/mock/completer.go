package mock

import "context"

// MockCompleter is a test double for ai.Completer.
// It allows custom behavior injection via function fields and records the
// prompts it receives so tests can assert on prompt assembly.
type MockCompleter struct {
	// CompleteFunc is called by Complete if set.
	// If nil, returns a canned answer.
	CompleteFunc func(ctx context.Context, prompt string) (string, error)

	callCount int
	prompts   []string
}

// NewMockCompleter creates a mock completer with default canned behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockCompleter() *MockCompleter {
	return &MockCompleter{}
}

// Complete records the prompt and returns the injected or canned answer.
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.callCount++
	m.prompts = append(m.prompts, prompt)

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt)
	}

	return "Data not available.", nil
}

// CallCount returns the number of times Complete was called.
func (m *MockCompleter) CallCount() int {
	return m.callCount
}

// LastPrompt returns the most recent prompt passed to Complete,
// or the empty string if Complete was never called.
func (m *MockCompleter) LastPrompt() string {
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// Reset clears the call count, recorded prompts, and injected behavior.
func (m *MockCompleter) Reset() {
	m.callCount = 0
	m.prompts = nil
	m.CompleteFunc = nil
}
