package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/warebot/ai"
	"github.com/poiesic/warebot/core"
	"github.com/poiesic/warebot/search"
)

// Assistant answers questions over the ingested inventory, one turn at a
// time. Every Ask appends exactly two turns to the session: the user's
// question and the assistant's reply. Failures inside a turn become an
// error-text reply in the transcript instead of aborting the conversation;
// the typed error is still returned so callers can distinguish failure kinds.
type Assistant struct {
	retriever *search.Retriever
	completer ai.Completer
	mode      core.Mode
	logger    *slog.Logger
}

// Option configures an Assistant.
type Option func(*Assistant) error

// WithMode sets the assistant persona interpolated into the prompt.
// Default is core.ModeInventory.
func WithMode(mode core.Mode) Option {
	return func(a *Assistant) error {
		if !mode.Valid() {
			return fmt.Errorf("%w: %q", core.ErrInvalidMode, mode)
		}
		a.mode = mode
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assistant) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAssistant creates an assistant over the given retriever and provider.
func NewAssistant(retriever *search.Retriever, provider ai.AIProvider, opts ...Option) (*Assistant, error) {
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	a := &Assistant{
		retriever: retriever,
		completer: provider.Completer(),
		mode:      core.ModeInventory,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Mode returns the assistant's configured mode.
func (a *Assistant) Mode() core.Mode {
	return a.mode
}

// Ask runs one conversation turn: record the question, retrieve context,
// assemble the prompt, and complete. The returned string is always the reply
// that was appended to the session; when a stage fails the reply is the
// error text ("Error: ...") and the returned error carries the stage
// (ErrRetrieval or ErrCompletion) for the caller.
//
// The user turn is recorded before any fallible work so the transcript keeps
// the question even when the answer fails.
func (a *Assistant) Ask(ctx context.Context, session *Session, question string) (string, error) {
	if session == nil {
		return "", ErrSessionRequired
	}
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}

	session.Append(core.RoleUser, question)

	docs, err := a.retriever.Retrieve(ctx, question)
	if err != nil {
		return a.failTurn(session, fmt.Errorf("%w: %v", ErrRetrieval, err))
	}

	prompt := BuildPrompt(a.mode, docs, question)
	a.logger.Debug("assembled prompt", "mode", a.mode, "records", len(docs))

	answer, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		return a.failTurn(session, fmt.Errorf("%w: %v", ErrCompletion, err))
	}

	session.Append(core.RoleAssistant, answer)
	return answer, nil
}

// failTurn records the failure as the assistant's reply and returns it with
// the typed error, keeping the two-turns-per-Ask shape intact.
func (a *Assistant) failTurn(session *Session, err error) (string, error) {
	reply := fmt.Sprintf("Error: %v", err)
	session.Append(core.RoleAssistant, reply)
	a.logger.Error("turn failed", "err", err)
	return reply, err
}
