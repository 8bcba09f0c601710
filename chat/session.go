package chat

import (
	"github.com/poiesic/warebot/core"
)

// Session holds the ordered turn history of one conversation.
// Turns only ever append; error replies are recorded the same way as
// successful ones, so the transcript is a complete account of the exchange.
//
// A Session is not safe for concurrent use.
type Session struct {
	turns []core.Turn
}

// NewSession creates an empty conversation session.
func NewSession() *Session {
	return &Session{}
}

// Append adds a turn to the end of the history.
func (s *Session) Append(role core.Role, content string) {
	s.turns = append(s.turns, core.Turn{Role: role, Content: content})
}

// Turns returns a copy of the history in chronological order.
func (s *Session) Turns() []core.Turn {
	out := make([]core.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns in the history.
func (s *Session) Len() int {
	return len(s.turns)
}

// Clear discards the history, returning the session to its initial state.
func (s *Session) Clear() {
	s.turns = nil
}
