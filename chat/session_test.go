package chat

import (
	"testing"

	"github.com/poiesic/warebot/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AppendPreservesOrder(t *testing.T) {
	s := NewSession()
	s.Append(core.RoleUser, "how many hex bolts?")
	s.Append(core.RoleAssistant, "420 units are available.")
	s.Append(core.RoleUser, "and pallet jacks?")

	turns := s.Turns()
	require.Len(t, turns, 3)
	assert.Equal(t, core.RoleUser, turns[0].Role)
	assert.Equal(t, "how many hex bolts?", turns[0].Content)
	assert.Equal(t, core.RoleAssistant, turns[1].Role)
	assert.Equal(t, core.RoleUser, turns[2].Role)
	assert.Equal(t, 3, s.Len())
}

func TestSession_TurnsReturnsCopy(t *testing.T) {
	s := NewSession()
	s.Append(core.RoleUser, "original")

	turns := s.Turns()
	turns[0].Content = "mutated"

	assert.Equal(t, "original", s.Turns()[0].Content)
}

func TestSession_Clear(t *testing.T) {
	s := NewSession()
	s.Append(core.RoleUser, "question")
	s.Append(core.RoleAssistant, "answer")

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Turns())

	// A cleared session is reusable
	s.Append(core.RoleUser, "fresh start")
	assert.Equal(t, 1, s.Len())
}
