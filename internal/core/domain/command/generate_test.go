package command

import (
	"testing"
	"time"

	"retouch/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRendersResult(t *testing.T) {
	ms := &MockSession{state: domain.State{ResultURL: "data:image/png;base64,AAAA"}}
	mr := &MockRenderer{}

	h := NewGenerate(ms, mr, "/generate")

	err := h.Respond(t.Context(), time.Second, "/generate")
	require.NoError(t, err)
	assert.True(t, ms.generated)
	require.Len(t, mr.states, 1)
	assert.Equal(t, "data:image/png;base64,AAAA", mr.states[0].ResultURL)
}

func TestGenerateRendersValidationError(t *testing.T) {
	ms := &MockSession{state: domain.State{LastError: domain.MsgMissingInput}}
	mr := &MockRenderer{}

	h := NewGenerate(ms, mr, "/generate")

	err := h.Respond(t.Context(), time.Second, "/generate")
	require.NoError(t, err)
	require.Len(t, mr.states, 1)
	assert.Equal(t, domain.MsgMissingInput, mr.states[0].LastError)
}
