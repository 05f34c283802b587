package command

import (
	"errors"
	"testing"
	"time"

	"retouch/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesResult(t *testing.T) {
	ms := &MockSession{state: domain.State{ResultURL: "data:image/png;base64,AAAA"}}
	mf := &MockFileStore{}
	mr := &MockRenderer{}

	h := NewSave(ms, mf, mr, "/save")

	err := h.Respond(t.Context(), time.Second, "/save out.png")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", mf.writtenURL)
	assert.Equal(t, "out.png", mf.writtenPath)
	require.Len(t, mr.messages, 1)
	assert.Contains(t, mr.messages[0], "out.png")
}

func TestSaveWithoutResult(t *testing.T) {
	ms := &MockSession{}
	mf := &MockFileStore{}
	mr := &MockRenderer{}

	h := NewSave(ms, mf, mr, "/save")

	err := h.Respond(t.Context(), time.Second, "/save out.png")
	require.NoError(t, err)
	assert.Empty(t, mf.writtenURL)
	require.Len(t, mr.messages, 1)
	assert.Equal(t, "no result image to save", mr.messages[0])
}

func TestSaveWriteError(t *testing.T) {
	ms := &MockSession{state: domain.State{ResultURL: "data:image/png;base64,AAAA"}}
	mf := &MockFileStore{err: errors.New("disk full")}
	mr := &MockRenderer{}

	h := NewSave(ms, mf, mr, "/save")

	err := h.Respond(t.Context(), time.Second, "/save out.png")
	require.Error(t, err)
	require.Len(t, mr.messages, 1)
	assert.Contains(t, mr.messages[0], "disk full")
}
