package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore(&MockEditor{}, &MockFileStore{}, time.Minute)

	id, session, err := store.Create()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEmpty(t, id)

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Same(t, session, got)
}

func TestStoreSessionsAreIndependent(t *testing.T) {
	store := NewStore(&MockEditor{}, &MockFileStore{dataURL: jpegDataURL}, time.Minute)

	_, first, err := store.Create()
	require.NoError(t, err)
	_, second, err := store.Create()
	require.NoError(t, err)

	first.UpdatePrompt("only in the first session")

	assert.Empty(t, second.Snapshot().Prompt)
}

func TestStoreGetUnknownID(t *testing.T) {
	store := NewStore(&MockEditor{}, &MockFileStore{}, time.Minute)

	_, err := store.Get("nope")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(&MockEditor{}, &MockFileStore{}, 10*time.Millisecond)

	id, _, err := store.Create()
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := store.Get(id)
		return err != nil
	}, time.Second, 5*time.Millisecond)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(&MockEditor{}, &MockFileStore{}, time.Minute)

	id, _, err := store.Create()
	require.NoError(t, err)

	store.Delete(id)

	_, err = store.Get(id)
	require.ErrorIs(t, err, ErrSessionNotFound)
}
