package port

import (
	"context"
	"retouch/internal/core/domain"
)

// EditorSession is the interactive editing state machine. Operations never
// return errors; every failure is captured in the returned state's LastError.
type EditorSession interface {
	// LoadImage reads the file at path and replaces the session's source
	// image, discarding any previous result or error.
	LoadImage(ctx context.Context, path string) domain.State
	// UpdatePrompt replaces the prompt text.
	UpdatePrompt(text string) domain.State
	// Generate runs exactly one edit request against the remote editor and
	// settles with either a result URL or an error message.
	Generate(ctx context.Context) domain.State
	// Reset returns the session to its initial empty state.
	Reset() domain.State
	// Snapshot returns the current state without modifying it.
	Snapshot() domain.State
}
