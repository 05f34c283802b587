package command

import (
	"context"
	"retouch/internal/core/port"
	"time"
)

type Reset struct {
	session  port.EditorSession
	renderer port.Renderer
	command  string
}

func NewReset(session port.EditorSession, renderer port.Renderer, command string) *Reset {
	return &Reset{session: session, renderer: renderer, command: command}
}

func (h *Reset) GetCommand() string {
	return h.command
}

func (h *Reset) Respond(_ context.Context, _ time.Duration, _ string) error {
	h.session.Reset()
	h.renderer.RenderMessage("session reset")

	return nil
}
