package command

import (
	"context"
	"retouch/internal/core/port"
	"time"
)

type Status struct {
	session  port.EditorSession
	renderer port.Renderer
	command  string
}

func NewStatus(session port.EditorSession, renderer port.Renderer, command string) *Status {
	return &Status{session: session, renderer: renderer, command: command}
}

func (h *Status) GetCommand() string {
	return h.command
}

func (h *Status) Respond(_ context.Context, _ time.Duration, _ string) error {
	h.renderer.RenderState(h.session.Snapshot())

	return nil
}
