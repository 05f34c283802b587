package command

import (
	"context"
	"retouch/internal/core/port"
	"time"
)

type Prompt struct {
	session  port.EditorSession
	renderer port.Renderer
	command  string
}

func NewPrompt(session port.EditorSession, renderer port.Renderer, command string) *Prompt {
	return &Prompt{session: session, renderer: renderer, command: command}
}

func (h *Prompt) GetCommand() string {
	return h.command
}

// Respond replaces the session prompt. An empty argument clears it; whether
// the prompt is usable is checked at generation time.
func (h *Prompt) Respond(_ context.Context, _ time.Duration, input string) error {
	state := h.session.UpdatePrompt(ParseCommandArgs(input))
	h.renderer.RenderState(state)

	return nil
}
