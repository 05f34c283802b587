package command

import (
	"context"
	"retouch/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

type Generate struct {
	session  port.EditorSession
	renderer port.Renderer
	command  string
}

func NewGenerate(session port.EditorSession, renderer port.Renderer, command string) *Generate {
	return &Generate{session: session, renderer: renderer, command: command}
}

func (h *Generate) GetCommand() string {
	return h.command
}

func (h *Generate) Respond(ctx context.Context, timeout time.Duration, _ string) error {
	l := log.With().Str("command", h.GetCommand()).Logger()
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	h.renderer.RenderMessage("editing image...")

	state := h.session.Generate(ctx)
	h.renderer.RenderState(state)

	return nil
}
