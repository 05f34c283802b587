package command

import (
	"context"
	"retouch/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

type Load struct {
	session  port.EditorSession
	renderer port.Renderer
	command  string
}

func NewLoad(session port.EditorSession, renderer port.Renderer, command string) *Load {
	return &Load{session: session, renderer: renderer, command: command}
}

func (h *Load) GetCommand() string {
	return h.command
}

func (h *Load) Respond(ctx context.Context, timeout time.Duration, input string) error {
	l := log.With().Str("command", h.GetCommand()).Logger()
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	path := ParseCommandArgs(input)
	if path == "" {
		h.renderer.RenderMessage("usage: /load <path to image>")
		return nil
	}

	state := h.session.LoadImage(ctx, path)
	h.renderer.RenderState(state)

	return nil
}
