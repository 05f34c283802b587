package command

import (
	"context"
	"fmt"
	"retouch/internal/core/domain"
	"retouch/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

type Save struct {
	session  port.EditorSession
	files    port.FileStore
	renderer port.Renderer
	command  string
}

func NewSave(session port.EditorSession, files port.FileStore, renderer port.Renderer, command string) *Save {
	return &Save{session: session, files: files, renderer: renderer, command: command}
}

func (h *Save) GetCommand() string {
	return h.command
}

func (h *Save) Respond(_ context.Context, _ time.Duration, input string) error {
	state := h.session.Snapshot()
	if state.ResultURL == "" {
		h.renderer.RenderMessage(domain.ErrNoResult.Error())
		return nil
	}

	path, err := h.files.WriteImage(state.ResultURL, ParseCommandArgs(input))
	if err != nil {
		err = fmt.Errorf("error saving result image: %w", err)
		log.Error().Err(err).Msg("save failed")
		h.renderer.RenderMessage(err.Error())
		return err
	}

	h.renderer.RenderMessage("saved result to " + path)

	return nil
}
