package service

import (
	"context"
	"sync"

	"retouch/internal/core/domain"
	"retouch/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Session owns the state of one interactive editing session. All operations
// are safe for concurrent use; failures never escape as errors, they settle
// into the returned state's LastError.
type Session struct {
	editor port.ImageEditor
	files  port.FileStore

	mu    sync.Mutex
	state domain.State

	// latest tags the most recent state-changing operation. A generation that
	// settles after the session moved on discards its outcome instead of
	// overwriting fresher state.
	latest uint64
}

func NewSession(editor port.ImageEditor, files port.FileStore) *Session {
	return &Session{editor: editor, files: files}
}

func (s *Session) LoadImage(ctx context.Context, path string) domain.State {
	l := log.With().Str("path", path).Logger()

	dataURL, err := s.files.ReadDataURL(ctx, path)
	if err != nil {
		l.Warn().Err(err).Msg("could not read image file")
		return s.apply(func(st domain.State) domain.State { return st.Fail(domain.MsgFileFailed) })
	}

	mediaType, payload, err := domain.ParseDataURL(dataURL)
	if err != nil {
		l.Warn().Err(err).Msg("could not parse image data URL")
		return s.apply(func(st domain.State) domain.State { return st.Fail(domain.MsgFileFailed) })
	}

	l.Info().Str("mediaType", mediaType).Msg("image loaded")

	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest++
	s.state = s.state.WithSource(domain.SourceImage{
		DisplayURL: dataURL,
		Payload:    payload,
		MediaType:  mediaType,
	})

	return s.state
}

func (s *Session) UpdatePrompt(text string) domain.State {
	return s.apply(func(st domain.State) domain.State { return st.WithPrompt(text) })
}

func (s *Session) Generate(ctx context.Context) domain.State {
	s.mu.Lock()

	if s.state.Pending {
		st := s.state
		s.mu.Unlock()
		return st
	}

	if s.state.Prompt == "" || s.state.Source == nil {
		s.state = s.state.Fail(domain.MsgMissingInput)
		st := s.state
		s.mu.Unlock()
		return st
	}

	s.latest++
	id := s.latest
	s.state = s.state.BeginGenerate()

	request := domain.EditRequest{
		Prompt:    s.state.Prompt,
		Payload:   s.state.Source.Payload,
		MediaType: s.state.Source.MediaType,
	}
	s.mu.Unlock()

	l := log.With().Uint64("requestId", id).Str("mediaType", request.MediaType).Logger()
	l.Info().Msg("requesting image edit")

	data, err := s.editor.EditImage(ctx, request)

	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.latest {
		l.Debug().Msg("discarding stale generation outcome")
		return s.state
	}

	if err != nil {
		l.Warn().Err(err).Msg("image edit failed")
		s.state = s.state.SettleError(domain.GenerationError(err))
		return s.state
	}

	l.Info().Int("bytes", len(data)).Msg("image edit succeeded")

	s.state = s.state.SettleResult(domain.EncodeDataURL(domain.ResultMediaType, data))

	return s.state
}

func (s *Session) Reset() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest++
	s.state = domain.State{}

	return s.state
}

func (s *Session) Snapshot() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Session) apply(transition func(domain.State) domain.State) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = transition(s.state)

	return s.state
}
