package command

import (
	"context"

	"retouch/internal/core/domain"
)

type MockSession struct {
	state      domain.State
	loadedPath string
	prompt     string
	generated  bool
	resets     int
}

func (m *MockSession) LoadImage(_ context.Context, path string) domain.State {
	m.loadedPath = path
	return m.state
}

func (m *MockSession) UpdatePrompt(text string) domain.State {
	m.prompt = text
	m.state.Prompt = text
	return m.state
}

func (m *MockSession) Generate(_ context.Context) domain.State {
	m.generated = true
	return m.state
}

func (m *MockSession) Reset() domain.State {
	m.resets++
	return domain.State{}
}

func (m *MockSession) Snapshot() domain.State {
	return m.state
}

type MockRenderer struct {
	states   []domain.State
	messages []string
}

func (m *MockRenderer) RenderState(state domain.State) {
	m.states = append(m.states, state)
}

func (m *MockRenderer) RenderMessage(text string) {
	m.messages = append(m.messages, text)
}

type MockFileStore struct {
	writtenURL  string
	writtenPath string
	err         error
}

func (m *MockFileStore) ReadDataURL(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (m *MockFileStore) WriteImage(dataURL, path string) (string, error) {
	m.writtenURL = dataURL
	m.writtenPath = path
	if m.err != nil {
		return "", m.err
	}
	if path == "" {
		path = "retouch-generated.png"
	}
	return path, nil
}
