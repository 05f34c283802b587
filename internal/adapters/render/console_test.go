package render

import (
	"bytes"
	"testing"

	"retouch/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestRenderStateEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewConsole(buf)

	c.RenderState(domain.State{})

	out := buf.String()
	assert.Contains(t, out, "source:  none")
	assert.Contains(t, out, "prompt:  none")
	assert.Contains(t, out, "result:  none")
	assert.NotContains(t, out, "error:")
}

func TestRenderStateFull(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewConsole(buf)

	c.RenderState(domain.State{
		Source:    &domain.SourceImage{MediaType: "image/jpeg", Payload: "AAAA"},
		Prompt:    "make it grayscale",
		ResultURL: "data:image/png;base64,BBBB",
	})

	out := buf.String()
	assert.Contains(t, out, "image/jpeg")
	assert.Contains(t, out, `"make it grayscale"`)
	assert.Contains(t, out, "/save")
}

func TestRenderStateError(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewConsole(buf)

	c.RenderState(domain.State{LastError: domain.MsgFileFailed})

	assert.Contains(t, buf.String(), "error:   "+domain.MsgFileFailed)
}

func TestRenderStatePending(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewConsole(buf)

	c.RenderState(domain.State{Pending: true})

	assert.Contains(t, buf.String(), "generation in progress")
}

func TestRenderMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewConsole(buf)

	c.RenderMessage("session reset")

	assert.Equal(t, "session reset\n", buf.String())
}
