package render

import (
	"fmt"
	"io"

	"retouch/internal/core/domain"
)

// Console prints session state summaries as plain lines on a writer.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) RenderState(state domain.State) {
	if state.Source == nil {
		fmt.Fprintln(c.out, "source:  none, /load an image to start")
	} else {
		fmt.Fprintf(c.out, "source:  %s (%d bytes encoded)\n", state.Source.MediaType, len(state.Source.Payload))
	}

	if state.Prompt == "" {
		fmt.Fprintln(c.out, "prompt:  none")
	} else {
		fmt.Fprintf(c.out, "prompt:  %q\n", state.Prompt)
	}

	switch {
	case state.Pending:
		fmt.Fprintln(c.out, "result:  generation in progress")
	case state.ResultURL != "":
		fmt.Fprintln(c.out, "result:  ready, /save to write it to disk")
	default:
		fmt.Fprintln(c.out, "result:  none")
	}

	if state.LastError != "" {
		fmt.Fprintf(c.out, "error:   %s\n", state.LastError)
	}
}

func (c *Console) RenderMessage(text string) {
	fmt.Fprintln(c.out, text)
}
