package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"retouch/internal/core/domain/command"
	"retouch/internal/core/port"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
)

// REPL reads /command lines from the terminal and dispatches them to the
// registered handlers.
type REPL struct {
	registry port.CommandRegistry
	renderer port.Renderer
	timeout  time.Duration
}

func NewREPL(registry port.CommandRegistry, renderer port.Renderer, timeout time.Duration) *REPL {
	return &REPL{registry: registry, renderer: renderer, timeout: timeout}
}

func (r *REPL) Run(ctx context.Context) error {
	homeDir, _ := os.UserHomeDir()
	historyFile := filepath.Join(homeDir, ".retouch-history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		Stdin:  readline.NewCancelableStdin(os.Stdin),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	r.renderer.RenderMessage("commands: " + strings.Join(r.registry.ListCommands(), ", ") + " — exit to quit")

	for {
		if ctx.Err() != nil {
			return nil
		}

		input, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if input == "exit" || input == "quit" {
			return nil
		}

		r.Dispatch(ctx, input)
	}
}

// Dispatch routes one input line to its command handler.
func (r *REPL) Dispatch(ctx context.Context, input string) {
	cmd := command.ParseCommand(input)

	handler, err := r.registry.Get(cmd)
	if err != nil {
		log.Debug().Str("command", cmd).Msg("no handler for command")
		r.renderer.RenderMessage("unknown command, try one of: " + strings.Join(r.registry.ListCommands(), ", "))
		return
	}

	if err := handler.Respond(ctx, r.timeout, input); err != nil {
		log.Err(err).Str("command", cmd).Msg("failed to respond to command")
	}
}
