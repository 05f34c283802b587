package port

import (
	"context"
	"time"
)

type Command interface {
	// Respond processes one input line within a specified timeout and reports
	// the outcome through the renderer.
	Respond(ctx context.Context, timeout time.Duration, input string) error
	// GetCommand retrieves the command identifier associated with a specific command handler.
	GetCommand() string
}

type CommandRegistry interface {
	// Register adds a new command handler to the command registry.
	Register(handler Command)
	// Get retrieves a registered Command based on its string identifier or returns an error if not found.
	Get(command string) (Command, error)
	// ListCommands returns a list of all command identifiers currently registered in the command registry.
	ListCommands() []string
}
