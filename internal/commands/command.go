package commands

import "context"

// Command is one menu operation. Run reads whatever input it needs from the
// session and writes its output there; the runner owns logging and error
// display.
type Command interface {
	// Key is the menu choice that selects the command.
	Key() string
	// Name is the short identifier used in log entries.
	Name() string
	// Title is the menu line shown to the user.
	Title() string
	Run(ctx context.Context, session *Session) error
}
