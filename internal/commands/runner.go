package commands

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Runner owns the ordered command registry and drives the interactive menu:
// render, dispatch by key, repeat until exit or end of input.
type Runner struct {
	logger   *logrus.Logger
	session  *Session
	commands []Command
}

func NewRunner(logger *logrus.Logger, session *Session) *Runner {
	return &Runner{
		logger:  logger,
		session: session,
		commands: []Command{
			&AddCommand{},
			&ListCommand{},
			&SearchCommand{},
			&ExpensesOverCommand{},
			&ByCategoryCommand{},
			&DateRangeCommand{},
			&SummaryCommand{},
			&ChartCommand{},
			&SaveCommand{},
			&LoadCommand{},
			&ExportCommand{},
			&RemoveCommand{},
			&DumpCommand{},
		},
	}
}

// Run loops the menu until the user exits. A failed command reports its error
// and prompts again; in-memory state is never left half-changed. End of input
// counts as a clean exit.
func (r *Runner) Run(ctx context.Context) error {
	for {
		r.printMenu()

		choice, err := r.session.Prompt("Choose an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if choice == "0" {
			return r.exit(ctx)
		}

		command := r.lookup(choice)
		if command == nil {
			r.session.Printf("Unknown choice %q - try again.\n", choice)
			continue
		}

		wrapped := logging.CommandWrapper(command.Name(), r.logger, func(ctx context.Context) error {
			return command.Run(ctx, r.session)
		})
		if err := wrapped(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			r.session.Printf("Error: %v\n", err)
		}
	}
}

func (r *Runner) printMenu() {
	var b strings.Builder
	b.WriteString("\nPersonal Finance Tracker - Menu\n")
	for _, command := range r.commands {
		b.WriteString(command.Key())
		b.WriteString(") ")
		b.WriteString(command.Title())
		b.WriteString("\n")
	}
	b.WriteString("0) Exit\n")
	r.session.Printf("%s", b.String())
}

func (r *Runner) lookup(key string) Command {
	for _, command := range r.commands {
		if command.Key() == key {
			return command
		}
	}
	return nil
}

func (r *Runner) exit(ctx context.Context) error {
	answer, err := r.session.Prompt("Save before quitting? (y/N) ")
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if strings.EqualFold(answer, "y") {
		records := storage.FromLedger(r.session.Store.ExportAll())
		if err := r.session.Files.Save(ctx, records); err != nil {
			r.logger.WithError(err).Error("Runner.exit.save")
			r.session.Printf("Error: %v\n", err)
		} else {
			r.session.Printf("Saved %d transactions to %s\n", len(records), r.session.Files.Path())
		}
	}

	r.session.Printf("Goodbye!\n")
	return nil
}
