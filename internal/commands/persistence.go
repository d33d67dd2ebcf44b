package commands

import (
	"context"
	"strconv"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// SaveCommand writes the whole store to the data file.
type SaveCommand struct{}

func (c *SaveCommand) Key() string   { return "9" }
func (c *SaveCommand) Name() string  { return "Save" }
func (c *SaveCommand) Title() string { return "Save transactions" }

func (c *SaveCommand) Run(ctx context.Context, session *Session) error {
	records := storage.FromLedger(session.Store.ExportAll())
	if err := session.Files.Save(ctx, records); err != nil {
		return err
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("recordCount", len(records))
	}
	session.Printf("Saved %d transactions to %s\n", len(records), session.Files.Path())
	return nil
}

// LoadCommand replaces the store with the data file contents. A malformed
// file leaves the store untouched.
type LoadCommand struct{}

func (c *LoadCommand) Key() string   { return "10" }
func (c *LoadCommand) Name() string  { return "Load" }
func (c *LoadCommand) Title() string { return "Load transactions from file" }

func (c *LoadCommand) Run(ctx context.Context, session *Session) error {
	records, err := session.Files.Load(ctx)
	if err != nil {
		return err
	}
	if err := session.Store.LoadFrom(storage.ToLedger(records)); err != nil {
		return err
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("recordCount", len(records))
	}
	session.Printf("Loaded %d transactions from %s\n", len(records), session.Files.Path())
	return nil
}

// ExportCommand writes the store to a caller-chosen JSON file.
type ExportCommand struct{}

func (c *ExportCommand) Key() string   { return "11" }
func (c *ExportCommand) Name() string  { return "Export" }
func (c *ExportCommand) Title() string { return "Export to JSON file" }

func (c *ExportCommand) Run(ctx context.Context, session *Session) error {
	filename, err := session.Prompt("Export JSON filename: ")
	if err != nil {
		return err
	}
	if filename == "" {
		return &ledger.ValidationError{Field: "filename", Reason: "must not be empty"}
	}

	records := storage.FromLedger(session.Store.ExportAll())
	if err := storage.NewFileStore(filename).Save(ctx, records); err != nil {
		return err
	}

	session.Printf("Exported %d transactions to %s\n", len(records), filename)
	return nil
}

// RemoveCommand deletes one transaction by id. The freed id is never
// reassigned.
type RemoveCommand struct{}

func (c *RemoveCommand) Key() string   { return "12" }
func (c *RemoveCommand) Name() string  { return "Remove" }
func (c *RemoveCommand) Title() string { return "Delete transaction by ID" }

func (c *RemoveCommand) Run(ctx context.Context, session *Session) error {
	input, err := session.Prompt("Transaction ID to delete: ")
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return &ledger.ValidationError{Field: "id", Reason: "must be an integer"}
	}

	if err := session.Store.Remove(id); err != nil {
		return err
	}
	session.Printf("Deleted transaction %d\n", id)
	return nil
}
