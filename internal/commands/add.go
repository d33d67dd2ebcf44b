package commands

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

// AddCommand records a new transaction from prompted input.
type AddCommand struct{}

func (c *AddCommand) Key() string   { return "1" }
func (c *AddCommand) Name() string  { return "Add" }
func (c *AddCommand) Title() string { return "Add transaction" }

func (c *AddCommand) Run(ctx context.Context, session *Session) error {
	dateInput, err := session.Prompt("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	date, err := ledger.ParseDate(dateInput)
	if err != nil {
		return err
	}

	amountInput, err := session.Prompt("Amount: ")
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(amountInput)
	if err != nil {
		return &ledger.ValidationError{Field: "amount", Reason: "must be a number"}
	}

	typeInput, err := session.Prompt("Type (income/expense): ")
	if err != nil {
		return err
	}
	ttype, err := ledger.ParseType(typeInput)
	if err != nil {
		return err
	}

	category, err := session.Prompt("Category: ")
	if err != nil {
		return err
	}
	if category == "" {
		category = "Uncategorized"
	}

	description, err := session.Prompt("Description: ")
	if err != nil {
		return err
	}

	tx, err := session.Store.Add(date, amount, category, ttype, description)
	if err != nil {
		return err
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", tx.ID)
	}
	session.Printf("Added transaction ID %d\n", tx.ID)
	return nil
}
