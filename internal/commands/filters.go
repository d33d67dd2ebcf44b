package commands

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/report"
)

// ExpensesOverCommand lists expenses strictly above a threshold.
type ExpensesOverCommand struct{}

func (c *ExpensesOverCommand) Key() string   { return "4" }
func (c *ExpensesOverCommand) Name() string  { return "ExpensesOver" }
func (c *ExpensesOverCommand) Title() string { return "Filter: expenses over X" }

func (c *ExpensesOverCommand) Run(ctx context.Context, session *Session) error {
	input, err := session.Prompt("Show expenses over: ")
	if err != nil {
		return err
	}
	threshold, err := decimal.NewFromString(input)
	if err != nil {
		return &ledger.ValidationError{Field: "threshold", Reason: "must be a number"}
	}

	session.Printf("%s\n", report.RenderTable(session.Store.FilterExpensesOver(threshold)))
	return nil
}

// ByCategoryCommand lists transactions with a matching category.
type ByCategoryCommand struct{}

func (c *ByCategoryCommand) Key() string   { return "5" }
func (c *ByCategoryCommand) Name() string  { return "ByCategory" }
func (c *ByCategoryCommand) Title() string { return "Filter by category" }

func (c *ByCategoryCommand) Run(ctx context.Context, session *Session) error {
	category, err := session.Prompt("Category to filter by: ")
	if err != nil {
		return err
	}

	session.Printf("%s\n", report.RenderTable(session.Store.FilterByCategory(category)))
	return nil
}

// DateRangeCommand lists transactions within an inclusive date range. Either
// bound may be left blank to keep that side open.
type DateRangeCommand struct{}

func (c *DateRangeCommand) Key() string   { return "6" }
func (c *DateRangeCommand) Name() string  { return "DateRange" }
func (c *DateRangeCommand) Title() string { return "Filter by date range" }

func (c *DateRangeCommand) Run(ctx context.Context, session *Session) error {
	start, err := promptOptionalDate(session, "Start date (YYYY-MM-DD) or blank: ")
	if err != nil {
		return err
	}
	end, err := promptOptionalDate(session, "End date (YYYY-MM-DD) or blank: ")
	if err != nil {
		return err
	}

	session.Printf("%s\n", report.RenderTable(session.Store.FilterByDateRange(start, end)))
	return nil
}

func promptOptionalDate(session *Session, label string) (*time.Time, error) {
	input, err := session.Prompt(label)
	if err != nil {
		return nil, err
	}
	if input == "" {
		return nil, nil
	}
	date, err := ledger.ParseDate(input)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
