package commands

import (
	"context"
	"strings"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/report"
)

// ListCommand prints all transactions in the requested sort order.
type ListCommand struct{}

func (c *ListCommand) Key() string   { return "2" }
func (c *ListCommand) Name() string  { return "List" }
func (c *ListCommand) Title() string { return "List transactions" }

func (c *ListCommand) Run(ctx context.Context, session *Session) error {
	keyInput, err := session.Prompt("Sort by (id/date/amount/category, enter for id): ")
	if err != nil {
		return err
	}
	sortKey, err := ledger.ParseSortKey(keyInput)
	if err != nil {
		return err
	}

	reverseInput, err := session.Prompt("Reverse order? (y/N) ")
	if err != nil {
		return err
	}
	ascending := !strings.EqualFold(reverseInput, "y")

	transactions := session.Store.List(sortKey, ascending)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	session.Printf("%s\n", report.RenderTable(transactions))
	return nil
}
