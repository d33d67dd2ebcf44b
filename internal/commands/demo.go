package commands

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/report"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Demo runs the non-interactive showcase used when stdin is not a terminal:
// load the sample set, print the sorted listing, the large expenses, the
// balance summary, and the monthly chart.
func Demo(ctx context.Context, session *Session) error {
	if err := session.Store.LoadFrom(storage.ToLedger(storage.SampleRecords())); err != nil {
		return err
	}

	session.Printf("All transactions (by date):\n%s\n\n",
		report.RenderTable(session.Store.List(ledger.SortByDate, true)))

	session.Printf("Expenses over 100:\n%s\n\n",
		report.RenderTable(session.Store.FilterExpensesOver(decimal.NewFromInt(100))))

	session.Printf("Balance summary:\n%s\n\n",
		report.RenderSummary(session.Store.BalanceSummary()))

	session.Printf("Monthly spending chart:\n\n%s\n",
		report.RenderMonthlyChart(session.Store.MonthlyExpenseTotals(), session.ChartWidth))

	return nil
}
