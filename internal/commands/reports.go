package commands

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/report"
)

// SummaryCommand prints the overall income/expense balance.
type SummaryCommand struct{}

func (c *SummaryCommand) Key() string   { return "7" }
func (c *SummaryCommand) Name() string  { return "Summary" }
func (c *SummaryCommand) Title() string { return "Show balance summary" }

func (c *SummaryCommand) Run(ctx context.Context, session *Session) error {
	session.Printf("%s\n", report.RenderSummary(session.Store.BalanceSummary()))
	return nil
}

// ChartCommand prints the monthly spending bar chart.
type ChartCommand struct{}

func (c *ChartCommand) Key() string   { return "8" }
func (c *ChartCommand) Name() string  { return "Chart" }
func (c *ChartCommand) Title() string { return "Monthly spending chart" }

func (c *ChartCommand) Run(ctx context.Context, session *Session) error {
	totals := session.Store.MonthlyExpenseTotals()
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("monthCount", len(totals))
	}

	session.Printf("\nMonthly spending chart:\n\n%s\n", report.RenderMonthlyChart(totals, session.ChartWidth))
	return nil
}
