package report

import (
	"fmt"
	"strings"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

// RenderTable formats transactions as a fixed-width table with a header row.
func RenderTable(transactions []ledger.Transaction) string {
	if len(transactions) == 0 {
		return "No transactions found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%3s  %-10s  %-7s  %10s  %-15s  %s\n", "ID", "Date", "Type", "Amount", "Category", "Description")
	b.WriteString(strings.Repeat("-", 80))
	for _, tx := range transactions {
		category := tx.Category
		if len(category) > 15 {
			category = category[:15]
		}
		fmt.Fprintf(&b, "\n%3d  %-10s  %-7s  %10s  %-15s  %s",
			tx.ID, tx.Date.Format(ledger.DateFormat), tx.Type, tx.Amount.StringFixed(2), category, tx.Description)
	}
	return b.String()
}

// RenderSummary formats the one-line balance summary.
func RenderSummary(s ledger.Summary) string {
	return fmt.Sprintf("Income: %s  Expenses: %s  Net/Savings: %s",
		s.Income.StringFixed(2), s.Expenses.StringFixed(2), s.Savings.StringFixed(2))
}
