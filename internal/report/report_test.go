package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

func TestRenderMonthlyChart_Empty(t *testing.T) {
	assert.Equal(t, "(no expense data to chart)", RenderMonthlyChart(nil, 40))
}

func TestRenderMonthlyChart_ScalesToLargestMonth(t *testing.T) {
	totals := []ledger.MonthTotal{
		{Month: "2025-01", Total: decimal.NewFromInt(100)},
		{Month: "2025-02", Total: decimal.NewFromInt(50)},
		{Month: "2025-03", Total: decimal.NewFromInt(1)},
	}

	chart := RenderMonthlyChart(totals, 40)
	lines := strings.Split(chart, "\n")
	assert.Len(t, lines, 3)

	assert.Equal(t, 40, strings.Count(lines[0], "█"), "largest month fills the full width")
	assert.Equal(t, 20, strings.Count(lines[1], "█"))
	assert.Equal(t, 1, strings.Count(lines[2], "█"), "tiny months still get one bar rune")

	assert.True(t, strings.HasPrefix(lines[0], "2025-01 | "))
	assert.True(t, strings.HasSuffix(lines[0], "100.00"))
}

func TestRenderMonthlyChart_BadWidthFallsBackToDefault(t *testing.T) {
	totals := []ledger.MonthTotal{{Month: "2025-01", Total: decimal.NewFromInt(10)}}

	chart := RenderMonthlyChart(totals, 0)
	assert.Equal(t, DefaultChartWidth, strings.Count(chart, "█"))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "No transactions found.", RenderTable(nil))
}

func TestRenderTable_RowsAndHeader(t *testing.T) {
	date, err := ledger.ParseDate("2025-01-05")
	assert.NoError(t, err)

	table := RenderTable([]ledger.Transaction{
		{
			ID:          2,
			Date:        date,
			Amount:      decimal.RequireFromString("45.20"),
			Category:    "Groceries",
			Type:        ledger.TypeExpense,
			Description: "Walmart shopping",
		},
	})

	lines := strings.Split(table, "\n")
	assert.Len(t, lines, 3, "header, separator, one row")
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "Description")
	assert.Contains(t, lines[2], "2025-01-05")
	assert.Contains(t, lines[2], "45.20")
	assert.Contains(t, lines[2], "Walmart shopping")
}

func TestRenderTable_TruncatesLongCategories(t *testing.T) {
	date, _ := ledger.ParseDate("2025-01-05")

	table := RenderTable([]ledger.Transaction{
		{ID: 1, Date: date, Amount: decimal.NewFromInt(1), Category: "AVeryLongCategoryName", Type: ledger.TypeExpense},
	})

	assert.Contains(t, table, "AVeryLongCatego")
	assert.NotContains(t, table, "AVeryLongCategoryName")
}

func TestRenderSummary(t *testing.T) {
	summary := ledger.Summary{
		Income:   decimal.RequireFromString("3000"),
		Expenses: decimal.RequireFromString("165.20"),
		Savings:  decimal.RequireFromString("2834.80"),
	}

	assert.Equal(t, "Income: 3000.00  Expenses: 165.20  Net/Savings: 2834.80", RenderSummary(summary))
}
