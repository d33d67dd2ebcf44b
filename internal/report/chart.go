package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

// DefaultChartWidth is the bar width given to the largest month.
const DefaultChartWidth = 40

// RenderMonthlyChart draws one bar per month, scaled so the largest month
// fills maxWidth runes. Every month shown has a nonzero total, so every bar
// gets at least one rune.
func RenderMonthlyChart(totals []ledger.MonthTotal, maxWidth int) string {
	if len(totals) == 0 {
		return "(no expense data to chart)"
	}
	if maxWidth < 1 {
		maxWidth = DefaultChartWidth
	}

	maxTotal := totals[0].Total
	for _, mt := range totals[1:] {
		if mt.Total.GreaterThan(maxTotal) {
			maxTotal = mt.Total
		}
	}

	lines := make([]string, len(totals))
	for i, mt := range totals {
		width := 0
		if maxTotal.IsPositive() {
			width = int(mt.Total.Div(maxTotal).Mul(decimal.NewFromInt(int64(maxWidth))).IntPart())
		}
		if width < 1 {
			width = 1
		}
		lines[i] = fmt.Sprintf("%s | %s %s", mt.Month, strings.Repeat("█", width), mt.Total.StringFixed(2))
	}
	return strings.Join(lines, "\n")
}
