package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-day layout used for user input, persisted
// records, and month keys.
const DateFormat = "2006-01-02"

// Type classifies a transaction as money in or money out.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is one of the two known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// ParseType normalizes and validates a transaction type string.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
	return t, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: "must be a YYYY-MM-DD calendar date"}
	}
	return date, nil
}

// Transaction is one recorded income or expense event.
type Transaction struct {
	ID          int64
	Date        time.Time // calendar day, midnight UTC
	Amount      decimal.Decimal
	Category    string
	Type        Type
	Description string
}

// Record is the raw, unvalidated shape exchanged with the persistence
// collaborator. Date and Type stay strings until LoadFrom validates them.
type Record struct {
	ID          int64
	Date        string
	Amount      decimal.Decimal
	Category    string
	Type        string
	Description string
}

// MonthTotal is the expense total for one YYYY-MM month key.
type MonthTotal struct {
	Month string
	Total decimal.Decimal
}

// Summary holds the overall income and expense totals and their difference.
type Summary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
}
