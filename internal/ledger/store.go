package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SortKey selects the ordering for List.
type SortKey string

const (
	SortByID       SortKey = "id"
	SortByDate     SortKey = "date"
	SortByAmount   SortKey = "amount"
	SortByCategory SortKey = "category"
)

// ParseSortKey resolves a sort key string. Empty input means the default id
// ordering.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "":
		return SortByID, nil
	case SortByID, SortByDate, SortByAmount, SortByCategory:
		return key, nil
	}
	return "", &ValidationError{Field: "sort key", Reason: "must be id, date, amount or category"}
}

// Store is the in-memory transaction collection. It owns id assignment and
// every query operation; persistence and presentation stay outside.
//
// Insertion order is the canonical order. Sorted views are copies and never
// reorder the stored sequence. The store is single-writer by design, so no
// locking.
type Store struct {
	transactions []Transaction
	lastID       int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	return len(s.transactions)
}

// All returns the transactions in insertion order. The slice is a copy.
func (s *Store) All() []Transaction {
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Add validates the fields, assigns the next id, and appends the transaction.
// The assigned id is one past the largest id the store has ever held, so ids
// freed by Remove are never reissued.
func (s *Store) Add(date time.Time, amount decimal.Decimal, category string, ttype Type, description string) (Transaction, error) {
	if amount.IsNegative() {
		return Transaction{}, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	if !ttype.Valid() {
		return Transaction{}, &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
	if date.IsZero() {
		return Transaction{}, &ValidationError{Field: "date", Reason: "must be a valid calendar date"}
	}

	tx := Transaction{
		ID:          s.lastID + 1,
		Date:        calendarDay(date),
		Amount:      amount,
		Category:    category,
		Type:        ttype,
		Description: description,
	}
	s.transactions = append(s.transactions, tx)
	s.lastID = tx.ID
	return tx, nil
}

// FindByID returns the transaction with the given id, if present.
func (s *Store) FindByID(id int64) (Transaction, bool) {
	for _, tx := range s.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Remove deletes the transaction with the given id. The id is not reissued
// by later Add calls.
func (s *Store) Remove(id int64) error {
	for i, tx := range s.transactions {
		if tx.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove %d: %w", id, ErrNotFound)
}

// List returns all transactions ordered by the requested key. Equal keys keep
// insertion order regardless of direction.
func (s *Store) List(key SortKey, ascending bool) []Transaction {
	out := s.All()
	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out
}

func lessFunc(key SortKey) func(a, b Transaction) bool {
	switch key {
	case SortByDate:
		return func(a, b Transaction) bool { return a.Date.Before(b.Date) }
	case SortByAmount:
		return func(a, b Transaction) bool { return a.Amount.LessThan(b.Amount) }
	case SortByCategory:
		return func(a, b Transaction) bool {
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		}
	default:
		return func(a, b Transaction) bool { return a.ID < b.ID }
	}
}

// Search matches the keyword case-insensitively as a substring of category or
// description, in insertion order. An empty keyword matches nothing: quietly
// returning the whole store would be worse than returning none of it.
func (s *Store) Search(keyword string) []Transaction {
	if keyword == "" {
		return nil
	}
	kw := strings.ToLower(keyword)

	var out []Transaction
	for _, tx := range s.transactions {
		if strings.Contains(strings.ToLower(tx.Category), kw) ||
			strings.Contains(strings.ToLower(tx.Description), kw) {
			out = append(out, tx)
		}
	}
	return out
}

// FilterExpensesOver returns the expenses with amount strictly greater than
// the threshold, in insertion order. A negative threshold matches every
// expense since amounts are non-negative.
func (s *Store) FilterExpensesOver(threshold decimal.Decimal) []Transaction {
	var out []Transaction
	for _, tx := range s.transactions {
		if tx.Type == TypeExpense && tx.Amount.GreaterThan(threshold) {
			out = append(out, tx)
		}
	}
	return out
}

// FilterByCategory returns the transactions whose category matches
// case-insensitively, in insertion order.
func (s *Store) FilterByCategory(category string) []Transaction {
	var out []Transaction
	for _, tx := range s.transactions {
		if strings.EqualFold(tx.Category, category) {
			out = append(out, tx)
		}
	}
	return out
}

// FilterByDateRange returns the transactions between start and end inclusive.
// Either bound may be nil to leave that side open.
func (s *Store) FilterByDateRange(start, end *time.Time) []Transaction {
	var out []Transaction
	for _, tx := range s.transactions {
		if start != nil && tx.Date.Before(calendarDay(*start)) {
			continue
		}
		if end != nil && tx.Date.After(calendarDay(*end)) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// MonthlyExpenseTotals sums expense amounts grouped by YYYY-MM month key,
// chronologically ascending. Months without expenses are omitted.
func (s *Store) MonthlyExpenseTotals() []MonthTotal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range s.transactions {
		if tx.Type != TypeExpense {
			continue
		}
		key := tx.Date.Format("2006-01")
		totals[key] = totals[key].Add(tx.Amount)
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	out := make([]MonthTotal, len(months))
	for i, month := range months {
		out[i] = MonthTotal{Month: month, Total: totals[month]}
	}
	return out
}

// BalanceSummary totals income and expenses across the whole store.
func (s *Store) BalanceSummary() Summary {
	var summary Summary
	for _, tx := range s.transactions {
		switch tx.Type {
		case TypeIncome:
			summary.Income = summary.Income.Add(tx.Amount)
		case TypeExpense:
			summary.Expenses = summary.Expenses.Add(tx.Amount)
		}
	}
	summary.Savings = summary.Income.Sub(summary.Expenses)
	return summary
}

// LoadFrom replaces the whole sequence with the given records. The entire
// batch is validated before any state changes, so a failed load leaves the
// store exactly as it was.
func (s *Store) LoadFrom(records []Record) error {
	loaded := make([]Transaction, len(records))
	seen := make(map[int64]struct{}, len(records))
	var maxID int64

	for i, rec := range records {
		tx, err := fromRecord(rec)
		if err != nil {
			return &FormatError{Index: i, Err: err}
		}
		if _, dup := seen[tx.ID]; dup {
			return &FormatError{
				Index: i,
				Err:   &ValidationError{Field: "id", Reason: fmt.Sprintf("duplicate id %d", tx.ID)},
			}
		}
		seen[tx.ID] = struct{}{}
		if tx.ID > maxID {
			maxID = tx.ID
		}
		loaded[i] = tx
	}

	s.transactions = loaded
	s.lastID = maxID
	return nil
}

// ExportAll yields the current sequence as raw records in storage order.
func (s *Store) ExportAll() []Record {
	out := make([]Record, len(s.transactions))
	for i, tx := range s.transactions {
		out[i] = Record{
			ID:          tx.ID,
			Date:        tx.Date.Format(DateFormat),
			Amount:      tx.Amount,
			Category:    tx.Category,
			Type:        string(tx.Type),
			Description: tx.Description,
		}
	}
	return out
}

func fromRecord(rec Record) (Transaction, error) {
	if rec.ID < 1 {
		return Transaction{}, &ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	if rec.Amount.IsNegative() {
		return Transaction{}, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	ttype, err := ParseType(rec.Type)
	if err != nil {
		return Transaction{}, err
	}
	date, err := ParseDate(rec.Date)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		ID:          rec.ID,
		Date:        date,
		Amount:      rec.Amount,
		Category:    rec.Category,
		Type:        ttype,
		Description: rec.Description,
	}, nil
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
