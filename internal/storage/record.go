package storage

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

// Record is the persisted JSON shape: the data file is a flat array of these
// with no envelope or version metadata. Amount is a JSON number.
type Record struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
}

// ToLedger converts persisted records into the raw shape the store loads.
// Missing text fields simply come through as empty strings.
func ToLedger(records []Record) []ledger.Record {
	out := make([]ledger.Record, len(records))
	for i, rec := range records {
		out[i] = ledger.Record{
			ID:          rec.ID,
			Date:        rec.Date,
			Amount:      decimal.NewFromFloat(rec.Amount),
			Category:    rec.Category,
			Type:        rec.Type,
			Description: rec.Description,
		}
	}
	return out
}

// FromLedger converts a store export back into the persisted shape.
func FromLedger(records []ledger.Record) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = Record{
			ID:          rec.ID,
			Date:        rec.Date,
			Amount:      rec.Amount.InexactFloat64(),
			Category:    rec.Category,
			Type:        rec.Type,
			Description: rec.Description,
		}
	}
	return out
}
