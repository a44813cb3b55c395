package store

import (
	"encoding/json"
	"time"

	"outlay/internal/core"
)

// expenseRecord is the serialized form of a record inside the blob: a
// self-describing JSON object with a decimal amount and an RFC 3339
// creation timestamp. There is no schema version field.
type expenseRecord struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

func encodeExpenses(items []core.Expense) ([]byte, error) {
	records := make([]expenseRecord, len(items))
	for i, e := range items {
		records[i] = expenseRecord{
			ID:          e.ID,
			Amount:      e.Amount.Float(),
			Category:    e.Category,
			Date:        e.Date,
			Description: e.Description,
			Timestamp:   e.Timestamp,
		}
	}
	return json.Marshal(records)
}

func decodeExpenses(data []byte) ([]core.Expense, error) {
	var records []expenseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	items := make([]core.Expense, len(records))
	for i, r := range records {
		items[i] = core.Expense{
			ID:          r.ID,
			Amount:      core.Money{Cents: core.CentsFromFloat(r.Amount)},
			Category:    r.Category,
			Date:        r.Date,
			Description: r.Description,
			Timestamp:   r.Timestamp,
		}
	}
	return items, nil
}
