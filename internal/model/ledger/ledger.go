package ledger

import (
	"strings"
	"time"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

// Ledger is the append-only in-memory record of the session's expenses.
// Insertion order is display order. Records are never edited or removed
// and live until the process exits.
type Ledger struct {
	records []expense.Record
}

func New() *Ledger {
	return &Ledger{records: make([]expense.Record, 0)}
}

// Append stores a new record and returns its index. The category must be
// non-empty after trimming. Amounts are stored as given: the entry form
// only rejects input that does not parse as a number.
func (l *Ledger) Append(amount float64, category string, created time.Time) (int, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return 0, &customerr.ValidationError{Err: "expense category is empty"}
	}
	l.records = append(l.records, expense.Record{
		Amount:   amount,
		Category: category,
		Created:  created,
	})
	return len(l.records) - 1, nil
}

// All returns the records in insertion order. The slice is a copy; records
// already appended are immutable.
func (l *Ledger) All() []expense.Record {
	res := make([]expense.Record, len(l.records))
	copy(res, l.records)
	return res
}

func (l *Ledger) Len() int {
	return len(l.records)
}
