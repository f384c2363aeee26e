package reports

import (
	"sort"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

// CategoryTotal is one aggregated report line.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// TotalsByCategory groups the records by category, summing amounts.
// Categories with no records are absent. Empty input yields an empty map;
// callers treat that as nothing to report, not an error.
func TotalsByCategory(exps []expense.Record) map[string]float64 {
	m := make(map[string]float64)
	for _, exp := range exps {
		m[exp.Category] += exp.Amount
	}
	return m
}

func rankTotals(m map[string]float64) ([]CategoryTotal, float64) {
	records := make([]CategoryTotal, 0, len(m))
	total := 0.0
	for cat, am := range m {
		records = append(records, CategoryTotal{Category: cat, Amount: am})
		total += am
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Amount > records[j].Amount
	})
	return records, total
}
