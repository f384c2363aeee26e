package exports

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	appconfig "max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func newTestWriter() *Writer {
	return NewWriter(&appconfig.ExportConfig{Path: "data/expenses.xlsx", Sheet: "Expenses"})
}

func Test_OnExport_ShouldWriteHeaderAndOneRowPerRecord(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "expenses.xlsx")
	created := time.Date(2024, 11, 2, 15, 4, 5, 0, time.UTC)

	err := newTestWriter().Export([]expense.Record{
		{Amount: 100, Category: "Food", Created: created},
		{Amount: 99.5, Category: "Travel", Created: created},
		{Amount: 30, Category: "Gifts", Created: created},
	}, dest)
	assert.NoError(t, err)

	f, err := excelize.OpenFile(dest)
	assert.NoError(t, err)
	defer func() {
		assert.NoError(t, f.Close())
	}()

	rows, err := f.GetRows("Expenses")
	assert.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, []string{"Amount", "Category", "Date", "Time"}, rows[0])
	assert.Equal(t, []string{"100", "Food", "02/11/2024", "15:04:05"}, rows[1])
	assert.Equal(t, []string{"99.5", "Travel", "02/11/2024", "15:04:05"}, rows[2])
	assert.Equal(t, []string{"30", "Gifts", "02/11/2024", "15:04:05"}, rows[3])
}

func Test_OnExport_WithNoRecords_ShouldWriteHeaderOnly(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "expenses.xlsx")

	err := newTestWriter().Export(nil, dest)
	assert.NoError(t, err)

	f, err := excelize.OpenFile(dest)
	assert.NoError(t, err)
	defer func() {
		assert.NoError(t, f.Close())
	}()

	rows, err := f.GetRows("Expenses")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func Test_OnExport_ToUnwritableDestination_ShouldFail(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "missing", "expenses.xlsx")

	err := newTestWriter().Export([]expense.Record{
		{Amount: 1, Category: "Food", Created: time.Now()},
	}, dest)

	assert.Error(t, err)
}
