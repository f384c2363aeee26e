package exports

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

// Column order matches the on-screen table.
var headers = []string{"Amount", "Category", "Date", "Time"}

var columnWidths = map[string]float64{
	"A": 12,
	"B": 18,
	"C": 14,
	"D": 12,
}

type config interface {
	DefaultPath() string
	SheetName() string
}

type Writer struct {
	defaultPath string
	sheet       string
}

func NewWriter(config config) *Writer {
	return &Writer{
		defaultPath: config.DefaultPath(),
		sheet:       config.SheetName(),
	}
}

// DefaultPath is where the session saves when no destination is given.
func (w *Writer) DefaultPath() string {
	return w.defaultPath
}

// Export writes one header row and one row per record to an xlsx workbook
// at destination. Amounts are written as plain numbers; date and time stay
// display-formatted strings. The write is a single SaveAs call: on failure
// the destination's state is undefined.
func (w *Writer) Export(records []expense.Record, destination string) error {
	logger.Info("export expenses",
		zap.Int("records", len(records)), zap.String("destination", destination))

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("closing workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", w.sheet); err != nil {
		return errors.Wrap(err, "export expenses")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "export expenses")
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err = f.SetCellValue(w.sheet, cell, header); err != nil {
			return errors.Wrap(err, "export expenses")
		}
	}
	if err = f.SetCellStyle(w.sheet, "A1", "D1", headerStyle); err != nil {
		return errors.Wrap(err, "export expenses")
	}

	for i, rec := range records {
		row := i + 2
		cells := map[string]interface{}{
			fmt.Sprintf("A%d", row): rec.Amount,
			fmt.Sprintf("B%d", row): rec.Category,
			fmt.Sprintf("C%d", row): rec.DateString(),
			fmt.Sprintf("D%d", row): rec.TimeString(),
		}
		for cell, value := range cells {
			if err = f.SetCellValue(w.sheet, cell, value); err != nil {
				return errors.Wrap(err, "export expenses")
			}
		}
	}

	for col, width := range columnWidths {
		if err = f.SetColWidth(w.sheet, col, col, width); err != nil {
			return errors.Wrap(err, "export expenses")
		}
	}

	return errors.Wrap(f.SaveAs(destination), "export expenses")
}
