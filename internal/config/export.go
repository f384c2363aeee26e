package config

const (
	defaultExportPath = "data/expenses.xlsx"
	defaultSheetName  = "Expenses"
)

type ExportConfig struct {
	Path  string `yaml:"path"`
	Sheet string `yaml:"sheet"`
}

func (s *ExportConfig) DefaultPath() string {
	if s.Path == "" {
		return defaultExportPath
	}
	return s.Path
}

func (s *ExportConfig) SheetName() string {
	if s.Sheet == "" {
		return defaultSheetName
	}
	return s.Sheet
}
