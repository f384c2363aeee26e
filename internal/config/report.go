package config

const (
	defaultChartPath  = "data/report.png"
	defaultChartTitle = "Expense Distribution"
)

type ReportConfig struct {
	Path  string `yaml:"chart-path"`
	Title string `yaml:"chart-title"`
}

func (s *ReportConfig) ChartPath() string {
	if s.Path == "" {
		return defaultChartPath
	}
	return s.Path
}

func (s *ReportConfig) ChartTitle() string {
	if s.Title == "" {
		return defaultChartTitle
	}
	return s.Title
}
