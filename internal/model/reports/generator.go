package reports

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

// Period boundaries are computed per request so a long-running session
// does not report against stale week/month starts.
var reportFilters = map[string]func() time.Time{
	"":      func() time.Time { return time.Time{} },
	"week":  now.BeginningOfWeek,
	"month": now.BeginningOfMonth,
	"year":  now.BeginningOfYear,
}

type config interface {
	ChartPath() string
	ChartTitle() string
}

type Generator struct {
	chartPath  string
	chartTitle string
}

func NewGenerator(config config) *Generator {
	return &Generator{
		chartPath:  config.ChartPath(),
		chartTitle: config.ChartTitle(),
	}
}

// Report is the aggregated view of the ledger for one period: totals per
// category, largest first, plus the grand total and the rendered chart.
type Report struct {
	Totals    []CategoryTotal
	Total     float64
	Period    string
	ChartPath string
}

func (r *Report) Empty() bool {
	return len(r.Totals) == 0
}

// Summary formats the report as text, one category per line, largest first.
func (r *Report) Summary() string {
	res := make([]string, 0, len(r.Totals)+2)
	for _, rec := range r.Totals {
		res = append(res, fmt.Sprintf("%s: %.2f", rec.Category, rec.Amount))
	}
	res = append(res, "", fmt.Sprintf("Total: %.2f", r.Total))
	return strings.Join(res, "\n")
}

// Generate aggregates the records for the period and renders the pie chart
// to the configured path. No records after filtering means an empty report
// and no chart file written.
func (g *Generator) Generate(exps []expense.Record, period string) (*Report, error) {
	logger.Info("Generate report - start",
		zap.String("period", period), zap.Int("records", len(exps)))
	defer logger.Info("Generate report - end")

	filter, ok := reportFilters[period]
	if !ok {
		return nil, errors.Wrap(
			fmt.Errorf("report period %q is not supported", period),
			"generate report",
		)
	}
	exps = filterExpensesAfter(exps, filter())

	totals := TotalsByCategory(exps)
	if len(totals) == 0 {
		return &Report{Period: period}, nil
	}

	ranked, total := rankTotals(totals)
	if err := renderPie(g.chartTitle, ranked, total, g.chartPath); err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	return &Report{
		Totals:    ranked,
		Total:     total,
		Period:    period,
		ChartPath: g.chartPath,
	}, nil
}

func filterExpensesAfter(exps []expense.Record, after time.Time) []expense.Record {
	res := make([]expense.Record, 0)
	for _, exp := range exps {
		if after.Before(exp.Created) {
			res = append(res, exp)
		}
	}
	return res
}

func ValidPeriod(period string) bool {
	_, ok := reportFilters[period]
	return ok
}

func Periods() []string {
	res := make([]string, 0, len(reportFilters))
	for k := range reportFilters {
		if k != "" {
			res = append(res, k)
		}
	}
	sort.Strings(res)
	return res
}
