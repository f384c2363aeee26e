package messages

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const (
	helloMessage = "Welcome to the expense tracker 👋 Type /help to see what I can do"
	helpMessage  = `Here is what I can do:
/add <amount> <category> - log an expense, stamped with the current time
/add <amount> Others <name> - log an expense under a new category
/list - show all expenses of this session
/categories - show selectable categories
/report [week|month|year] - build a pie chart of your spending
/save [path] - save the expenses to an Excel file
/quit - leave`
	dontUnderstandMessage = "I don't understand that. Try /help"
	addedMessage          = "Expense added!"
	savedMessage          = "Saved %d expense(s) to %s"
	chartMessage          = "%s\n\nChart saved to %s"
	noExpensesMessage     = "You have no expenses yet"

	incorrectUsageMessage     = "That is an incorrect command usage. Try /help"
	incorrectAmountMessage    = "Please enter a valid amount"
	unknownCategoryMessage    = "Pick one of the offered categories: %s"
	needCustomCategoryMessage = "Please specify a custom category name for 'Others'"
	incorrectPeriodMessage    = "Unknown report period. Should be one of: %s"
	cannotSaveMessage         = "Can't save your expenses to that file"
	cannotReportMessage       = "Can't build your report right now"
)

const (
	startCommand      = "/start"
	helpCommand       = "/help"
	addCommand        = "/add"
	listCommand       = "/list"
	categoriesCommand = "/categories"
	reportCommand     = "/report"
	saveCommand       = "/save"
)

type expenseLedger interface {
	Append(amount float64, category string, created time.Time) (int, error)
	All() []expense.Record
	Len() int
}

type categoryPalette interface {
	Add(name string) bool
	Contains(name string) bool
	List() []string
}

type expenseExporter interface {
	Export(records []expense.Record, destination string) error
	DefaultPath() string
}

type reportGenerator interface {
	Generate(records []expense.Record, period string) (*reports.Report, error)
}

type config interface {
	CurrencySymbol() string
}

type handler func(arg string) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	ledger      expenseLedger
	palette     categoryPalette
	exporter    expenseExporter
	generator   reportGenerator
	symbol      string
}

func newHandler(
	ledger expenseLedger,
	palette categoryPalette,
	exporter expenseExporter,
	generator reportGenerator,
	config config,
) *HandlerService {
	res := &HandlerService{
		handlersMap: nil,
		ledger:      ledger,
		palette:     palette,
		exporter:    exporter,
		generator:   generator,
		symbol:      config.CurrencySymbol(),
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(text string) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(arg)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[addCommand] = s.handleAdd
	m[listCommand] = s.handleList
	m[categoriesCommand] = s.handleCategories
	m[reportCommand] = s.handleReport
	m[saveCommand] = s.handleSave

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ string) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleHelp(_ string) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleAdd(arg string) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return incorrectUsageMessage, nil
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return incorrectAmountMessage, errors.Wrap(err, "handle add")
	}

	cat := args[1]
	if !s.palette.Contains(cat) {
		return fmt.Sprintf(unknownCategoryMessage, strings.Join(s.palette.List(), ", ")), nil
	}
	if cat == category.Others {
		custom := strings.TrimSpace(strings.Join(args[2:], " "))
		if custom == "" {
			return needCustomCategoryMessage, nil
		}
		cat = custom
	}

	if _, err = s.ledger.Append(amount, cat, time.Now()); err != nil {
		return "", errors.Wrap(err, "handle add")
	}
	s.palette.Add(cat)
	return addedMessage, nil
}

func (s *HandlerService) handleList(_ string) (string, error) {
	exps := s.ledger.All()
	if len(exps) == 0 {
		return noExpensesMessage, nil
	}
	return formatTable(exps, s.symbol)
}

func (s *HandlerService) handleCategories(_ string) (string, error) {
	return "Categories: " + strings.Join(s.palette.List(), ", "), nil
}

func (s *HandlerService) handleReport(arg string) (string, error) {
	period := strings.TrimSpace(arg)
	if !reports.ValidPeriod(period) {
		return fmt.Sprintf(incorrectPeriodMessage, strings.Join(reports.Periods(), ", ")), nil
	}
	if s.ledger.Len() == 0 {
		return noExpensesMessage, nil
	}

	report, err := s.generator.Generate(s.ledger.All(), period)
	if err != nil {
		return cannotReportMessage, errors.Wrap(err, "handle report")
	}
	if report.Empty() {
		return noExpensesMessage, nil
	}
	return fmt.Sprintf(chartMessage, report.Summary(), report.ChartPath), nil
}

func (s *HandlerService) handleSave(arg string) (string, error) {
	if s.ledger.Len() == 0 {
		return noExpensesMessage, nil
	}

	dest := strings.TrimSpace(arg)
	if dest == "" {
		dest = s.exporter.DefaultPath()
	}

	if err := s.exporter.Export(s.ledger.All(), dest); err != nil {
		return cannotSaveMessage, errors.Wrap(err, "handle save")
	}
	return fmt.Sprintf(savedMessage, s.ledger.Len(), dest), nil
}

func (s *HandlerService) handleNoCommand(_ string) (string, error) {
	return dontUnderstandMessage, nil
}
