package messages

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"

	appconfig "max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/model/exports"
	"max.ks1230/expense-tracker/internal/model/ledger"
	"max.ks1230/expense-tracker/internal/model/messages/mock"
	"max.ks1230/expense-tracker/internal/model/reports"
)

type testEnv struct {
	sender    *mock.MessageSenderMock
	book      *ledger.Ledger
	palette   *category.Palette
	service   *Service
	chartPath string
}

func newTestEnv(t *testing.T, m *minimock.Controller) *testEnv {
	t.Helper()
	dir := t.TempDir()

	cfg := mock.NewConfigMock(m)
	cfg.CurrencySymbolMock.Return("₹")

	sender := mock.NewMessageSenderMock(m)
	book := ledger.New()
	palette := category.NewPalette(category.Defaults())
	writer := exports.NewWriter(&appconfig.ExportConfig{Path: filepath.Join(dir, "expenses.xlsx")})
	chartPath := filepath.Join(dir, "report.png")
	generator := reports.NewGenerator(&appconfig.ReportConfig{Path: chartPath})

	return &testEnv{
		sender:    sender,
		book:      book,
		palette:   palette,
		service:   NewService(sender, book, palette, writer, generator, cfg),
		chartPath: chartPath,
	}
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	env := newTestEnv(t, m)

	env.sender.SendMessageMock.Expect(helloMessage).Return(nil)

	err := env.service.HandleIncomingMessage(Message{Text: "/start"})
	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpHint(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	env := newTestEnv(t, m)

	env.sender.SendMessageMock.Expect(dontUnderstandMessage).Return(nil)

	err := env.service.HandleIncomingMessage(Message{Text: "/none"})
	assert.NoError(t, err)
}

func Test_OnAddCommand_ShouldAppendExpense(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	env := newTestEnv(t, m)

	env.sender.SendMessageMock.Expect(addedMessage).Return(nil)

	err := env.service.HandleIncomingMessage(Message{Text: "/add 120.50 Food"})
	assert.NoError(t, err)
	assert.Equal(t, 1, env.book.Len())

	rec := env.book.All()[0]
	assert.Equal(t, 120.5, rec.Amount)
	assert.Equal(t, "Food", rec.Category)
}

func Test_OnAddCommandWithBadAmount_ShouldRejectExpense(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	env := newTestEnv(t, m)

	env.sender.SendMessageMock.Expect(incorrectAmountMessage).Return(nil)

	err := env.service.HandleIncomingMessage(Message{Text: "/add lots Food"})
	assert.Error(t, err)
	assert.Equal(t, 0, env.book.Len())
}

func Test_OnAddCommandWithUnknownCategory_ShouldOfferPresets(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	env := newTestEnv(t, m)

	env.sender.SendMessageMock.
		Expect(fmt.Sprintf(unknownCategoryMessage, "Food, Travel, Utilities, Entertainment, Others")).
		Return(nil)

	err := env.service.HandleIncomingMessage(Message{Text: "/add 10 Rent"})
	assert.NoError(t, err)
	assert.Equal(t, 0, env.book.Len())
}

func Test_OnAddOthersWithoutName_ShouldPromptForCustomCategory(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	env := newTestEnv(t, m)

	env.sender.SendMessageMock.Expect(needCustomCategoryMessage).Return(nil)

	err := env.service.HandleIncomingMessage(Message{Text: "/add 50 Others"})
	assert.NoError(t, err)
	assert.Equal(t, 0, env.book.Len())
}

func Test_OnAddOthersWithName_ShouldCreateAndRememberCategory(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	env := newTestEnv(t, m)

	env.sender.SendMessageMock.Expect(addedMessage).Return(nil)

	err := env.service.HandleIncomingMessage(Message{Text: "/add 50 Others Gifts"})
	assert.NoError(t, err)
	assert.Equal(t, "Gifts", env.book.All()[0].Category)
	assert.True(t, env.palette.Contains("Gifts"))

	// the new category is selectable without retyping the custom name
	err = env.service.HandleIncomingMessage(Message{Text: "/add 10 Gifts"})
	assert.NoError(t, err)
	assert.Equal(t, 2, env.book.Len())
}

func Test_OnCategoriesCommand_ShouldListPresets(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	env := newTestEnv(t, m)

	env.sender.SendMessageMock.
		Expect("Categories: Food, Travel, Utilities, Entertainment, Others").
		Return(nil)

	err := env.service.HandleIncomingMessage(Message{Text: "/categories"})
	assert.NoError(t, err)
}

func Test_OnSaveWithNoExpenses_ShouldNotice(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	env := newTestEnv(t, m)

	env.sender.SendMessageMock.Expect(noExpensesMessage).Return(nil)

	err := env.service.HandleIncomingMessage(Message{Text: "/save"})
	assert.NoError(t, err)
}

func Test_OnReportWithNoExpenses_ShouldSkipChart(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	env := newTestEnv(t, m)

	env.sender.SendMessageMock.Expect(noExpensesMessage).Return(nil)

	err := env.service.HandleIncomingMessage(Message{Text: "/report"})
	assert.NoError(t, err)

	_, statErr := os.Stat(env.chartPath)
	assert.True(t, os.IsNotExist(statErr))
}

func Test_OnSaveCommand_ShouldWriteWorkbook(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	env := newTestEnv(t, m)

	var replies []string
	env.sender.SendMessageMock.Set(func(text string) error {
		replies = append(replies, text)
		return nil
	})

	dest := filepath.Join(t.TempDir(), "out.xlsx")
	assert.NoError(t, env.service.HandleIncomingMessage(Message{Text: "/add 100 Food"}))
	assert.NoError(t, env.service.HandleIncomingMessage(Message{Text: "/save " + dest}))

	assert.Contains(t, replies[1], "Saved 1 expense(s)")
	_, err := os.Stat(dest)
	assert.NoError(t, err)
}

func Test_OnReportCommand_ShouldRenderChartAndSummarize(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	env := newTestEnv(t, m)

	var replies []string
	env.sender.SendMessageMock.Set(func(text string) error {
		replies = append(replies, text)
		return nil
	})

	assert.NoError(t, env.service.HandleIncomingMessage(Message{Text: "/add 100 Food"}))
	assert.NoError(t, env.service.HandleIncomingMessage(Message{Text: "/add 50 Food"}))
	assert.NoError(t, env.service.HandleIncomingMessage(Message{Text: "/add 30 Travel"}))
	assert.NoError(t, env.service.HandleIncomingMessage(Message{Text: "/report"}))

	assert.Contains(t, replies[3], "Food: 150.00")
	assert.Contains(t, replies[3], "Total: 180.00")
	_, err := os.Stat(env.chartPath)
	assert.NoError(t, err)
}

func Test_OnReportCommandWithBadPeriod_ShouldOfferPeriods(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	env := newTestEnv(t, m)

	env.sender.SendMessageMock.
		Expect(fmt.Sprintf(incorrectPeriodMessage, "month, week, year")).
		Return(nil)

	err := env.service.HandleIncomingMessage(Message{Text: "/report decade"})
	assert.NoError(t, err)
}
