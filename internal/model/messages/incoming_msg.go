package messages

import (
	"time"

	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/logger"
)

const somethingWrongMessage = "Sorry, something went wrong..."

type messageSender interface {
	SendMessage(text string) error
}

type Service struct {
	sender  messageSender
	handler *HandlerService
}

func NewService(
	sender messageSender,
	ledger expenseLedger,
	palette categoryPalette,
	exporter expenseExporter,
	generator reportGenerator,
	config config,
) *Service {
	return &Service{
		sender:  sender,
		handler: newHandler(ledger, palette, exporter, generator, config),
	}
}

type Message struct {
	Text string
}

// HandleIncomingMessage runs one user action and replies with the outcome.
// Every failure is surfaced as a reply; none ends the session.
func (s *Service) HandleIncomingMessage(msg Message) error {
	start := time.Now()
	err := s.handle(msg)
	logger.Info("message handled",
		zap.Duration("elapsed", time.Since(start)), zap.Bool("failed", err != nil))
	return err
}

func (s *Service) handle(msg Message) error {
	resp, err := s.handler.HandleMessage(msg.Text)
	if err != nil {
		if resp == "" {
			resp = somethingWrongMessage
		}
		_ = s.sender.SendMessage(resp)
		return err
	}
	return s.sender.SendMessage(resp)
}
