package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/clients/term"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/entity/category"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/clock"
	"max.ks1230/expense-tracker/internal/model/exports"
	"max.ks1230/expense-tracker/internal/model/ledger"
	"max.ks1230/expense-tracker/internal/model/messages"
	"max.ks1230/expense-tracker/internal/model/reports"
)

func main() {
	logger.Info("Tracker init - start")

	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	book := ledger.New()
	palette := category.NewPalette(conf.App().Categories())
	writer := exports.NewWriter(conf.Export())
	generator := reports.NewGenerator(conf.Report())

	display := clock.NewDisplay(conf.App())
	client := term.New(os.Stdin, os.Stdout, display)
	msgService := messages.NewService(client, book, palette, writer, generator, conf.App())

	logger.Info("Tracker init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go display.Run(ctx)
	client.Listen(ctx, msgService)
}
