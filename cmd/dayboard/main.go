package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"dayboard/internal/amqp"
	"dayboard/internal/cli"
	apphttp "dayboard/internal/http"
	"dayboard/internal/ledger"
	"dayboard/internal/log"
	"dayboard/internal/reading"
	"dayboard/internal/services"
	"dayboard/internal/trackers"
	"dayboard/internal/weather"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentApp)
	cfg := cli.LoadAndValidateConfig(logger)

	kv := cli.OpenBackend(cfg, logger)
	defer kv.Close()

	// The broker is optional. Without it transactions stay local and the
	// sheet mirror simply lags until the worker's startup sync.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPSyncQueue)
		if err != nil {
			logger.Warn("Failed to connect to AMQP, continuing without sheet sync", log.FieldError, err.Error())
			amqpClient = nil
		} else {
			defer amqpClient.Close()
			logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPSyncQueue)
		}
	} else {
		logger.Info("AMQP disabled, transactions will not sync to the sheet")
	}

	transactions := ledger.NewTransactions(kv)

	srv := apphttp.NewServer(":"+cfg.Port, apphttp.Deps{
		Transactions: services.NewTransactionService(transactions, amqpClient),
		Ledger:       transactions,
		Budgets:      ledger.NewBudgets(kv),
		Habits:       trackers.NewHabits(kv),
		Moods:        trackers.NewMoods(kv),
		Todos:        trackers.NewTodos(kv),
		Reminders:    trackers.NewReminders(kv),
		Journal:      trackers.NewJournal(kv),
		Quotes:       trackers.NewQuotes(kv),
		Reading:      reading.NewTracker(kv, logger),
		Weather:      weather.NewClient(cfg.WeatherBaseURL, cfg.GeocodeBaseURL, logger),
		Logger:       logger,
	})
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting dayboard server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", log.FieldError, err.Error())
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
