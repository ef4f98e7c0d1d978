package main

import (
	"context"
	"errors"
	"os"
	"time"

	"dayboard/internal/amqp"
	"dayboard/internal/cli"
	"dayboard/internal/ledger"
	"dayboard/internal/log"
	gsheet "dayboard/internal/sheets/google"
	"dayboard/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentWorker)
	cfg := cli.LoadAndValidateConfig(logger)

	logger.Info("Starting dayboard-worker")

	kv := cli.OpenBackend(cfg, logger)
	defer kv.Close()
	transactions := ledger.NewTransactions(kv)

	// Sheets mirroring is optional; without it the worker only drains the
	// queue so messages do not pile up.
	var sheetsClient *gsheet.Client
	if cfg.GoogleSpreadsheetID != "" {
		var err error
		sheetsClient, err = gsheet.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", log.FieldError, err.Error())
			os.Exit(1)
		}
		logger.Info("Google Sheets client initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		logger.Info("Google Sheets disabled - no GOOGLE_SPREADSHEET_ID provided")
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPSyncQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err.Error())
		os.Exit(1)
	}
	defer amqpClient.Close()

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, nil)

	var syncWorker *worker.SyncWorker
	if sheetsClient != nil {
		syncWorker = worker.NewSyncWorker(transactions, sheetsClient, sheetsClient)

		logger.Info("Performing startup sync check...")
		if err := syncWorker.StartupSyncCheck(ctx); err != nil {
			logger.Error("Startup sync check failed", log.FieldError, err.Error())
			// Keep consuming; individual messages still sync.
		}

		// Periodic full re-sync covers messages lost while the worker
		// was down.
		go func() {
			ticker := time.NewTicker(cfg.SyncInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if err := syncWorker.StartupSyncCheck(ctx); err != nil {
						logger.Error("Periodic sync failed", log.FieldError, err.Error())
					}
				}
			}
		}()
	} else {
		logger.Info("Skipping sheet sync operations - no client available")
	}

	go func() {
		handler := func(msg *amqp.TransactionSyncMessage) error {
			if syncWorker == nil {
				logger.Debug("Dropping sync message, sheets disabled", "id", msg.ID)
				return nil
			}
			return syncWorker.HandleSyncMessage(ctx, msg)
		}
		if err := amqpClient.ConsumeTransactionSync(ctx, handler); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Message consumption failed", log.FieldError, err.Error())
		}
	}()

	cli.WaitForShutdown(ctx, done)
}
