package main

import (
	"os"
	"time"

	"dayboard/internal/amqp"
	"dayboard/internal/cli"
	"dayboard/internal/log"
	"dayboard/internal/services"
	"dayboard/internal/trackers"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentReminder)
	cfg := cli.LoadAndValidateConfig(logger)

	logger.Info("Starting reminder-worker")

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required, the reminder worker only publishes to the broker")
		os.Exit(1)
	}

	kv := cli.OpenBackend(cfg, logger)
	defer kv.Close()

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPReminderQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err.Error())
		os.Exit(1)
	}
	defer amqpClient.Close()

	processor := services.NewReminderProcessor(trackers.NewReminders(kv), amqpClient)

	ctx, done := cli.GracefulShutdown(logger, 10*time.Second, nil)

	ticker := time.NewTicker(cfg.ReminderInterval)
	defer ticker.Stop()

	logger.Info("Reminder worker running", "interval", cfg.ReminderInterval.String())
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				published, err := processor.ProcessDueReminders(ctx, time.Now())
				if err != nil {
					logger.Error("Reminder processing failed", log.FieldError, err.Error())
					continue
				}
				if published > 0 {
					logger.Info("Published due reminders", "count", published)
				}
			}
		}
	}()

	cli.WaitForShutdown(ctx, done)
}
