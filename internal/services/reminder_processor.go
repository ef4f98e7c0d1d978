package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dayboard/internal/amqp"
	"dayboard/internal/trackers"
)

// ReminderPublisher publishes due-reminder notifications.
type ReminderPublisher interface {
	PublishReminderDue(ctx context.Context, msg *amqp.ReminderDueMessage) error
}

// ReminderProcessor scans the reminder list for repeating entries that came
// due, publishes a notification for each and advances lastNotified.
type ReminderProcessor struct {
	reminders *trackers.Reminders
	publisher ReminderPublisher
}

func NewReminderProcessor(reminders *trackers.Reminders, publisher ReminderPublisher) *ReminderProcessor {
	return &ReminderProcessor{
		reminders: reminders,
		publisher: publisher,
	}
}

// ProcessDueReminders checks every repeating reminder against its schedule
// and returns how many were published.
func (p *ReminderProcessor) ProcessDueReminders(ctx context.Context, now time.Time) (int, error) {
	if p.reminders == nil || p.publisher == nil {
		return 0, fmt.Errorf("processor not properly initialized")
	}

	reminders, err := p.reminders.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list reminders: %w", err)
	}

	processedCount := 0
	for _, r := range reminders {
		if r.Every == "" {
			continue
		}

		checker, err := GetDuenessChecker(r.Every)
		if err != nil {
			slog.ErrorContext(ctx, "Skipping reminder with unknown interval",
				"id", r.ID,
				"every", r.Every)
			continue
		}

		createdAt := time.UnixMilli(r.CreatedAt)
		if !checker.IsDue(r.LastNotified, now, createdAt) {
			continue
		}

		if err := p.publisher.PublishReminderDue(ctx, amqp.NewReminderDueMessage(r)); err != nil {
			slog.ErrorContext(ctx, "Failed to publish due reminder",
				"id", r.ID,
				"error", err)
			continue
		}

		if _, err := p.reminders.MarkNotified(ctx, r.ID, now); err != nil {
			slog.ErrorContext(ctx, "Failed to record notification time",
				"id", r.ID,
				"error", err)
			// Continue anyway - the notification was published
		}

		processedCount++
		slog.InfoContext(ctx, "Published due reminder",
			"id", r.ID,
			"every", r.Every)
	}

	slog.InfoContext(ctx, "Reminder processing complete",
		"processed", processedCount,
		"total_checked", len(reminders))

	return processedCount, nil
}
