// Package worker implements the background consumers: the sheet-sync worker
// and the reminder scheduler loop.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"dayboard/internal/amqp"
	"dayboard/internal/ledger"
	"dayboard/internal/sheets"
)

// SyncWorker mirrors ledger changes into the spreadsheet. It consumes the
// lightweight sync messages and fetches the full record from the store.
type SyncWorker struct {
	transactions *ledger.Transactions
	writer       sheets.TransactionWriter
	deleter      sheets.TransactionDeleter
}

func NewSyncWorker(transactions *ledger.Transactions, writer sheets.TransactionWriter, deleter sheets.TransactionDeleter) *SyncWorker {
	return &SyncWorker{
		transactions: transactions,
		writer:       writer,
		deleter:      deleter,
	}
}

// HandleSyncMessage processes a single transaction sync message from AMQP.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.TransactionSyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message",
		"id", msg.ID,
		"action", msg.Action)

	switch msg.Action {
	case amqp.ActionDelete:
		return w.handleDelete(ctx, msg.ID)
	case amqp.ActionUpsert:
		return w.handleUpsert(ctx, msg.ID)
	default:
		// Unknown actions are dropped rather than requeued forever.
		slog.WarnContext(ctx, "Ignoring sync message with unknown action",
			"id", msg.ID,
			"action", msg.Action)
		return nil
	}
}

func (w *SyncWorker) handleUpsert(ctx context.Context, id string) error {
	tx, found, err := w.transactions.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get transaction from storage: %w", err)
	}
	if !found {
		// The record was deleted before the message was consumed.
		slog.WarnContext(ctx, "Transaction no longer exists, skipping sync", "id", id)
		return nil
	}

	// Remove any earlier row for this id so updates don't duplicate.
	if w.deleter != nil {
		if err := w.deleter.Delete(ctx, id); err != nil {
			slog.WarnContext(ctx, "Failed to remove previous sheet row",
				"id", id,
				"error", err)
		}
	}

	ref, err := w.writer.Append(ctx, tx)
	if err != nil {
		return fmt.Errorf("append to sheets: %w", err)
	}

	slog.InfoContext(ctx, "Successfully synced transaction",
		"id", id,
		"sheets_ref", ref,
		"description", tx.Description,
		"amount", tx.Amount)
	return nil
}

func (w *SyncWorker) handleDelete(ctx context.Context, id string) error {
	if w.deleter == nil {
		slog.WarnContext(ctx, "No sheet deleter configured, skipping deletion", "id", id)
		return nil
	}
	if err := w.deleter.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete from sheets: %w", err)
	}
	slog.InfoContext(ctx, "Successfully deleted transaction from sheet", "id", id)
	return nil
}

// StartupSyncCheck re-syncs the whole ledger at worker startup. This is a
// recovery path for messages missed during worker downtime; Append/Delete
// pairs keep the sheet convergent with the store.
func (w *SyncWorker) StartupSyncCheck(ctx context.Context) error {
	txs, err := w.transactions.List(ctx)
	if err != nil {
		return fmt.Errorf("list transactions for startup check: %w", err)
	}
	if len(txs) == 0 {
		slog.InfoContext(ctx, "No transactions found on startup")
		return nil
	}

	slog.InfoContext(ctx, "Re-syncing ledger on startup", "count", len(txs))

	successCount := 0
	errorCount := 0
	for _, tx := range txs {
		if w.deleter != nil {
			if err := w.deleter.Delete(ctx, tx.ID); err != nil {
				slog.WarnContext(ctx, "Failed to remove previous sheet row",
					"id", tx.ID, "error", err)
			}
		}
		if _, err := w.writer.Append(ctx, tx); err != nil {
			slog.ErrorContext(ctx, "Failed to sync transaction during startup",
				"id", tx.ID, "error", err)
			errorCount++
			continue
		}
		successCount++
	}

	slog.InfoContext(ctx, "Startup sync completed",
		"total", len(txs),
		"synced", successCount,
		"errors", errorCount)
	return nil
}
