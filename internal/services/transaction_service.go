package services

import (
	"context"
	"fmt"
	"log/slog"

	"dayboard/internal/amqp"
	"dayboard/internal/core"
	"dayboard/internal/ledger"
)

// TransactionService orchestrates ledger writes across the local store and
// the sheet-sync queue. A missing broker never fails a request; the record
// is saved locally either way.
type TransactionService struct {
	transactions *ledger.Transactions
	amqpClient   *amqp.Client
}

func NewTransactionService(transactions *ledger.Transactions, amqpClient *amqp.Client) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		amqpClient:   amqpClient,
	}
}

// Create saves a transaction locally and publishes a sync message.
func (s *TransactionService) Create(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	saved, err := s.transactions.Add(ctx, t)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	if err := s.publish(ctx, saved.ID, amqp.ActionUpsert); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message",
			"id", saved.ID, "error", err)
		// Don't fail the request - the transaction is saved locally
	}

	return saved, nil
}

// Update replaces a transaction locally and publishes a sync message.
func (s *TransactionService) Update(ctx context.Context, id string, t core.Transaction) (bool, error) {
	found, err := s.transactions.Update(ctx, id, t)
	if err != nil || !found {
		return found, err
	}

	if err := s.publish(ctx, id, amqp.ActionUpsert); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message",
			"id", id, "error", err)
	}
	return true, nil
}

// Delete removes a transaction locally and publishes a delete message.
func (s *TransactionService) Delete(ctx context.Context, id string) (bool, error) {
	found, err := s.transactions.Delete(ctx, id)
	if err != nil || !found {
		return found, err
	}

	if err := s.publish(ctx, id, amqp.ActionDelete); err != nil {
		slog.ErrorContext(ctx, "Failed to publish delete message",
			"id", id, "error", err)
	}
	return true, nil
}

func (s *TransactionService) publish(ctx context.Context, id, action string) error {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping sync message")
		return nil
	}
	return s.amqpClient.PublishTransactionSync(ctx, id, action)
}
