package amqp

import (
	"testing"
	"time"

	"dayboard/internal/core"
)

func TestNewTransactionSyncMessage(t *testing.T) {
	msg := NewTransactionSyncMessage("1712000000000", ActionUpsert)

	if msg.ID != "1712000000000" {
		t.Errorf("ID = %v, want 1712000000000", msg.ID)
	}
	if msg.Action != ActionUpsert {
		t.Errorf("Action = %v, want %v", msg.Action, ActionUpsert)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestTransactionSyncMessage_JSON(t *testing.T) {
	timestamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	msg := &TransactionSyncMessage{
		ID:        "42",
		Action:    ActionDelete,
		Timestamp: timestamp,
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := TransactionSyncMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("TransactionSyncMessageFromJSON() error = %v", err)
	}

	if parsed.ID != msg.ID {
		t.Errorf("Parsed ID = %v, want %v", parsed.ID, msg.ID)
	}
	if parsed.Action != msg.Action {
		t.Errorf("Parsed Action = %v, want %v", parsed.Action, msg.Action)
	}
	if !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsed.Timestamp, msg.Timestamp)
	}
}

func TestTransactionSyncMessage_InvalidJSON(t *testing.T) {
	invalidJSON := []byte(`{"id": 42, "action": ["upsert"]}`)

	if _, err := TransactionSyncMessageFromJSON(invalidJSON); err == nil {
		t.Error("TransactionSyncMessageFromJSON() should fail with invalid JSON")
	}
}

func TestNewReminderDueMessage(t *testing.T) {
	r := core.Reminder{ID: "7", Text: "be kind.", Every: core.Daily}
	msg := NewReminderDueMessage(r)

	if msg.ID != r.ID || msg.Text != r.Text || msg.Every != r.Every {
		t.Errorf("ReminderDueMessage = %+v, want fields from %+v", msg, r)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	parsed, err := ReminderDueMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("ReminderDueMessageFromJSON() error = %v", err)
	}
	if parsed.ID != msg.ID || parsed.Text != msg.Text || parsed.Every != msg.Every {
		t.Errorf("round-trip mismatch: %+v vs %+v", parsed, msg)
	}
}
