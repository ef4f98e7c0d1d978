package amqp

import (
	"encoding/json"
	"time"

	"dayboard/internal/core"
)

// Sync actions carried by TransactionSyncMessage.
const (
	ActionUpsert = "upsert"
	ActionDelete = "delete"
)

// TransactionSyncMessage is a lightweight pointer to a ledger entry. The
// worker fetches the full record from the store, so the message carries only
// the ID and the action.
type TransactionSyncMessage struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

func NewTransactionSyncMessage(id, action string) *TransactionSyncMessage {
	return &TransactionSyncMessage{ID: id, Action: action, Timestamp: time.Now()}
}

func (m *TransactionSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionSyncMessageFromJSON(data []byte) (*TransactionSyncMessage, error) {
	var msg TransactionSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ReminderDueMessage announces that a repeating reminder came due. The text
// is included so notification consumers need no store access.
type ReminderDueMessage struct {
	ID        string              `json:"id"`
	Text      string              `json:"text"`
	Every     core.RepeatInterval `json:"every"`
	Timestamp time.Time           `json:"timestamp"`
}

func NewReminderDueMessage(r core.Reminder) *ReminderDueMessage {
	return &ReminderDueMessage{ID: r.ID, Text: r.Text, Every: r.Every, Timestamp: time.Now()}
}

func (m *ReminderDueMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ReminderDueMessageFromJSON(data []byte) (*ReminderDueMessage, error) {
	var msg ReminderDueMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
