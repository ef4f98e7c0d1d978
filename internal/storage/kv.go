// Package storage implements the durable key-value store backing every
// tracker. Each tracker owns one namespaced key holding a JSON-serialized
// collection; mutations replace the whole value.
package storage

import "context"

// KV is the durable key-value contract. Get reports found=false for a key
// that has never been written, which callers treat as "use defaults".
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Well-known tracker keys.
const (
	KeyTransactions = "transactions"
	KeyBudgets      = "budgets"
	KeyHabits       = "habits"
	KeyMoods        = "moods"
	KeyTodos        = "todos"
	KeyReminders    = "reminders"
	KeyJournal      = "journal"
	KeyQuotes       = "quotes"
	KeyReading      = "readingTimeState"
)
