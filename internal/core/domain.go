package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	Daily   RepeatInterval = "daily"
	Weekly  RepeatInterval = "weekly"
	Monthly RepeatInterval = "monthly"
	Yearly  RepeatInterval = "yearly"
)

// DayFormat is the day-granularity date layout used by every tracker.
const DayFormat = "2006-01-02"

type (
	TransactionType string

	RepeatInterval string

	// Transaction is a single ledger entry. Category is optional and matched
	// against budget categories by exact string equality.
	Transaction struct {
		ID          string          `json:"id"`
		Type        TransactionType `json:"type"`
		Description string          `json:"description"`
		Amount      int64           `json:"amount"`
		Date        string          `json:"date"`
		Category    string          `json:"category,omitempty"`
	}

	Budget struct {
		ID       string `json:"id"`
		Category string `json:"category"`
		Limit    int64  `json:"limit"`
		Color    string `json:"color,omitempty"`
	}

	// Habit records accumulated optional fields over time; Description,
	// Category and Goal may be absent in older stored records.
	Habit struct {
		ID             string   `json:"id"`
		Name           string   `json:"name"`
		Icon           string   `json:"icon,omitempty"`
		Color          string   `json:"color,omitempty"`
		CompletedDates []string `json:"completedDates"`
		Streak         int      `json:"streak"`
		CreatedAt      string   `json:"createdAt"`
		Description    string   `json:"description,omitempty"`
		Category       string   `json:"category,omitempty"`
		Goal           int      `json:"goal,omitempty"`
	}

	MoodEntry struct {
		ID        string `json:"id"`
		Date      string `json:"date"`
		Mood      string `json:"mood"`
		MoodLabel string `json:"moodLabel,omitempty"`
		Note      string `json:"note,omitempty"`
		Color     string `json:"color,omitempty"`
		Icon      string `json:"icon,omitempty"`
	}

	Todo struct {
		ID        string `json:"id"`
		Text      string `json:"text"`
		Completed bool   `json:"completed"`
		CreatedAt int64  `json:"createdAt"`
	}

	// Reminder is a pinned note. Every is optional: when set, the reminder
	// worker republishes it on that schedule.
	Reminder struct {
		ID           string         `json:"id"`
		Text         string         `json:"text"`
		CreatedAt    int64          `json:"createdAt"`
		Every        RepeatInterval `json:"every,omitempty"`
		LastNotified time.Time      `json:"lastNotified"`
	}

	JournalEntry struct {
		ID        string   `json:"id"`
		Date      string   `json:"date"`
		Title     string   `json:"title"`
		Content   string   `json:"content"`
		Tags      []string `json:"tags"`
		CreatedAt string   `json:"createdAt"`
	}

	Quote struct {
		ID        string `json:"id"`
		Text      string `json:"text"`
		CreatedAt int64  `json:"createdAt"`
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidInterval = errors.New("invalid repeat interval")
	ErrInvalidPages    = errors.New("invalid page count")
	ErrEmptyText       = errors.New("empty text")
	ErrTextTooLong     = errors.New("text too long")
	ErrEmptyCategory   = errors.New("empty category")
)

// Today returns the local day string, the canonical key for day-granularity
// comparisons across trackers.
func Today() string {
	return time.Now().Format(DayFormat)
}

// ParseDay validates a day string and returns its midnight timestamp.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID generates a wall-clock millisecond identifier. Consecutive calls in
// the same millisecond bump the value so IDs stay unique within a process.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (r RepeatInterval) Valid() bool {
	switch r {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyText
	}
	if len(t.Description) > 200 {
		return fmt.Errorf("%w: description exceeds 200 characters", ErrTextTooLong)
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if _, err := ParseDay(t.Date); err != nil {
		return err
	}
	return nil
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	if b.Limit <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return ErrEmptyText
	}
	return nil
}

func (m MoodEntry) Validate() error {
	if strings.TrimSpace(m.Mood) == "" {
		return ErrEmptyText
	}
	if _, err := ParseDay(m.Date); err != nil {
		return err
	}
	return nil
}

func (t Todo) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	return nil
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}
	if r.Every != "" && !r.Every.Valid() {
		return ErrInvalidInterval
	}
	return nil
}

// Validate accepts an entry when either the title or the content is present.
func (j JournalEntry) Validate() error {
	if strings.TrimSpace(j.Title) == "" && strings.TrimSpace(j.Content) == "" {
		return ErrEmptyText
	}
	return nil
}

func (q Quote) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrEmptyText
	}
	return nil
}
