package trackers

import (
	"context"
	"strings"
	"time"

	"dayboard/internal/core"
	"dayboard/internal/storage"
)

// Reminders manages pinned reminder notes. An empty store is seeded with
// the default set. Reminders carrying a repeat interval are picked up by
// the reminder worker.
type Reminders struct {
	list *List[core.Reminder]
}

func NewReminders(kv storage.KV) *Reminders {
	col := storage.NewCollection(kv, storage.KeyReminders, seedReminders)
	return &Reminders{list: NewList(col, func(r core.Reminder) string { return r.ID }, false)}
}

func (s *Reminders) List(ctx context.Context) ([]core.Reminder, error) {
	return s.list.All(ctx)
}

func (s *Reminders) Add(ctx context.Context, text string, every core.RepeatInterval) (core.Reminder, error) {
	r := core.Reminder{
		ID:        core.NewID(),
		Text:      strings.TrimSpace(text),
		CreatedAt: time.Now().UnixMilli(),
		Every:     every,
	}
	if err := r.Validate(); err != nil {
		return core.Reminder{}, err
	}
	if err := s.list.Add(ctx, r); err != nil {
		return core.Reminder{}, err
	}
	return r, nil
}

func (s *Reminders) UpdateText(ctx context.Context, id, text string) (bool, error) {
	if strings.TrimSpace(text) == "" {
		return false, core.ErrEmptyText
	}
	return s.list.Update(ctx, id, func(r *core.Reminder) {
		r.Text = text
	})
}

// MarkNotified records the time the reminder was last published.
func (s *Reminders) MarkNotified(ctx context.Context, id string, at time.Time) (bool, error) {
	return s.list.Update(ctx, id, func(r *core.Reminder) {
		r.LastNotified = at
	})
}

func (s *Reminders) Delete(ctx context.Context, id string) (bool, error) {
	return s.list.Remove(ctx, id)
}
