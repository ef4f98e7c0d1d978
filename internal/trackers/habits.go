package trackers

import (
	"context"
	"log/slog"

	"dayboard/internal/core"
	"dayboard/internal/storage"
)

// Habits manages habit records. The streak field is derived from the
// completed-dates set on every toggle rather than kept as a free-running
// counter, so it cannot drift when days are toggled out of order.
type Habits struct {
	list *List[core.Habit]
	// today is injectable for tests; defaults to core.Today.
	today func() string
}

func NewHabits(kv storage.KV) *Habits {
	col := storage.NewCollection[core.Habit](kv, storage.KeyHabits, nil)
	return &Habits{
		list:  NewList(col, func(h core.Habit) string { return h.ID }, false),
		today: core.Today,
	}
}

func (s *Habits) List(ctx context.Context) ([]core.Habit, error) {
	return s.list.All(ctx)
}

func (s *Habits) Add(ctx context.Context, h core.Habit) (core.Habit, error) {
	if err := h.Validate(); err != nil {
		return core.Habit{}, err
	}
	h.ID = core.NewID()
	if h.CreatedAt == "" {
		h.CreatedAt = s.today()
	}
	if h.CompletedDates == nil {
		h.CompletedDates = []string{}
	}
	h.Streak = core.CurrentStreak(h.CompletedDates)

	if err := s.list.Add(ctx, h); err != nil {
		return core.Habit{}, err
	}
	slog.InfoContext(ctx, "Habit created", "record_id", h.ID, "name", h.Name)
	return h, nil
}

// Update replaces the editable fields of the habit; the completion history
// and creation date are preserved.
func (s *Habits) Update(ctx context.Context, id string, h core.Habit) (bool, error) {
	if err := h.Validate(); err != nil {
		return false, err
	}
	return s.list.Update(ctx, id, func(cur *core.Habit) {
		cur.Name = h.Name
		cur.Icon = h.Icon
		cur.Color = h.Color
		cur.Description = h.Description
		cur.Category = h.Category
		cur.Goal = h.Goal
	})
}

func (s *Habits) Delete(ctx context.Context, id string) (bool, error) {
	found, err := s.list.Remove(ctx, id)
	if err == nil && found {
		slog.InfoContext(ctx, "Habit deleted", "record_id", id)
	}
	return found, err
}

// ToggleToday flips today's completion for the habit. Toggling twice in a
// row restores both the completed-dates set and the streak.
func (s *Habits) ToggleToday(ctx context.Context, id string) (core.Habit, bool, error) {
	today := s.today()
	var toggled core.Habit
	found, err := s.list.Update(ctx, id, func(h *core.Habit) {
		idx := -1
		for i, d := range h.CompletedDates {
			if d == today {
				idx = i
				break
			}
		}
		if idx >= 0 {
			h.CompletedDates = append(h.CompletedDates[:idx], h.CompletedDates[idx+1:]...)
		} else {
			h.CompletedDates = append(h.CompletedDates, today)
		}
		h.Streak = core.CurrentStreak(h.CompletedDates)
		toggled = *h
	})
	if err != nil || !found {
		return core.Habit{}, found, err
	}
	return toggled, true, nil
}
