package trackers

import (
	"context"

	"dayboard/internal/core"
	"dayboard/internal/storage"
)

// Moods manages mood entries.
type Moods struct {
	list *List[core.MoodEntry]
}

func NewMoods(kv storage.KV) *Moods {
	col := storage.NewCollection[core.MoodEntry](kv, storage.KeyMoods, nil)
	return &Moods{list: NewList(col, func(m core.MoodEntry) string { return m.ID }, false)}
}

func (s *Moods) List(ctx context.Context) ([]core.MoodEntry, error) {
	return s.list.All(ctx)
}

func (s *Moods) Add(ctx context.Context, m core.MoodEntry) (core.MoodEntry, error) {
	if m.Date == "" {
		m.Date = core.Today()
	}
	if err := m.Validate(); err != nil {
		return core.MoodEntry{}, err
	}
	m.ID = core.NewID()
	if err := s.list.Add(ctx, m); err != nil {
		return core.MoodEntry{}, err
	}
	return m, nil
}

func (s *Moods) Update(ctx context.Context, id string, m core.MoodEntry) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	return s.list.Update(ctx, id, func(cur *core.MoodEntry) {
		id := cur.ID
		*cur = m
		cur.ID = id
	})
}

func (s *Moods) Delete(ctx context.Context, id string) (bool, error) {
	return s.list.Remove(ctx, id)
}

// Counts groups entries by mood value.
func (s *Moods) Counts(ctx context.Context) (map[string]int, error) {
	entries, err := s.list.All(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Mood]++
	}
	return counts, nil
}
