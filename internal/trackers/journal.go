package trackers

import (
	"context"
	"time"

	"dayboard/internal/core"
	"dayboard/internal/storage"
)

// Journal manages daily journal entries.
type Journal struct {
	list *List[core.JournalEntry]
}

func NewJournal(kv storage.KV) *Journal {
	col := storage.NewCollection[core.JournalEntry](kv, storage.KeyJournal, nil)
	return &Journal{list: NewList(col, func(e core.JournalEntry) string { return e.ID }, true)}
}

func (s *Journal) List(ctx context.Context) ([]core.JournalEntry, error) {
	return s.list.All(ctx)
}

func (s *Journal) Add(ctx context.Context, e core.JournalEntry) (core.JournalEntry, error) {
	if err := e.Validate(); err != nil {
		return core.JournalEntry{}, err
	}
	e.ID = core.NewID()
	if e.Date == "" {
		e.Date = core.Today()
	}
	if e.CreatedAt == "" {
		e.CreatedAt = time.Now().Format(time.RFC3339)
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if err := s.list.Add(ctx, e); err != nil {
		return core.JournalEntry{}, err
	}
	return e, nil
}

func (s *Journal) Update(ctx context.Context, id string, e core.JournalEntry) (bool, error) {
	if err := e.Validate(); err != nil {
		return false, err
	}
	return s.list.Update(ctx, id, func(cur *core.JournalEntry) {
		cur.Title = e.Title
		cur.Content = e.Content
		if e.Tags != nil {
			cur.Tags = e.Tags
		}
	})
}

func (s *Journal) Delete(ctx context.Context, id string) (bool, error) {
	return s.list.Remove(ctx, id)
}
