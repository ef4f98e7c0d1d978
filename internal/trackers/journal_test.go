package trackers

import (
	"context"
	"testing"

	"dayboard/internal/core"
	"dayboard/internal/storage"
)

func TestJournal_AddPrependsAndDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewJournal(storage.NewMemoryKV())

	first, err := s.Add(ctx, core.JournalEntry{Title: "Morning pages"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first.Date != core.Today() || first.CreatedAt == "" || first.Tags == nil {
		t.Errorf("defaults not applied: %+v", first)
	}

	second, _ := s.Add(ctx, core.JournalEntry{Content: "a good day"})

	entries, _ := s.List(ctx)
	if len(entries) != 2 || entries[0].ID != second.ID {
		t.Errorf("expected newest first, got %+v", entries)
	}
}

func TestJournal_TitleOrContentRequired(t *testing.T) {
	ctx := context.Background()
	s := NewJournal(storage.NewMemoryKV())

	if _, err := s.Add(ctx, core.JournalEntry{Title: "  ", Content: ""}); err != core.ErrEmptyText {
		t.Errorf("empty entry err = %v, want ErrEmptyText", err)
	}
	// Content alone is enough.
	if _, err := s.Add(ctx, core.JournalEntry{Content: "only content"}); err != nil {
		t.Errorf("content-only entry rejected: %v", err)
	}
}

func TestJournal_UpdateKeepsTagsWhenAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewJournal(storage.NewMemoryKV())

	e, _ := s.Add(ctx, core.JournalEntry{Title: "Trip", Tags: []string{"travel"}})

	found, err := s.Update(ctx, e.ID, core.JournalEntry{Title: "Trip day 2", Content: "notes"})
	if err != nil || !found {
		t.Fatalf("Update: %v found=%v", err, found)
	}

	entries, _ := s.List(ctx)
	if entries[0].Title != "Trip day 2" || len(entries[0].Tags) != 1 || entries[0].Tags[0] != "travel" {
		t.Errorf("updated entry = %+v", entries[0])
	}
}
