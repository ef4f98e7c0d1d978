package trackers

import (
	"context"
	"testing"

	"dayboard/internal/storage"
)

func TestReminders_EmptyStoreGetsSeeded(t *testing.T) {
	ctx := context.Background()
	s := NewReminders(storage.NewMemoryKV())

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"be kind.", "be grateful.", "be positive.", "be yourself."}
	if len(got) != len(want) {
		t.Fatalf("List = %d reminders, want %d", len(got), len(want))
	}
	for i, r := range got {
		if r.Text != want[i] {
			t.Errorf("reminder[%d] = %q, want %q", i, r.Text, want[i])
		}
	}
}

func TestQuotes_EmptyStoreGetsDefaultQuote(t *testing.T) {
	ctx := context.Background()
	s := NewQuotes(storage.NewMemoryKV())

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List = %d quotes, want 1", len(got))
	}
	if got[0].Text != "One day, you'll see why Allah made you wait." {
		t.Errorf("default quote = %q", got[0].Text)
	}
}

func TestReminders_SeedsNotReappliedAfterDelete(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := NewReminders(kv)

	seeded, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, r := range seeded {
		if _, err := s.Delete(ctx, r.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
	}

	// A fresh service over the same store must see the emptied list, not
	// the seeds again.
	got, err := NewReminders(kv).List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List = %d reminders, want 0", len(got))
	}
}
