package trackers

import (
	"context"
	"reflect"
	"testing"

	"dayboard/internal/core"
	"dayboard/internal/storage"
)

func newTestHabits(today string) *Habits {
	h := NewHabits(storage.NewMemoryKV())
	h.today = func() string { return today }
	return h
}

func TestHabits_ToggleTodayPairIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestHabits("2024-03-10")

	h, err := s.Add(ctx, core.Habit{Name: "Stretch"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	h, _, err = s.ToggleToday(ctx, h.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	before := h

	if _, _, err := s.ToggleToday(ctx, h.ID); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	after, _, err := s.ToggleToday(ctx, h.ID)
	if err != nil {
		t.Fatalf("third toggle: %v", err)
	}

	if !reflect.DeepEqual(before.CompletedDates, after.CompletedDates) {
		t.Errorf("completedDates not restored: %v vs %v", before.CompletedDates, after.CompletedDates)
	}
	if before.Streak != after.Streak {
		t.Errorf("streak not restored: %d vs %d", before.Streak, after.Streak)
	}
}

func TestHabits_StreakDerivedFromDates(t *testing.T) {
	ctx := context.Background()
	s := newTestHabits("2024-03-10")

	h, err := s.Add(ctx, core.Habit{
		Name:           "Read",
		CompletedDates: []string{"2024-03-08", "2024-03-09"},
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if h.Streak != 2 {
		t.Fatalf("streak after Add = %d, want 2", h.Streak)
	}

	h, found, err := s.ToggleToday(ctx, h.ID)
	if err != nil || !found {
		t.Fatalf("ToggleToday: %v found=%v", err, found)
	}
	if h.Streak != 3 {
		t.Errorf("streak after completing today = %d, want 3", h.Streak)
	}

	h, _, err = s.ToggleToday(ctx, h.ID)
	if err != nil {
		t.Fatalf("ToggleToday: %v", err)
	}
	if h.Streak != 2 {
		t.Errorf("streak after un-completing today = %d, want 2", h.Streak)
	}
}

func TestHabits_ToggleNonConsecutiveDayDoesNotInflateStreak(t *testing.T) {
	ctx := context.Background()
	s := newTestHabits("2024-03-10")

	h, err := s.Add(ctx, core.Habit{
		Name:           "Walk",
		CompletedDates: []string{"2024-03-01"},
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	h, _, err = s.ToggleToday(ctx, h.ID)
	if err != nil {
		t.Fatalf("ToggleToday: %v", err)
	}
	// 2024-03-01 is not adjacent to today, so the streak restarts at 1.
	if h.Streak != 1 {
		t.Errorf("streak = %d, want 1", h.Streak)
	}
}

func TestHabits_UpdatePreservesHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestHabits("2024-03-10")

	h, err := s.Add(ctx, core.Habit{Name: "Run", CompletedDates: []string{"2024-03-10"}})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	found, err := s.Update(ctx, h.ID, core.Habit{Name: "Run 5k", Category: "fitness"})
	if err != nil || !found {
		t.Fatalf("Update: %v found=%v", err, found)
	}

	habits, _ := s.List(ctx)
	if len(habits) != 1 {
		t.Fatalf("List = %d habits, want 1", len(habits))
	}
	got := habits[0]
	if got.Name != "Run 5k" || got.Category != "fitness" {
		t.Errorf("editable fields not updated: %+v", got)
	}
	if len(got.CompletedDates) != 1 || got.CompletedDates[0] != "2024-03-10" {
		t.Errorf("completion history lost on update: %+v", got.CompletedDates)
	}
}

func TestHabits_UpdateAbsentIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := newTestHabits("2024-03-10")

	found, err := s.Update(ctx, "missing", core.Habit{Name: "X"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if found {
		t.Error("Update reported found for an absent id")
	}
}
