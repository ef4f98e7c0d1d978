package reading

import (
	"context"
	"testing"
	"time"
)

func TestTotalStats_RoundedAverages(t *testing.T) {
	ctx := context.Background()
	tr, now := newTestTracker(t)

	endSession(t, tr, now, 25*time.Minute, 7)
	endSession(t, tr, now, 55*time.Minute, 8)
	endSession(t, tr, now, 10*time.Minute, 8)

	stats, err := tr.TotalStats(ctx)
	if err != nil {
		t.Fatalf("TotalStats: %v", err)
	}
	if stats.TotalSessions != 3 || stats.TotalMinutes != 90 || stats.TotalPages != 23 {
		t.Errorf("totals = %+v", stats)
	}
	// 25+55+10 minutes at the default 25-minute pomodoro length: 1+2+0.
	if stats.TotalPomodoros != 3 {
		t.Errorf("totalPomodoros = %d, want 3", stats.TotalPomodoros)
	}
	if stats.AvgMinutes != 30 {
		t.Errorf("avgMinutes = %d, want 30", stats.AvgMinutes)
	}
	// 23/3 = 7.67 rounds to 8.
	if stats.AvgPages != 8 {
		t.Errorf("avgPages = %d, want 8", stats.AvgPages)
	}
}

func TestTotalStats_EmptyHistory(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)

	stats, err := tr.TotalStats(ctx)
	if err != nil {
		t.Fatalf("TotalStats: %v", err)
	}
	if stats != (TotalStats{}) {
		t.Errorf("empty stats = %+v, want zero value", stats)
	}
}

func TestTodayStats_GoalMet(t *testing.T) {
	ctx := context.Background()
	tr, now := newTestTracker(t)

	// Yesterday's session must not count toward today.
	endSession(t, tr, now, 10*time.Minute, 100)
	*now = now.Add(24 * time.Hour)

	stats, err := tr.TodayStats(ctx)
	if err != nil {
		t.Fatalf("TodayStats: %v", err)
	}
	if stats.Pages != 0 || stats.GoalMet {
		t.Fatalf("today stats before reading = %+v", stats)
	}

	endSession(t, tr, now, 25*time.Minute, 35)
	stats, _ = tr.TodayStats(ctx)
	if stats.Pages != 35 || stats.Minutes != 25 || !stats.GoalMet {
		t.Errorf("today stats = %+v, want 35 pages, goal met", stats)
	}
}

func TestTodaySessions_FiltersByDay(t *testing.T) {
	ctx := context.Background()
	tr, now := newTestTracker(t)

	endSession(t, tr, now, 10*time.Minute, 1)
	*now = now.Add(24 * time.Hour)
	endSession(t, tr, now, 10*time.Minute, 2)
	endSession(t, tr, now, 10*time.Minute, 3)

	sessions, err := tr.TodaySessions(ctx)
	if err != nil {
		t.Fatalf("TodaySessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("TodaySessions = %d, want 2", len(sessions))
	}
	for _, s := range sessions {
		if s.Date != "2024-03-11" {
			t.Errorf("session date = %s, want 2024-03-11", s.Date)
		}
	}
}
