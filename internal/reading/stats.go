package reading

import (
	"context"

	"github.com/shopspring/decimal"
)

// TotalStats aggregates the whole session history. Averages are rounded to
// the nearest whole unit and zero when no sessions exist.
type TotalStats struct {
	TotalSessions  int   `json:"totalSessions"`
	TotalMinutes   int   `json:"totalMinutes"`
	TotalPages     int   `json:"totalPages"`
	TotalPomodoros int   `json:"totalPomodoros"`
	AvgMinutes     int64 `json:"avgMinutes"`
	AvgPages       int64 `json:"avgPages"`
	Streak         int   `json:"streak"`
}

// TodayStats compares today's reading against the daily goal.
type TodayStats struct {
	Date    string `json:"date"`
	Pages   int    `json:"pages"`
	Minutes int    `json:"minutes"`
	Goal    int    `json:"goal"`
	GoalMet bool   `json:"goalMet"`
}

func (t *Tracker) TotalStats(ctx context.Context) (TotalStats, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return TotalStats{}, err
	}

	stats := TotalStats{TotalSessions: len(state.Sessions), Streak: Streak(state.Sessions)}
	for _, s := range state.Sessions {
		stats.TotalMinutes += s.Duration
		stats.TotalPages += s.Pages
		stats.TotalPomodoros += s.PomodoroSessions
	}
	if stats.TotalSessions > 0 {
		n := decimal.NewFromInt(int64(stats.TotalSessions))
		stats.AvgMinutes = decimal.NewFromInt(int64(stats.TotalMinutes)).Div(n).Round(0).IntPart()
		stats.AvgPages = decimal.NewFromInt(int64(stats.TotalPages)).Div(n).Round(0).IntPart()
	}
	return stats, nil
}

func (t *Tracker) TodayStats(ctx context.Context) (TodayStats, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return TodayStats{}, err
	}

	today := t.today()
	stats := TodayStats{Date: today, Goal: state.Settings.DailyGoal}
	for _, s := range state.Sessions {
		if s.Date == today {
			stats.Pages += s.Pages
			stats.Minutes += s.Duration
		}
	}
	stats.GoalMet = stats.Goal > 0 && stats.Pages >= stats.Goal
	return stats, nil
}

// TodaySessions returns the sessions recorded on the current local day.
func (t *Tracker) TodaySessions(ctx context.Context) ([]Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return nil, err
	}

	today := t.today()
	sessions := make([]Session, 0)
	for _, s := range state.Sessions {
		if s.Date == today {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

// Streak reports the current consecutive-day reading streak.
func (t *Tracker) Streak(ctx context.Context) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return 0, err
	}
	return Streak(state.Sessions), nil
}
