// Package reading implements the reading-time tracker: a pausable timer,
// recorded sessions, streaks, achievements and statistics, persisted as one
// composite document.
package reading

import (
	"time"

	"dayboard/internal/core"
)

// Settings are the user-tunable knobs, all in minutes.
type Settings struct {
	PomodoroLength int `json:"pomodoroLength"`
	DailyGoal      int `json:"dailyGoal"`
	BreakDuration  int `json:"breakDuration"`
}

// DefaultSettings match the values new installations start with.
func DefaultSettings() Settings {
	return Settings{PomodoroLength: 25, DailyGoal: 30, BreakDuration: 5}
}

// Session is one finished reading sitting. Sessions are immutable once
// recorded; they can only be deleted.
type Session struct {
	ID               string    `json:"id"`
	Date             string    `json:"date"`
	BookTitle        string    `json:"bookTitle,omitempty"`
	Pages            int       `json:"pages"`
	Duration         int       `json:"duration"`
	PomodoroSessions int       `json:"pomodoroSessions"`
	CompletedAt      time.Time `json:"completedAt"`
}

// Achievement is a catalog entry plus its unlock timestamp. A zero UnlockedAt
// means still locked; once set it is never cleared or overwritten.
type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

func (a Achievement) Unlocked() bool { return !a.UnlockedAt.IsZero() }

// Timer is the active reading clock. Accumulated holds the elapsed time
// gathered before the last pause; while running, the live elapsed value is
// Accumulated plus the time since ResumeAnchor. Pausing folds the live part
// into Accumulated, so paused wall-clock time never counts.
type Timer struct {
	StartedAt    time.Time     `json:"startedAt"`
	ResumeAnchor time.Time     `json:"resumeAnchor"`
	Accumulated  time.Duration `json:"accumulated"`
	Paused       bool          `json:"paused"`
}

func (t *Timer) elapsed(now time.Time) time.Duration {
	if t == nil {
		return 0
	}
	if t.Paused {
		return t.Accumulated
	}
	return t.Accumulated + now.Sub(t.ResumeAnchor)
}

// State is the whole tracker document stored under one key.
type State struct {
	Sessions     []Session     `json:"sessions"`
	Achievements []Achievement `json:"achievements"`
	Settings     Settings      `json:"settings"`
	Timer        *Timer        `json:"activeTimer,omitempty"`
}

func defaultState() State {
	return State{
		Sessions:     []Session{},
		Achievements: catalog(),
		Settings:     DefaultSettings(),
	}
}

// Status is the live view of the tracker, derived from the wall clock on
// read rather than from a ticking counter.
type Status struct {
	Active         bool      `json:"active"`
	Paused         bool      `json:"paused"`
	StartedAt      time.Time `json:"startedAt"`
	ElapsedMinutes int       `json:"elapsedMinutes"`
	PomodoroCount  int       `json:"pomodoroCount"`
}

func sessionDays(sessions []Session) []string {
	days := make([]string, 0, len(sessions))
	for _, s := range sessions {
		days = append(days, s.Date)
	}
	return days
}

// Streak counts the run of consecutive reading days ending at the most
// recent session day.
func Streak(sessions []Session) int {
	return core.CurrentStreak(sessionDays(sessions))
}
