package reading

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

var (
	catalogOnce sync.Once
	catalogSet  []Achievement
)

// catalog returns the locked achievement set. The catalog ships embedded so
// every installation starts from the same definitions.
func catalog() []Achievement {
	catalogOnce.Do(func() {
		var doc struct {
			Achievements []Achievement `yaml:"achievements"`
		}
		if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
			panic(fmt.Sprintf("reading: parse embedded achievement catalog: %v", err))
		}
		catalogSet = doc.Achievements
	})
	out := make([]Achievement, len(catalogSet))
	copy(out, catalogSet)
	return out
}

// evaluateAchievements unlocks every achievement whose predicate holds after
// recording the new session. state.Sessions already includes the session.
// Unlocks are monotonic: an achievement with UnlockedAt set is skipped, so
// re-qualifying later never changes the original timestamp.
func evaluateAchievements(state *State, newSession Session, now time.Time) []Achievement {
	todayPages := 0
	for _, s := range state.Sessions {
		if s.Date == newSession.Date {
			todayPages += s.Pages
		}
	}
	totalPomodoros := 0
	for _, s := range state.Sessions {
		totalPomodoros += s.PomodoroSessions
	}

	unlocked := func(id string) bool {
		switch id {
		case "first_read":
			return len(state.Sessions) == 1
		case "streak_7":
			return Streak(state.Sessions) >= 7
		case "pages_100":
			return newSession.Pages >= 100
		case "pomodoro_10":
			return totalPomodoros >= 10
		case "daily_goal":
			return state.Settings.DailyGoal > 0 && todayPages >= state.Settings.DailyGoal
		}
		return false
	}

	var newly []Achievement
	for i := range state.Achievements {
		a := &state.Achievements[i]
		if a.Unlocked() || !unlocked(a.ID) {
			continue
		}
		a.UnlockedAt = now
		newly = append(newly, *a)
	}
	return newly
}
