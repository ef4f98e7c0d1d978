package reading

import (
	"context"
	"sync"
	"time"

	"dayboard/internal/core"
	"dayboard/internal/log"
	"dayboard/internal/storage"
)

// Tracker owns the reading-time state. It is an explicit injected store, not
// a package singleton; every mutation loads the document, applies the change
// and persists it under the same lock.
type Tracker struct {
	mu     sync.Mutex
	doc    *storage.Document[State]
	logger *log.Logger
	now    func() time.Time
}

func NewTracker(kv storage.KV, logger *log.Logger) *Tracker {
	return &Tracker{
		doc:    storage.NewDocument(kv, storage.KeyReading, defaultState),
		logger: logger.WithComponent(log.ComponentReading),
		now:    time.Now,
	}
}

func (t *Tracker) today() string {
	return t.now().Format(core.DayFormat)
}

// Start begins a new timer. Starting while paused resumes the existing
// timer; starting while already running restarts it from zero.
func (t *Tracker) Start(ctx context.Context) (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return Status{}, err
	}
	now := t.now()
	if state.Timer != nil && state.Timer.Paused {
		state.Timer.Paused = false
		state.Timer.ResumeAnchor = now
	} else {
		state.Timer = &Timer{StartedAt: now, ResumeAnchor: now}
	}
	if err := t.doc.Save(ctx, state); err != nil {
		return Status{}, err
	}
	t.logger.InfoContext(ctx, "Reading timer started")
	return t.status(state, now), nil
}

// Pause freezes the elapsed time. Pausing an idle or already-paused timer is
// a no-op.
func (t *Tracker) Pause(ctx context.Context) (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return Status{}, err
	}
	now := t.now()
	if state.Timer != nil && !state.Timer.Paused {
		state.Timer.Accumulated += now.Sub(state.Timer.ResumeAnchor)
		state.Timer.Paused = true
		state.Timer.ResumeAnchor = time.Time{}
		if err := t.doc.Save(ctx, state); err != nil {
			return Status{}, err
		}
	}
	return t.status(state, now), nil
}

// Resume continues a paused timer. The time spent paused is excluded from
// the elapsed duration.
func (t *Tracker) Resume(ctx context.Context) (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return Status{}, err
	}
	now := t.now()
	if state.Timer != nil && state.Timer.Paused {
		state.Timer.Paused = false
		state.Timer.ResumeAnchor = now
		if err := t.doc.Save(ctx, state); err != nil {
			return Status{}, err
		}
	}
	return t.status(state, now), nil
}

// End records the finished session, evaluates achievements and resets the
// timer. Ending with no active timer is a no-op. Sessions are immutable once
// recorded, so the page count is validated before anything is written.
func (t *Tracker) End(ctx context.Context, bookTitle string, pages int) (Session, []Achievement, error) {
	if pages < 0 {
		return Session{}, nil, core.ErrInvalidPages
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return Session{}, nil, err
	}
	if state.Timer == nil {
		return Session{}, nil, nil
	}
	now := t.now()
	elapsed := int(state.Timer.elapsed(now).Minutes())

	session := Session{
		ID:          core.NewID(),
		Date:        now.Format(core.DayFormat),
		BookTitle:   bookTitle,
		Pages:       pages,
		Duration:    elapsed,
		CompletedAt: now,
	}
	if state.Settings.PomodoroLength > 0 {
		session.PomodoroSessions = elapsed / state.Settings.PomodoroLength
	}
	state.Sessions = append(state.Sessions, session)
	state.Timer = nil

	newly := evaluateAchievements(&state, session, now)
	if err := t.doc.Save(ctx, state); err != nil {
		return Session{}, nil, err
	}

	t.logger.InfoContext(ctx, "Reading session recorded",
		log.FieldBookTitle, bookTitle,
		log.FieldPages, pages,
		log.FieldDurationMin, elapsed)
	for _, a := range newly {
		t.logger.InfoContext(ctx, "Achievement unlocked", log.FieldAchievementID, a.ID)
	}
	return session, newly, nil
}

// Reset drops the active timer without recording a session.
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return err
	}
	if state.Timer == nil {
		return nil
	}
	state.Timer = nil
	return t.doc.Save(ctx, state)
}

// Current reports the live timer status, derived from the wall clock.
func (t *Tracker) Current(ctx context.Context) (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return Status{}, err
	}
	return t.status(state, t.now()), nil
}

func (t *Tracker) status(state State, now time.Time) Status {
	if state.Timer == nil {
		return Status{}
	}
	elapsed := int(state.Timer.elapsed(now).Minutes())
	st := Status{
		Active:         true,
		Paused:         state.Timer.Paused,
		StartedAt:      state.Timer.StartedAt,
		ElapsedMinutes: elapsed,
	}
	if state.Settings.PomodoroLength > 0 {
		st.PomodoroCount = elapsed / state.Settings.PomodoroLength
	}
	return st
}

// UpdateSettings replaces the settings. Non-positive fields keep their
// previous values.
func (t *Tracker) UpdateSettings(ctx context.Context, s Settings) (Settings, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return Settings{}, err
	}
	if s.PomodoroLength > 0 {
		state.Settings.PomodoroLength = s.PomodoroLength
	}
	if s.DailyGoal > 0 {
		state.Settings.DailyGoal = s.DailyGoal
	}
	if s.BreakDuration > 0 {
		state.Settings.BreakDuration = s.BreakDuration
	}
	if err := t.doc.Save(ctx, state); err != nil {
		return Settings{}, err
	}
	return state.Settings, nil
}

func (t *Tracker) Settings(ctx context.Context) (Settings, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return Settings{}, err
	}
	return state.Settings, nil
}

// Sessions returns all recorded sessions.
func (t *Tracker) Sessions(ctx context.Context) ([]Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return state.Sessions, nil
}

// DeleteSession removes a recorded session. Achievements already unlocked
// stay unlocked.
func (t *Tracker) DeleteSession(ctx context.Context, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return false, err
	}
	for i, s := range state.Sessions {
		if s.ID == id {
			state.Sessions = append(state.Sessions[:i], state.Sessions[i+1:]...)
			return true, t.doc.Save(ctx, state)
		}
	}
	return false, nil
}

// Achievements returns the full catalog with unlock timestamps.
func (t *Tracker) Achievements(ctx context.Context) ([]Achievement, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return state.Achievements, nil
}
