package http

import (
	"net/http"

	"dayboard/internal/core"
)

func (s *Server) handleListHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := s.deps.Habits.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if habits == nil {
		habits = []core.Habit{}
	}
	writeJSON(w, http.StatusOK, habits)
}

func (s *Server) handleCreateHabit(w http.ResponseWriter, r *http.Request) {
	var h core.Habit
	if !decodeJSON(w, r, &h) {
		return
	}
	saved, err := s.deps.Habits.Add(r.Context(), h)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleUpdateHabit(w http.ResponseWriter, r *http.Request) {
	var h core.Habit
	if !decodeJSON(w, r, &h) {
		return
	}
	id := r.PathValue("id")
	found, err := s.deps.Habits.Update(r.Context(), id, h)
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleDeleteHabit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := s.deps.Habits.Delete(r.Context(), id)
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleToggleHabit(w http.ResponseWriter, r *http.Request) {
	toggled, found, err := s.deps.Habits.ToggleToday(r.Context(), r.PathValue("id"))
	writeFound(w, r, found, err, toggled)
}

func (s *Server) handleListMoods(w http.ResponseWriter, r *http.Request) {
	moods, err := s.deps.Moods.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if moods == nil {
		moods = []core.MoodEntry{}
	}
	writeJSON(w, http.StatusOK, moods)
}

func (s *Server) handleCreateMood(w http.ResponseWriter, r *http.Request) {
	var m core.MoodEntry
	if !decodeJSON(w, r, &m) {
		return
	}
	saved, err := s.deps.Moods.Add(r.Context(), m)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleUpdateMood(w http.ResponseWriter, r *http.Request) {
	var m core.MoodEntry
	if !decodeJSON(w, r, &m) {
		return
	}
	id := r.PathValue("id")
	found, err := s.deps.Moods.Update(r.Context(), id, m)
	m.ID = id
	writeFound(w, r, found, err, m)
}

func (s *Server) handleDeleteMood(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := s.deps.Moods.Delete(r.Context(), id)
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleMoodCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := s.deps.Moods.Counts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// textPayload is the request body for the text-only trackers.
type textPayload struct {
	Text  string              `json:"text"`
	Every core.RepeatInterval `json:"every,omitempty"`
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := s.deps.Todos.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if todos == nil {
		todos = []core.Todo{}
	}
	writeJSON(w, http.StatusOK, todos)
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var p textPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	todo, err := s.deps.Todos.Add(r.Context(), p.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, todo)
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	var p textPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	id := r.PathValue("id")
	found, err := s.deps.Todos.UpdateText(r.Context(), id, p.Text)
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := s.deps.Todos.Delete(r.Context(), id)
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleToggleTodo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := s.deps.Todos.Toggle(r.Context(), id)
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleListReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := s.deps.Reminders.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if reminders == nil {
		reminders = []core.Reminder{}
	}
	writeJSON(w, http.StatusOK, reminders)
}

func (s *Server) handleCreateReminder(w http.ResponseWriter, r *http.Request) {
	var p textPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	reminder, err := s.deps.Reminders.Add(r.Context(), p.Text, p.Every)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reminder)
}

func (s *Server) handleUpdateReminder(w http.ResponseWriter, r *http.Request) {
	var p textPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	id := r.PathValue("id")
	found, err := s.deps.Reminders.UpdateText(r.Context(), id, p.Text)
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleDeleteReminder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := s.deps.Reminders.Delete(r.Context(), id)
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleListJournal(w http.ResponseWriter, r *http.Request) {
	entries, err := s.deps.Journal.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []core.JournalEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var e core.JournalEntry
	if !decodeJSON(w, r, &e) {
		return
	}
	saved, err := s.deps.Journal.Add(r.Context(), e)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleUpdateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var e core.JournalEntry
	if !decodeJSON(w, r, &e) {
		return
	}
	id := r.PathValue("id")
	found, err := s.deps.Journal.Update(r.Context(), id, e)
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleDeleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := s.deps.Journal.Delete(r.Context(), id)
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.deps.Quotes.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if quotes == nil {
		quotes = []core.Quote{}
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (s *Server) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	var p textPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	quote, err := s.deps.Quotes.Add(r.Context(), p.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, quote)
}

func (s *Server) handleUpdateQuote(w http.ResponseWriter, r *http.Request) {
	var p textPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	id := r.PathValue("id")
	found, err := s.deps.Quotes.UpdateText(r.Context(), id, p.Text)
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleDeleteQuote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := s.deps.Quotes.Delete(r.Context(), id)
	writeFound(w, r, found, err, map[string]string{"id": id})
}
