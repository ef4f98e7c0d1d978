package http

import (
	"net/http"
	"strconv"

	"dayboard/internal/reading"
)

func (s *Server) handleReadingStart(w http.ResponseWriter, r *http.Request) {
	status, err := s.deps.Reading.Start(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleReadingPause(w http.ResponseWriter, r *http.Request) {
	status, err := s.deps.Reading.Pause(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleReadingResume(w http.ResponseWriter, r *http.Request) {
	status, err := s.deps.Reading.Resume(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

type endSessionPayload struct {
	BookTitle string `json:"bookTitle"`
	Pages     int    `json:"pages"`
}

// endSessionResponse joins the recorded session with any achievements the
// session unlocked.
type endSessionResponse struct {
	Session      reading.Session       `json:"session"`
	NewUnlocks   []reading.Achievement `json:"newAchievements"`
	TimerWasLive bool                  `json:"timerWasLive"`
}

func (s *Server) handleReadingEnd(w http.ResponseWriter, r *http.Request) {
	var p endSessionPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	session, unlocked, err := s.deps.Reading.End(r.Context(), p.BookTitle, p.Pages)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if unlocked == nil {
		unlocked = []reading.Achievement{}
	}
	writeJSON(w, http.StatusOK, endSessionResponse{
		Session:      session,
		NewUnlocks:   unlocked,
		TimerWasLive: session.ID != "",
	})
}

func (s *Server) handleReadingReset(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Reading.Reset(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"reset": true})
}

func (s *Server) handleReadingTimer(w http.ResponseWriter, r *http.Request) {
	status, err := s.deps.Reading.Current(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleReadingSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.deps.Reading.Settings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleUpdateReadingSettings(w http.ResponseWriter, r *http.Request) {
	var settings reading.Settings
	if !decodeJSON(w, r, &settings) {
		return
	}
	updated, err := s.deps.Reading.UpdateSettings(r.Context(), settings)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleReadingSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.deps.Reading.Sessions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []reading.Session{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleReadingTodaySessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.deps.Reading.TodaySessions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleDeleteReadingSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := s.deps.Reading.DeleteSession(r.Context(), id)
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleReadingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.deps.Reading.TotalStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleReadingTodayStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.deps.Reading.TodayStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleReadingAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := s.deps.Reading.Achievements(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, achievements)
}

func (s *Server) handleReadingStreak(w http.ResponseWriter, r *http.Request) {
	streak, err := s.deps.Reading.Streak(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"streak": streak})
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	if s.deps.Weather == nil {
		writeJSON(w, http.StatusOK, map[string]bool{"available": false})
		return
	}
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if errLat != nil || errLon != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "lat and lon query parameters are required"})
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Weather.Current(r.Context(), lat, lon))
}
