// Package http exposes the dashboard JSON API and the embedded static UI.
package http

import (
	"context"
	"io/fs"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"dayboard/internal/cache"
	"dayboard/internal/ledger"
	"dayboard/internal/log"
	"dayboard/internal/middleware/ratelimit"
	"dayboard/internal/middleware/security"
	"dayboard/internal/middleware/trace"
	"dayboard/internal/reading"
	"dayboard/internal/services"
	"dayboard/internal/trackers"
	"dayboard/internal/weather"
	appweb "dayboard/web"
)

// Deps carries every service the API serves. Weather may be nil; the
// weather endpoint then reports unavailable.
type Deps struct {
	Transactions *services.TransactionService
	Ledger       *ledger.Transactions
	Budgets      *ledger.Budgets
	Habits       *trackers.Habits
	Moods        *trackers.Moods
	Todos        *trackers.Todos
	Reminders    *trackers.Reminders
	Journal      *trackers.Journal
	Quotes       *trackers.Quotes
	Reading      *reading.Tracker
	Weather      *weather.Client
	Logger       *log.Logger
}

// Server wires the routes, middleware chain and summary caches around the
// standard http.Server.
type Server struct {
	http.Server
	deps    Deps
	logger  *log.Logger
	limiter *ratelimit.Limiter

	// Ledger aggregates are recomputed from the full transaction list on
	// every read, so the hot dashboard endpoints sit behind short caches.
	cacheManager  *cache.Manager
	summaryCache  *cache.LRU[ledger.Summary]
	categoryCache *cache.LRU[map[string]int64]
	monthlyCache  *cache.LRU[[]ledger.MonthBucket]

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = log.New(log.DefaultConfig())
	}

	s := &Server{
		Server:        http.Server{Addr: addr},
		deps:          deps,
		logger:        deps.Logger.WithComponent(log.ComponentHTTP),
		limiter:       ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		cacheManager:  cache.NewManager(),
		summaryCache:  cache.NewLRU[ledger.Summary](4, 30*time.Second),
		categoryCache: cache.NewLRU[map[string]int64](4, 30*time.Second),
		monthlyCache:  cache.NewLRU[[]ledger.MonthBucket](4, 30*time.Second),
	}
	s.cacheManager.Register(s.summaryCache)
	s.cacheManager.Register(s.categoryCache)
	s.cacheManager.Register(s.monthlyCache)
	if deps.Weather != nil {
		s.cacheManager.Register(deps.Weather.Cache())
	}
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux := http.NewServeMux()
	s.routes(mux)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	tracer := trace.NewMiddleware(extractClientIP)

	handler := s.withMutationLimit(mux)
	handler = headers.Middleware(handler)
	handler = tracer.Middleware(handler)
	handler = log.Middleware(deps.Logger)(handler)
	s.Handler = handler

	return s
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	// Embedded UI.
	mux.HandleFunc("GET /{$}", s.handleIndex)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("GET /static/", security.StaticAssetMiddleware(3600)(static))
	} else {
		s.logger.Warn("Failed to mount embedded static FS", log.FieldError, err.Error())
	}

	// Ledger.
	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	mux.HandleFunc("PUT /api/transactions/{id}", s.handleUpdateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)
	mux.HandleFunc("GET /api/transactions/summary", s.handleSummary)
	mux.HandleFunc("GET /api/transactions/categories", s.handleCategories)
	mux.HandleFunc("GET /api/transactions/monthly", s.handleMonthlySeries)
	mux.HandleFunc("GET /api/transactions/export", s.handleExportCSV)

	mux.HandleFunc("GET /api/budgets", s.handleListBudgets)
	mux.HandleFunc("POST /api/budgets", s.handleCreateBudget)
	mux.HandleFunc("PUT /api/budgets/{id}", s.handleUpdateBudget)
	mux.HandleFunc("DELETE /api/budgets/{id}", s.handleDeleteBudget)
	mux.HandleFunc("GET /api/budgets/status", s.handleBudgetStatus)

	// Trackers.
	mux.HandleFunc("GET /api/habits", s.handleListHabits)
	mux.HandleFunc("POST /api/habits", s.handleCreateHabit)
	mux.HandleFunc("PUT /api/habits/{id}", s.handleUpdateHabit)
	mux.HandleFunc("DELETE /api/habits/{id}", s.handleDeleteHabit)
	mux.HandleFunc("POST /api/habits/{id}/toggle", s.handleToggleHabit)

	mux.HandleFunc("GET /api/moods", s.handleListMoods)
	mux.HandleFunc("POST /api/moods", s.handleCreateMood)
	mux.HandleFunc("PUT /api/moods/{id}", s.handleUpdateMood)
	mux.HandleFunc("DELETE /api/moods/{id}", s.handleDeleteMood)
	mux.HandleFunc("GET /api/moods/counts", s.handleMoodCounts)

	mux.HandleFunc("GET /api/todos", s.handleListTodos)
	mux.HandleFunc("POST /api/todos", s.handleCreateTodo)
	mux.HandleFunc("PUT /api/todos/{id}", s.handleUpdateTodo)
	mux.HandleFunc("DELETE /api/todos/{id}", s.handleDeleteTodo)
	mux.HandleFunc("POST /api/todos/{id}/toggle", s.handleToggleTodo)

	mux.HandleFunc("GET /api/reminders", s.handleListReminders)
	mux.HandleFunc("POST /api/reminders", s.handleCreateReminder)
	mux.HandleFunc("PUT /api/reminders/{id}", s.handleUpdateReminder)
	mux.HandleFunc("DELETE /api/reminders/{id}", s.handleDeleteReminder)

	mux.HandleFunc("GET /api/journal", s.handleListJournal)
	mux.HandleFunc("POST /api/journal", s.handleCreateJournalEntry)
	mux.HandleFunc("PUT /api/journal/{id}", s.handleUpdateJournalEntry)
	mux.HandleFunc("DELETE /api/journal/{id}", s.handleDeleteJournalEntry)

	mux.HandleFunc("GET /api/quotes", s.handleListQuotes)
	mux.HandleFunc("POST /api/quotes", s.handleCreateQuote)
	mux.HandleFunc("PUT /api/quotes/{id}", s.handleUpdateQuote)
	mux.HandleFunc("DELETE /api/quotes/{id}", s.handleDeleteQuote)

	// Reading time.
	mux.HandleFunc("POST /api/reading/start", s.handleReadingStart)
	mux.HandleFunc("POST /api/reading/pause", s.handleReadingPause)
	mux.HandleFunc("POST /api/reading/resume", s.handleReadingResume)
	mux.HandleFunc("POST /api/reading/end", s.handleReadingEnd)
	mux.HandleFunc("POST /api/reading/reset", s.handleReadingReset)
	mux.HandleFunc("GET /api/reading/timer", s.handleReadingTimer)
	mux.HandleFunc("GET /api/reading/settings", s.handleReadingSettings)
	mux.HandleFunc("PUT /api/reading/settings", s.handleUpdateReadingSettings)
	mux.HandleFunc("GET /api/reading/sessions", s.handleReadingSessions)
	mux.HandleFunc("GET /api/reading/sessions/today", s.handleReadingTodaySessions)
	mux.HandleFunc("DELETE /api/reading/sessions/{id}", s.handleDeleteReadingSession)
	mux.HandleFunc("GET /api/reading/stats", s.handleReadingStats)
	mux.HandleFunc("GET /api/reading/stats/today", s.handleReadingTodayStats)
	mux.HandleFunc("GET /api/reading/achievements", s.handleReadingAchievements)
	mux.HandleFunc("GET /api/reading/streak", s.handleReadingStreak)

	mux.HandleFunc("GET /api/weather", s.handleWeather)
}

// withMutationLimit rate-limits writes only; dashboard reads poll freely.
func (s *Server) withMutationLimit(next http.Handler) http.Handler {
	limited := s.limiter.Middleware(extractClientIP, nil)(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
		default:
			limited.ServeHTTP(w, r)
		}
	})
}

// extractClientIP resolves the client address, preferring proxy headers.
func extractClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	index, err := appweb.StaticFS.ReadFile("static/index.html")
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Embedded index missing", log.FieldError, err.Error())
		http.Error(w, "index not available", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(index)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) invalidateLedgerCaches() {
	s.summaryCache.Delete(summaryCacheKey)
	s.categoryCache.Delete(summaryCacheKey)
	s.monthlyCache.Delete(summaryCacheKey)
}

// Shutdown stops the cleanup goroutines and then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.limiter.Stop()
		s.cacheManager.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
