package http

import (
	"net/http"
	"time"

	"dayboard/internal/core"
	"dayboard/internal/ledger"
)

const summaryCacheKey = "all"

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.deps.Ledger.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if txs == nil {
		txs = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var t core.Transaction
	if !decodeJSON(w, r, &t) {
		return
	}
	saved, err := s.deps.Transactions.Create(r.Context(), t)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateLedgerCaches()
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var t core.Transaction
	if !decodeJSON(w, r, &t) {
		return
	}
	id := r.PathValue("id")
	found, err := s.deps.Transactions.Update(r.Context(), id, t)
	if err == nil && found {
		s.invalidateLedgerCaches()
	}
	t.ID = id
	writeFound(w, r, found, err, t)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := s.deps.Transactions.Delete(r.Context(), id)
	if err == nil && found {
		s.invalidateLedgerCaches()
	}
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if sum, ok := s.summaryCache.Get(summaryCacheKey); ok {
		writeJSON(w, http.StatusOK, sum)
		return
	}
	sum, err := s.deps.Ledger.Summarize(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.summaryCache.Set(summaryCacheKey, sum)
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if totals, ok := s.categoryCache.Get(summaryCacheKey); ok {
		writeJSON(w, http.StatusOK, totals)
		return
	}
	totals, err := s.deps.Ledger.ByCategory(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.categoryCache.Set(summaryCacheKey, totals)
	writeJSON(w, http.StatusOK, totals)
}

func (s *Server) handleMonthlySeries(w http.ResponseWriter, r *http.Request) {
	if series, ok := s.monthlyCache.Get(summaryCacheKey); ok {
		writeJSON(w, http.StatusOK, series)
		return
	}
	series, err := s.deps.Ledger.MonthlySeries(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.monthlyCache.Set(summaryCacheKey, series)
	writeJSON(w, http.StatusOK, series)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	txs, err := s.deps.Ledger.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ledger.ExportFilename(time.Now())+`"`)
	if err := ledger.WriteCSV(w, txs); err != nil {
		s.logger.ErrorContext(r.Context(), "CSV export failed", "error", err)
	}
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := s.deps.Budgets.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if budgets == nil {
		budgets = []core.Budget{}
	}
	writeJSON(w, http.StatusOK, budgets)
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var b core.Budget
	if !decodeJSON(w, r, &b) {
		return
	}
	saved, err := s.deps.Budgets.Add(r.Context(), b)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	var b core.Budget
	if !decodeJSON(w, r, &b) {
		return
	}
	id := r.PathValue("id")
	found, err := s.deps.Budgets.Update(r.Context(), id, b)
	b.ID = id
	writeFound(w, r, found, err, b)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := s.deps.Budgets.Delete(r.Context(), id)
	writeFound(w, r, found, err, map[string]string{"id": id})
}

func (s *Server) handleBudgetStatus(w http.ResponseWriter, r *http.Request) {
	txs, err := s.deps.Ledger.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	statuses, err := s.deps.Budgets.Statuses(r.Context(), txs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}
