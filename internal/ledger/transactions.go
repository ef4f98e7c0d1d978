package ledger

import (
	"context"
	"sort"

	"dayboard/internal/core"
	"dayboard/internal/storage"
	"dayboard/internal/trackers"
)

// Transactions manages the ledger entries. Newest entries sit first, the way
// the dashboard displays them.
type Transactions struct {
	list *trackers.List[core.Transaction]
}

func NewTransactions(kv storage.KV) *Transactions {
	col := storage.NewCollection[core.Transaction](kv, storage.KeyTransactions, nil)
	return &Transactions{list: trackers.NewList(col, func(t core.Transaction) string { return t.ID }, true)}
}

func (s *Transactions) List(ctx context.Context) ([]core.Transaction, error) {
	return s.list.All(ctx)
}

func (s *Transactions) Get(ctx context.Context, id string) (core.Transaction, bool, error) {
	txs, err := s.list.All(ctx)
	if err != nil {
		return core.Transaction{}, false, err
	}
	for _, t := range txs {
		if t.ID == id {
			return t, true, nil
		}
	}
	return core.Transaction{}, false, nil
}

func (s *Transactions) Add(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if t.Date == "" {
		t.Date = core.Today()
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	t.ID = core.NewID()
	if err := s.list.Add(ctx, t); err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}

func (s *Transactions) Update(ctx context.Context, id string, t core.Transaction) (bool, error) {
	if err := t.Validate(); err != nil {
		return false, err
	}
	return s.list.Update(ctx, id, func(cur *core.Transaction) {
		id := cur.ID
		*cur = t
		cur.ID = id
	})
}

func (s *Transactions) Delete(ctx context.Context, id string) (bool, error) {
	return s.list.Remove(ctx, id)
}

// Summary holds the headline ledger figures. Balance is always
// income minus expense.
type Summary struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

func (s *Transactions) Summarize(ctx context.Context) (Summary, error) {
	txs, err := s.list.All(ctx)
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	for _, t := range txs {
		switch t.Type {
		case core.Income:
			sum.Income += t.Amount
		case core.Expense:
			sum.Expense += t.Amount
		}
	}
	sum.Balance = sum.Income - sum.Expense
	return sum, nil
}

// ByCategory groups expense amounts by category. Entries without a category
// are left out.
func (s *Transactions) ByCategory(ctx context.Context) (map[string]int64, error) {
	txs, err := s.list.All(ctx)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int64)
	for _, t := range txs {
		if t.Type == core.Expense && t.Category != "" {
			totals[t.Category] += t.Amount
		}
	}
	return totals, nil
}

// MonthBucket aggregates one calendar month of the ledger.
type MonthBucket struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// MonthlySeries buckets transactions by calendar month and returns the most
// recent six buckets in ascending order.
func (s *Transactions) MonthlySeries(ctx context.Context) ([]MonthBucket, error) {
	txs, err := s.list.All(ctx)
	if err != nil {
		return nil, err
	}
	byMonth := make(map[string]*MonthBucket)
	for _, t := range txs {
		if len(t.Date) < 7 {
			continue
		}
		month := t.Date[:7]
		b, ok := byMonth[month]
		if !ok {
			b = &MonthBucket{Month: month}
			byMonth[month] = b
		}
		switch t.Type {
		case core.Income:
			b.Income += t.Amount
		case core.Expense:
			b.Expense += t.Amount
		}
	}
	series := make([]MonthBucket, 0, len(byMonth))
	for _, b := range byMonth {
		series = append(series, *b)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	if len(series) > 6 {
		series = series[len(series)-6:]
	}
	return series, nil
}
