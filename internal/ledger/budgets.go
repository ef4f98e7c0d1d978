package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"dayboard/internal/core"
	"dayboard/internal/storage"
	"dayboard/internal/trackers"
)

// Budgets manages per-category spending limits.
type Budgets struct {
	list *trackers.List[core.Budget]
}

func NewBudgets(kv storage.KV) *Budgets {
	col := storage.NewCollection[core.Budget](kv, storage.KeyBudgets, nil)
	return &Budgets{list: trackers.NewList(col, func(b core.Budget) string { return b.ID }, false)}
}

func (s *Budgets) List(ctx context.Context) ([]core.Budget, error) {
	return s.list.All(ctx)
}

func (s *Budgets) Add(ctx context.Context, b core.Budget) (core.Budget, error) {
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}
	b.ID = core.NewID()
	if err := s.list.Add(ctx, b); err != nil {
		return core.Budget{}, err
	}
	return b, nil
}

func (s *Budgets) Update(ctx context.Context, id string, b core.Budget) (bool, error) {
	if err := b.Validate(); err != nil {
		return false, err
	}
	return s.list.Update(ctx, id, func(cur *core.Budget) {
		id := cur.ID
		*cur = b
		cur.ID = id
	})
}

func (s *Budgets) Delete(ctx context.Context, id string) (bool, error) {
	return s.list.Remove(ctx, id)
}

// BudgetStatus is a budget joined with the spending recorded against its
// category. Percentage is capped at 100; OverBy is zero unless the budget is
// exceeded.
type BudgetStatus struct {
	core.Budget
	Spent      int64 `json:"spent"`
	Percentage int64 `json:"percentage"`
	OverBudget bool  `json:"isOverBudget"`
	OverBy     int64 `json:"overBy"`
}

// Statuses computes the status of every budget against the given
// transactions. Only expense entries whose category matches the budget
// category exactly count as spending.
func (s *Budgets) Statuses(ctx context.Context, txs []core.Transaction) ([]BudgetStatus, error) {
	budgets, err := s.list.All(ctx)
	if err != nil {
		return nil, err
	}
	spentBy := make(map[string]int64)
	for _, t := range txs {
		if t.Type == core.Expense && t.Category != "" {
			spentBy[t.Category] += t.Amount
		}
	}
	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		st := BudgetStatus{Budget: b, Spent: spentBy[b.Category]}
		st.Percentage = percentage(st.Spent, b.Limit)
		if st.Spent > b.Limit {
			st.OverBudget = true
			st.OverBy = st.Spent - b.Limit
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

func percentage(spent, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(spent).
		Div(decimal.NewFromInt(limit)).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
	if pct > 100 {
		return 100
	}
	return pct
}
