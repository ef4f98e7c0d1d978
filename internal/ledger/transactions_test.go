package ledger

import (
	"context"
	"testing"

	"dayboard/internal/core"
	"dayboard/internal/storage"
)

func TestTransactions_BalanceIdentity(t *testing.T) {
	ctx := context.Background()
	s := NewTransactions(storage.NewMemoryKV())

	add := func(typ core.TransactionType, amount int64) {
		t.Helper()
		_, err := s.Add(ctx, core.Transaction{
			Type:        typ,
			Description: "entry",
			Amount:      amount,
			Date:        "2024-01-15",
		})
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	add(core.Income, 500000)
	add(core.Expense, 40000)
	add(core.Expense, 15000)

	sum, err := s.Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Income != 500000 || sum.Expense != 55000 {
		t.Errorf("income=%d expense=%d, want 500000/55000", sum.Income, sum.Expense)
	}
	if sum.Balance != sum.Income-sum.Expense {
		t.Errorf("balance=%d, want income-expense=%d", sum.Balance, sum.Income-sum.Expense)
	}
}

func TestTransactions_AddRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	s := NewTransactions(storage.NewMemoryKV())

	tests := []struct {
		name string
		tx   core.Transaction
		want error
	}{
		{"zero amount", core.Transaction{Type: core.Income, Description: "x", Amount: 0, Date: "2024-01-01"}, core.ErrInvalidAmount},
		{"negative amount", core.Transaction{Type: core.Expense, Description: "x", Amount: -5, Date: "2024-01-01"}, core.ErrInvalidAmount},
		{"bad type", core.Transaction{Type: "transfer", Description: "x", Amount: 100, Date: "2024-01-01"}, core.ErrInvalidType},
		{"blank description", core.Transaction{Type: core.Income, Description: " ", Amount: 100, Date: "2024-01-01"}, core.ErrEmptyText},
		{"bad date", core.Transaction{Type: core.Income, Description: "x", Amount: 100, Date: "01/01/2024"}, core.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Add(ctx, tt.tx); err != tt.want {
				t.Errorf("Add = %v, want %v", err, tt.want)
			}
		})
	}

	txs, _ := s.List(ctx)
	if len(txs) != 0 {
		t.Errorf("rejected adds mutated state: %d transactions", len(txs))
	}
}

func TestTransactions_RoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := NewTransactions(kv)

	added, err := s.Add(ctx, core.Transaction{
		Type: core.Expense, Description: "Groceries", Amount: 2350, Date: "2024-02-01", Category: "Food",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	// A fresh service over the same store sees the identical record.
	got, found, err := NewTransactions(kv).Get(ctx, added.ID)
	if err != nil || !found {
		t.Fatalf("Get: %v found=%v", err, found)
	}
	if got != added {
		t.Errorf("round-trip mismatch: %+v vs %+v", got, added)
	}
}

func TestTransactions_ByCategorySkipsUncategorized(t *testing.T) {
	ctx := context.Background()
	s := NewTransactions(storage.NewMemoryKV())

	for _, tx := range []core.Transaction{
		{Type: core.Expense, Description: "a", Amount: 100, Date: "2024-01-01", Category: "Food"},
		{Type: core.Expense, Description: "b", Amount: 200, Date: "2024-01-02", Category: "Food"},
		{Type: core.Expense, Description: "c", Amount: 300, Date: "2024-01-03"},
		{Type: core.Income, Description: "d", Amount: 400, Date: "2024-01-04", Category: "Food"},
	} {
		if _, err := s.Add(ctx, tx); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	totals, err := s.ByCategory(ctx)
	if err != nil {
		t.Fatalf("ByCategory: %v", err)
	}
	if len(totals) != 1 || totals["Food"] != 300 {
		t.Errorf("ByCategory = %v, want map[Food:300]", totals)
	}
}

func TestTransactions_MonthlySeriesLastSixAscending(t *testing.T) {
	ctx := context.Background()
	s := NewTransactions(storage.NewMemoryKV())

	months := []string{"2023-09", "2023-10", "2023-11", "2023-12", "2024-01", "2024-02", "2024-03"}
	for _, m := range months {
		if _, err := s.Add(ctx, core.Transaction{
			Type: core.Expense, Description: "rent", Amount: 1000, Date: m + "-05",
		}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	series, err := s.MonthlySeries(ctx)
	if err != nil {
		t.Fatalf("MonthlySeries: %v", err)
	}
	if len(series) != 6 {
		t.Fatalf("MonthlySeries = %d buckets, want 6", len(series))
	}
	if series[0].Month != "2023-10" || series[5].Month != "2024-03" {
		t.Errorf("series range = %s..%s, want 2023-10..2024-03", series[0].Month, series[5].Month)
	}
	for i := 1; i < len(series); i++ {
		if series[i].Month <= series[i-1].Month {
			t.Errorf("series not ascending at %d: %s after %s", i, series[i].Month, series[i-1].Month)
		}
	}
}
