package ledger

import (
	"strings"
	"testing"
	"time"

	"dayboard/internal/core"
)

func TestWriteCSV_ExactOutput(t *testing.T) {
	txs := []core.Transaction{
		{Date: "2024-01-01", Type: core.Income, Description: "Salary", Amount: 500000},
		{Date: "2024-01-02", Type: core.Expense, Description: "Food", Category: "Food", Amount: 40000},
	}

	var b strings.Builder
	if err := WriteCSV(&b, txs); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "Date,Type,Description,Category,Amount\n" +
		"2024-01-01,income,Salary,-,500000\n" +
		"2024-01-02,expense,Food,Food,40000\n"
	if b.String() != want {
		t.Errorf("WriteCSV output:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestWriteCSV_EmptyLedgerWritesHeaderOnly(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if b.String() != "Date,Type,Description,Category,Amount\n" {
		t.Errorf("WriteCSV output = %q", b.String())
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)
	if got := ExportFilename(now); got != "transactions-2024-03-10.csv" {
		t.Errorf("ExportFilename = %q", got)
	}
}
