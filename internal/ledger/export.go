package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"dayboard/internal/core"
)

var csvHeader = []string{"Date", "Type", "Description", "Category", "Amount"}

// WriteCSV renders the transactions as CSV, one row per entry after the
// header. A missing category is written as "-".
func WriteCSV(w io.Writer, txs []core.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range txs {
		category := t.Category
		if category == "" {
			category = "-"
		}
		row := []string{t.Date, string(t.Type), t.Description, category, strconv.FormatInt(t.Amount, 10)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename names the download with the day it was produced.
func ExportFilename(now time.Time) string {
	return "transactions-" + now.Format(core.DayFormat) + ".csv"
}
