package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/model"
)

// Buckets is the number of months shown on the cashflow chart, ending at
// the current month.
const Buckets = 6

// Month abbreviations matching the backend's locale.
var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Ags", "Sep", "Okt", "Nov", "Des"}

// Cashflow holds per-month income and expense sums, oldest month first, the
// last bucket being the current month.
type Cashflow struct {
	Labels  [Buckets]string
	Income  [Buckets]decimal.Decimal
	Expense [Buckets]decimal.Decimal
}

// monthIndex returns a month counted continuously from year zero, so that
// subtracting two of them yields a calendar month distance.
func monthIndex(year int, month time.Month) int {
	return year*12 + int(month) - 1
}

func monthAt(index int) (year int, month time.Month) {
	return index / 12, time.Month(index%12 + 1)
}

// MonthlyCashflow buckets transactions into the 6 calendar months ending at
// now. Transactions before the window are discarded; transactions dated in
// the future fall outside the bucket range and are dropped as well, which
// mirrors the dashboard's historical behavior.
func MonthlyCashflow(txs []model.Transaction, now time.Time) Cashflow {
	var cf Cashflow
	for i := 0; i < Buckets; i++ {
		cf.Income[i] = decimal.Zero
		cf.Expense[i] = decimal.Zero

		y, m := monthAt(monthIndex(now.Year(), now.Month()) - (Buckets - 1 - i))
		cf.Labels[i] = fmt.Sprintf("%s %02d", monthNames[m-1], y%100)
	}

	startYear, startMonth := monthAt(monthIndex(now.Year(), now.Month()) - (Buckets - 1))
	windowStart := time.Date(startYear, startMonth, 1, 0, 0, 0, 0, time.UTC)

	nowIdx := monthIndex(now.Year(), now.Month())
	for _, tx := range txs {
		if tx.Date.Before(windowStart) {
			continue
		}
		monthDiff := nowIdx - monthIndex(tx.Date.Year(), tx.Date.Month())
		idx := Buckets - 1 - monthDiff
		if idx < 0 || idx >= Buckets {
			continue
		}
		if tx.Type == model.TypeIncome {
			cf.Income[idx] = cf.Income[idx].Add(tx.Amount)
		} else {
			cf.Expense[idx] = cf.Expense[idx].Add(tx.Amount)
		}
	}
	return cf
}

// CategoryTotals sums expense amounts per category. Income transactions are
// ignored.
func CategoryTotals(txs []model.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != model.TypeExpense {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}
