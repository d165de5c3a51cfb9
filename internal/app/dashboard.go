package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/finsight-dev/finsight/internal/analytics"
	"github.com/finsight-dev/finsight/internal/chart"
)

var (
	headingStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	placeholderStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

const noDataPlaceholder = "Data tidak tersedia untuk ditampilkan."

// RefreshTransactions fetches the full transaction list into the cache. On
// failure the cache is reset so stale rows never linger.
func (a *App) RefreshTransactions(ctx context.Context) error {
	txs, err := a.API.ListTransactions(ctx)
	if err != nil {
		a.setTransactions(nil)
		a.notifyFailure(err, "Gagal memuat transaksi.")
		return err
	}
	a.setTransactions(txs)
	return nil
}

// RenderDashboard shows the summary figures and both charts. A summary
// failure is reported but does not stop the charts, which draw from the
// local cache.
func (a *App) RenderDashboard(ctx context.Context) error {
	summary, err := a.API.DashboardSummary(ctx)
	if err != nil {
		a.notifyFailure(err, "Gagal memuat ringkasan dashboard.")
	} else {
		fmt.Fprintln(a.Out, headingStyle.Render("Ringkasan"))
		fmt.Fprintf(a.Out, "Total Pemasukan    : %s\n", a.format(summary.TotalIncome))
		fmt.Fprintf(a.Out, "Total Pengeluaran  : %s\n", a.format(summary.TotalExpense))
		fmt.Fprintf(a.Out, "Saldo Saat Ini     : %s\n", a.format(summary.CurrentBalance))
		fmt.Fprintf(a.Out, "Transaksi Bulan Ini: %d\n\n", summary.TransactionsThisMonth)
	}

	a.renderCashflowChart(time.Now())
	a.renderCategoryChart()
	return err
}

func (a *App) renderCashflowChart(now time.Time) {
	fmt.Fprintln(a.Out, headingStyle.Render("Arus Kas 6 Bulan"))
	if len(a.txs) == 0 {
		_ = a.Charts.Close(chart.SlotCashflow)
		fmt.Fprintln(a.Out, placeholderStyle.Render(noDataPlaceholder))
		return
	}

	cf := analytics.MonthlyCashflow(a.txs, now)
	renderer := &chart.CashflowChart{Data: cf, Format: a.format}
	if err := a.Charts.Replace(chart.SlotCashflow, renderer); err != nil {
		a.Notify.Error("%s", err)
		return
	}
	_ = a.Charts.Render(chart.SlotCashflow, a.Out)
	fmt.Fprintln(a.Out)
}

func (a *App) renderCategoryChart() {
	fmt.Fprintln(a.Out, headingStyle.Render("Pengeluaran per Kategori"))
	totals := analytics.CategoryTotals(a.txs)
	if len(totals) == 0 {
		_ = a.Charts.Close(chart.SlotCategories)
		fmt.Fprintln(a.Out, placeholderStyle.Render("Tidak ada data pengeluaran."))
		return
	}

	renderer := &chart.CategoryChart{Totals: totals, Format: a.format}
	if err := a.Charts.Replace(chart.SlotCategories, renderer); err != nil {
		a.Notify.Error("%s", err)
		return
	}
	_ = a.Charts.Render(chart.SlotCategories, a.Out)
	fmt.Fprintln(a.Out)
}
