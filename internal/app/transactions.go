package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/finsight-dev/finsight/internal/model"
	"github.com/finsight-dev/finsight/internal/ui"
)

// TransactionInput is the raw form input for a new transaction.
type TransactionInput struct {
	Date        string
	Type        string
	Amount      string
	Category    string
	Description string
}

// AddTransaction validates the input, creates the transaction and refreshes
// the cache.
func (a *App) AddTransaction(ctx context.Context, in TransactionInput) error {
	date, err := model.ParseDate(in.Date)
	if err != nil {
		return fmt.Errorf("tanggal harus berformat %s", model.DateLayout)
	}
	typ := model.TransactionType(in.Type)
	if !typ.Valid() {
		return fmt.Errorf("jenis transaksi harus %q atau %q", model.TypeIncome, model.TypeExpense)
	}
	amount, err := parseAmount("jumlah", in.Amount)
	if err != nil {
		return err
	}
	if err := required("kategori", in.Category); err != nil {
		return err
	}

	_, err = a.API.CreateTransaction(ctx, model.NewTransaction{
		Date:        date,
		Type:        typ,
		Amount:      amount,
		Category:    in.Category,
		Description: in.Description,
	})
	if err != nil {
		a.notifyFailure(err, "Gagal menyimpan transaksi.")
		return err
	}

	a.Notify.Success("Transaksi berhasil disimpan!")
	return a.RefreshTransactions(ctx)
}

// DeleteTransaction asks for confirmation, deletes, and refreshes the
// cache.
func (a *App) DeleteTransaction(ctx context.Context, id int) error {
	if !ui.Confirm(a.In, a.Out, "Apakah Anda yakin ingin menghapus transaksi ini?") {
		return nil
	}

	if err := a.API.DeleteTransaction(ctx, id); err != nil {
		a.notifyFailure(err, "Gagal menghapus transaksi.")
		return err
	}

	a.Notify.Success("Transaksi berhasil dihapus!")
	return a.RefreshTransactions(ctx)
}

// RenderTransactions prints the cached list, newest first.
func (a *App) RenderTransactions() {
	fmt.Fprintln(a.Out, headingStyle.Render("Transaksi"))
	if len(a.txs) == 0 {
		fmt.Fprintln(a.Out, placeholderStyle.Render("Belum ada transaksi. Silakan tambahkan transaksi baru."))
		return
	}

	txs := make([]model.Transaction, len(a.txs))
	copy(txs, a.txs)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date.Time)
	})

	for _, tx := range txs {
		sign := "+"
		if tx.Type == model.TypeExpense {
			sign = "-"
		}
		fmt.Fprintf(a.Out, "%4d  %s  %-16s %s %s  %s\n",
			tx.ID, tx.Date, tx.Category, sign, a.format(tx.Amount), tx.Description)
	}
}
