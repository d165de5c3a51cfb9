package app

import (
	"context"
	"fmt"
)

// PredictCashflow requests the AI cashflow forecast and renders it.
func (a *App) PredictCashflow(ctx context.Context) error {
	prediction, err := a.API.PredictCashflow(ctx)
	if err != nil {
		a.notifyFailure(err, "Terjadi kesalahan saat membuat prediksi arus kas. Pastikan ada cukup data transaksi.")
		return err
	}

	fmt.Fprintln(a.Out, headingStyle.Render("Prediksi Arus Kas Bulan Depan"))
	fmt.Fprintf(a.Out, "Perkiraan Pemasukan  : %s\n", a.format(prediction.PredictedIncome))
	fmt.Fprintf(a.Out, "Perkiraan Pengeluaran: %s\n", a.format(prediction.PredictedExpense))
	if prediction.Insight != "" {
		fmt.Fprintf(a.Out, "\n%s\n", prediction.Insight)
	}
	return nil
}
