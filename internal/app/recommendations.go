package app

import (
	"context"
	"fmt"
)

// RecommendationInput is the raw form input for a business recommendation
// request.
type RecommendationInput struct {
	Capital  string
	Interest string
	Location string
}

// RecommendBusiness requests AI business ideas for the given capital,
// interest and location. An empty result is informational, not an error.
func (a *App) RecommendBusiness(ctx context.Context, in RecommendationInput) error {
	capital, err := parseAmount("modal", in.Capital)
	if err != nil {
		return err
	}

	recs, err := a.API.RecommendBusiness(ctx, capital, in.Interest, in.Location)
	if err != nil {
		a.notifyFailure(err, "Terjadi kesalahan saat mendapatkan rekomendasi usaha.")
		return err
	}
	if len(recs) == 0 {
		a.Notify.Info("Tidak ada rekomendasi usaha yang ditemukan dengan kriteria tersebut.")
		return nil
	}

	fmt.Fprintln(a.Out, headingStyle.Render("Rekomendasi Usaha"))
	for _, rec := range recs {
		fmt.Fprintf(a.Out, "\n%s\n", headingStyle.Render(rec.Name))
		fmt.Fprintf(a.Out, "%s\n", rec.Description)
		fmt.Fprintf(a.Out, "Modal      : %s\n", a.format(rec.RequiredCapital))
		fmt.Fprintf(a.Out, "Keuntungan : %s\n", rec.ProfitPotential)
		fmt.Fprintf(a.Out, "Risiko     : %s\n", rec.RiskLevel)
	}
	return nil
}
