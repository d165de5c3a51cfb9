package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/analytics"
	"github.com/finsight-dev/finsight/internal/api"
	"github.com/finsight-dev/finsight/internal/chart"
	"github.com/finsight-dev/finsight/internal/model"
)

// Analyzer runs feasibility analyses with at most one request in flight:
// starting a new analysis cancels the pending one, and a canceled or
// superseded request never touches the screen.
type Analyzer struct {
	app *App

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// NewAnalyzer creates an Analyzer bound to the app.
func NewAnalyzer(app *App) *Analyzer {
	return &Analyzer{app: app}
}

// FeasibilityInput is the raw form input for a feasibility analysis.
type FeasibilityInput struct {
	InitialCapital  string
	OperationalCost string
	EstimatedIncome string
}

// Analyze validates the input, runs the backend analysis and renders the
// verdict plus the break-even projection. A run superseded by a newer one
// returns nil without output.
func (z *Analyzer) Analyze(ctx context.Context, in FeasibilityInput) error {
	capital, err := parseAmount("modal awal", in.InitialCapital)
	if err != nil {
		return err
	}
	cost, err := parseAmount("biaya operasional", in.OperationalCost)
	if err != nil {
		return err
	}
	income, err := parseAmount("estimasi pemasukan", in.EstimatedIncome)
	if err != nil {
		return err
	}

	z.mu.Lock()
	if z.cancel != nil {
		z.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	z.cancel = cancel
	z.gen++
	gen := z.gen
	z.mu.Unlock()
	defer cancel()

	result, err := z.app.API.AnalyzeFeasibility(ctx, capital, cost, income)

	z.mu.Lock()
	current := gen == z.gen
	if current {
		z.cancel = nil
	}
	z.mu.Unlock()

	if err != nil {
		// A canceled run was superseded on purpose; stay silent.
		if api.IsCanceled(err) {
			return nil
		}
		z.app.notifyFailure(err, "Terjadi kesalahan saat analisis kelayakan.")
		return err
	}
	if !current {
		return nil
	}

	z.render(result, capital, income.Sub(cost))
	return nil
}

func (z *Analyzer) render(r model.FeasibilityResult, capital, monthlyNet decimal.Decimal) {
	a := z.app
	fmt.Fprintln(a.Out, headingStyle.Render("Analisis Kelayakan"))
	fmt.Fprintf(a.Out, "Status        : %s\n", r.Status)
	fmt.Fprintf(a.Out, "Profit Bersih : %s\n", a.format(r.NetProfit))
	if r.ROI != nil {
		fmt.Fprintf(a.Out, "ROI           : %.2f%%\n", *r.ROI)
	} else {
		fmt.Fprintln(a.Out, "ROI           : N/A")
	}
	if r.BreakEvenMonths != nil {
		fmt.Fprintf(a.Out, "Balik Modal   : %.1f bulan\n", *r.BreakEvenMonths)
	} else {
		fmt.Fprintln(a.Out, "Balik Modal   : Tidak tercapai (Defisit)")
	}
	if r.AIInsight != "" {
		fmt.Fprintf(a.Out, "\n%s\n", r.AIInsight)
	}
	fmt.Fprintln(a.Out)

	fmt.Fprintln(a.Out, headingStyle.Render("Proyeksi Balik Modal"))
	projection, ok := analytics.BreakEvenProjection(r.BreakEvenMonths, capital, monthlyNet)
	if !ok {
		_ = a.Charts.Close(chart.SlotBreakEven)
		fmt.Fprintln(a.Out, placeholderStyle.Render("Grafik tidak tersedia (defisit atau balik modal tidak tercapai)."))
		return
	}

	renderer := &chart.ProjectionChart{Projection: projection, Format: a.format}
	if err := a.Charts.Replace(chart.SlotBreakEven, renderer); err != nil {
		a.Notify.Error("%s", err)
		return
	}
	_ = a.Charts.Render(chart.SlotBreakEven, a.Out)
}
