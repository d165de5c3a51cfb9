package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

// maxHorizonMonths caps the projection length so slow break-evens still
// produce a readable chart.
const maxHorizonMonths = 20

// Projection is a month-indexed break-even projection. Series are aligned:
// index i covers month i+1.
type Projection struct {
	// Capital is the flat initial-capital line.
	Capital []decimal.Decimal
	// CumulativeProfit is month * monthlyNetProfit.
	CumulativeProfit []decimal.Decimal
	// Net is CumulativeProfit - Capital. Computed but hidden by default in
	// the rendered chart.
	Net []decimal.Decimal
	// BreakEvenMonth is the first whole month at which cumulative profit
	// reaches the capital line.
	BreakEvenMonth int
}

// Horizon returns the number of projected months.
func (p *Projection) Horizon() int {
	return len(p.CumulativeProfit)
}

// BreakEvenProjection derives the chart series from a break-even estimate.
// It returns false when break-even is not achievable: a nil or non-positive
// estimate, or a non-positive monthly net profit.
func BreakEvenProjection(breakEvenMonths *float64, capital, monthlyNet decimal.Decimal) (*Projection, bool) {
	if breakEvenMonths == nil || *breakEvenMonths <= 0 || monthlyNet.Sign() <= 0 {
		return nil, false
	}

	breakEven := int(math.Ceil(*breakEvenMonths))
	horizon := breakEven + 3
	if horizon > maxHorizonMonths {
		horizon = maxHorizonMonths
	}

	p := &Projection{
		Capital:          make([]decimal.Decimal, horizon),
		CumulativeProfit: make([]decimal.Decimal, horizon),
		Net:              make([]decimal.Decimal, horizon),
		BreakEvenMonth:   breakEven,
	}
	for i := 0; i < horizon; i++ {
		month := decimal.NewFromInt(int64(i + 1))
		p.Capital[i] = capital
		p.CumulativeProfit[i] = monthlyNet.Mul(month)
		p.Net[i] = p.CumulativeProfit[i].Sub(capital)
	}
	return p, true
}
