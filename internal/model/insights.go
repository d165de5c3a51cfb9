package model

import "github.com/shopspring/decimal"

// FeasibilityResult is the backend's verdict on a business plan. A nil
// BreakEvenMonths means break-even is never reached (deficit).
type FeasibilityResult struct {
	NetProfit       decimal.Decimal `json:"profit_bersih"`
	ROI             *float64        `json:"roi"`
	BreakEvenMonths *float64        `json:"break_even_months"`
	Status          string          `json:"feasibility_status"`
	AIInsight       string          `json:"ai_insight"`
}

// CashflowPrediction is the AI forecast for next month's cashflow.
type CashflowPrediction struct {
	PredictedIncome  decimal.Decimal `json:"predicted_income"`
	PredictedExpense decimal.Decimal `json:"predicted_expense"`
	Insight          string          `json:"insight"`
}

// BusinessRecommendation is one AI-generated business idea.
type BusinessRecommendation struct {
	Name            string          `json:"nama"`
	Description     string          `json:"deskripsi"`
	RequiredCapital decimal.Decimal `json:"modal_dibutuhkan"`
	ProfitPotential string          `json:"potensi_keuntungan"`
	RiskLevel       string          `json:"tingkat_risiko"`
}
