package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/model"
)

// PredictCashflow asks the backend for an AI cashflow forecast based on the
// user's transaction history.
func (c *Client) PredictCashflow(ctx context.Context) (model.CashflowPrediction, error) {
	var p model.CashflowPrediction
	if err := c.do(ctx, http.MethodPost, "/predictions/cashflow", nil, "", &p); err != nil {
		return model.CashflowPrediction{}, err
	}
	return p, nil
}

// RecommendBusiness requests AI business recommendations for the given
// capital, interest and location.
func (c *Client) RecommendBusiness(ctx context.Context, capital decimal.Decimal, interest, location string) ([]model.BusinessRecommendation, error) {
	body := map[string]any{"modal": capital, "minat": interest, "lokasi": location}
	var resp struct {
		Recommendations []model.BusinessRecommendation `json:"recommendations"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/recommendations/business", body, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}

// AnalyzeFeasibility runs the backend's break-even feasibility analysis.
// The backend expects the inputs as query parameters on a POST. This is the
// one cancellable call in the client: callers are expected to cancel a
// pending analysis before starting another.
func (c *Client) AnalyzeFeasibility(ctx context.Context, initialCapital, operationalCost, estimatedIncome decimal.Decimal) (model.FeasibilityResult, error) {
	q := url.Values{}
	q.Set("modal_awal", initialCapital.String())
	q.Set("biaya_operasional", operationalCost.String())
	q.Set("estimasi_pemasukan", estimatedIncome.String())

	var r model.FeasibilityResult
	if err := c.do(ctx, http.MethodPost, "/analysis/feasibility?"+q.Encode(), nil, "", &r); err != nil {
		return model.FeasibilityResult{}, err
	}
	return r, nil
}
