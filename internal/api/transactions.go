package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/finsight-dev/finsight/internal/model"
)

// ListTransactions fetches the user's full transaction list.
func (c *Client) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions", nil, "", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// CreateTransaction records a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, tx model.NewTransaction) (model.Transaction, error) {
	var created model.Transaction
	if err := c.doJSON(ctx, http.MethodPost, "/transactions", tx, &created); err != nil {
		return model.Transaction{}, err
	}
	return created, nil
}

// DeleteTransaction removes a transaction by ID.
func (c *Client) DeleteTransaction(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil, "", nil)
}

// DashboardSummary fetches the backend's aggregate dashboard figures.
func (c *Client) DashboardSummary(ctx context.Context) (model.DashboardSummary, error) {
	var s model.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/dashboard/summary", nil, "", &s); err != nil {
		return model.DashboardSummary{}, err
	}
	return s, nil
}
