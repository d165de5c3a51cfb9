package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/finsight-dev/finsight/internal/model"
)

// FinancialReport downloads the PDF financial report for a date range and
// returns the raw document bytes.
func (c *Client) FinancialReport(ctx context.Context, start, end model.Date) ([]byte, error) {
	q := url.Values{}
	q.Set("start_date", start.String())
	q.Set("end_date", end.String())

	resp, err := c.raw(ctx, http.MethodGet, "/reports/financial?"+q.Encode(), nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	return data, nil
}
