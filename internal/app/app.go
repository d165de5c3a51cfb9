// Package app contains the feature controllers: one per screen, each
// reading input, calling the API layer and re-rendering its part of the
// terminal. Controllers share an injected App; the App's setters are the
// only write path to the in-memory caches.
package app

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/api"
	"github.com/finsight-dev/finsight/internal/chart"
	"github.com/finsight-dev/finsight/internal/config"
	"github.com/finsight-dev/finsight/internal/model"
	"github.com/finsight-dev/finsight/internal/session"
	"github.com/finsight-dev/finsight/internal/ui"
)

// App bundles the shared state and collaborators for all controllers.
type App struct {
	Config  *config.Config
	Session *session.Session
	Store   *session.Store
	API     *api.Client
	Charts  *chart.Registry
	Notify  *ui.Notifier

	// Out receives screen content, In feeds confirmations.
	Out io.Writer
	In  io.Reader

	txs []model.Transaction
}

// Transactions returns the cached transaction list.
func (a *App) Transactions() []model.Transaction {
	return a.txs
}

// setTransactions replaces the cache. Controllers call it only from refresh
// paths.
func (a *App) setTransactions(txs []model.Transaction) {
	a.txs = txs
}

// format renders an amount in the configured currency.
func (a *App) format(amount decimal.Decimal) string {
	return ui.FormatCurrency(a.Config.Currency, amount)
}

// notifyFailure shows a request failure per the error taxonomy: backend
// detail verbatim for HTTP errors, the generic message otherwise. Callers
// handle cancellation before getting here.
func (a *App) notifyFailure(err error, generic string) {
	if apiErr, ok := api.AsAPIError(err); ok && apiErr.Detail != "" {
		a.Notify.Error("%s", apiErr.Detail)
		return
	}
	a.Notify.Error("%s", generic)
}
