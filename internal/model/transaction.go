package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The backend declares amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType distinguishes income from expense. The wire values are
// the backend's Indonesian labels.
type TransactionType string

const (
	TypeIncome  TransactionType = "pemasukan"
	TypeExpense TransactionType = "pengeluaran"
)

// Valid reports whether t is one of the two known types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single income or expense record owned by the
// authenticated user.
type Transaction struct {
	ID          int             `json:"id"`
	Date        Date            `json:"date"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
}

// NewTransaction holds the fields for creating a transaction.
type NewTransaction struct {
	Date        Date            `json:"date"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
}

// DashboardSummary is the backend's aggregate view of the user's ledger.
type DashboardSummary struct {
	TotalIncome           decimal.Decimal `json:"total_pemasukan"`
	TotalExpense          decimal.Decimal `json:"total_pengeluaran"`
	CurrentBalance        decimal.Decimal `json:"saldo_saat_ini"`
	TransactionsThisMonth int             `json:"total_transaksi_bulan_ini"`
}
