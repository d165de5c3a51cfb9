package app

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTransactionValidation(t *testing.T) {
	ta := newTestApp(t, chi.NewRouter())

	cases := []struct {
		name string
		in   TransactionInput
	}{
		{"bad date", TransactionInput{Date: "01/06/2025", Type: "pemasukan", Amount: "10", Category: "gaji"}},
		{"bad type", TransactionInput{Date: "2025-06-01", Type: "transfer", Amount: "10", Category: "gaji"}},
		{"bad amount", TransactionInput{Date: "2025-06-01", Type: "pemasukan", Amount: "sepuluh", Category: "gaji"}},
		{"negative amount", TransactionInput{Date: "2025-06-01", Type: "pemasukan", Amount: "-10", Category: "gaji"}},
		{"missing category", TransactionInput{Date: "2025-06-01", Type: "pemasukan", Amount: "10", Category: " "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ta.AddTransaction(context.Background(), tc.in)
			require.Error(t, err)
		})
	}
}

func TestAddTransactionRefreshesCache(t *testing.T) {
	var list atomic.Int32
	r := chi.NewRouter()
	r.Post("/transactions", func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		assert.Contains(t, string(body), `"pengeluaran"`)
		assert.Contains(t, string(body), `"2025-06-10"`)
		w.Write([]byte(`{"id":5,"date":"2025-06-10","type":"pengeluaran","amount":25000,"category":"makanan"}`))
	})
	r.Get("/transactions", func(w http.ResponseWriter, req *http.Request) {
		list.Add(1)
		w.Write([]byte(`[{"id":5,"date":"2025-06-10","type":"pengeluaran","amount":25000,"category":"makanan"}]`))
	})

	ta := newTestApp(t, r)
	err := ta.AddTransaction(context.Background(), TransactionInput{
		Date:     "2025-06-10",
		Type:     "pengeluaran",
		Amount:   "25000",
		Category: "makanan",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), list.Load(), "cache invalidated and refetched")
	require.Len(t, ta.Transactions(), 1)
	assert.Contains(t, ta.notify.String(), "berhasil disimpan")
}

func TestDeleteTransactionDeclined(t *testing.T) {
	var deletes atomic.Int32
	r := chi.NewRouter()
	r.Delete("/transactions/{id}", func(w http.ResponseWriter, req *http.Request) {
		deletes.Add(1)
		w.Write([]byte(`{}`))
	})

	ta := newTestApp(t, r)
	ta.In = strings.NewReader("n\n")

	require.NoError(t, ta.DeleteTransaction(context.Background(), 5))
	assert.Zero(t, deletes.Load(), "declined confirmation issues no request")
}

func TestDeleteTransactionConfirmed(t *testing.T) {
	var deletes atomic.Int32
	r := chi.NewRouter()
	r.Delete("/transactions/{id}", func(w http.ResponseWriter, req *http.Request) {
		deletes.Add(1)
		w.Write([]byte(`{}`))
	})
	r.Get("/transactions", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[]`))
	})

	ta := newTestApp(t, r)
	require.NoError(t, ta.DeleteTransaction(context.Background(), 5))
	assert.Equal(t, int32(1), deletes.Load())
	assert.Contains(t, ta.notify.String(), "berhasil dihapus")
}

func TestRenderTransactionsSortedNewestFirst(t *testing.T) {
	ta := newTestApp(t, chi.NewRouter())
	ta.setTransactions(parseTxs(t,
		`[{"id":1,"date":"2025-06-01","type":"pemasukan","amount":100,"category":"gaji"},
		  {"id":2,"date":"2025-06-15","type":"pengeluaran","amount":50,"category":"makanan"}]`))

	ta.RenderTransactions()
	out := ta.out.String()
	assert.Less(t, strings.Index(out, "2025-06-15"), strings.Index(out, "2025-06-01"))
}
