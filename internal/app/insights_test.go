package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictCashflowRendersForecast(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/predictions/cashflow", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"predicted_income":5000000,"predicted_expense":3200000,"insight":"Pengeluaran stabil."}`))
	})

	ta := newTestApp(t, r)
	require.NoError(t, ta.PredictCashflow(context.Background()))

	out := ta.out.String()
	assert.Contains(t, out, "Prediksi Arus Kas Bulan Depan")
	assert.Contains(t, out, "Rp 5.000.000")
	assert.Contains(t, out, "Rp 3.200.000")
	assert.Contains(t, out, "Pengeluaran stabil.")
}

func TestPredictCashflowShowsBackendDetail(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/predictions/cashflow", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Data transaksi belum cukup"}`))
	})

	ta := newTestApp(t, r)
	require.Error(t, ta.PredictCashflow(context.Background()))
	assert.Contains(t, ta.notify.String(), "Data transaksi belum cukup")
}

func TestRecommendBusinessRendersIdeas(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/recommendations/business", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"recommendations":[
			{"nama":"Warung Kopi","deskripsi":"Kedai kopi rumahan.","modal_dibutuhkan":15000000,"potensi_keuntungan":"Tinggi","tingkat_risiko":"Sedang"}
		]}`))
	})

	ta := newTestApp(t, r)
	in := RecommendationInput{Capital: "20000000", Interest: "kuliner", Location: "Bandung"}
	require.NoError(t, ta.RecommendBusiness(context.Background(), in))

	out := ta.out.String()
	assert.Contains(t, out, "Warung Kopi")
	assert.Contains(t, out, "Rp 15.000.000")
	assert.Contains(t, out, "Sedang")
}

func TestRecommendBusinessEmptyResultIsInformational(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/recommendations/business", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"recommendations":[]}`))
	})

	ta := newTestApp(t, r)
	in := RecommendationInput{Capital: "1000", Interest: "kuliner", Location: "Bandung"}
	require.NoError(t, ta.RecommendBusiness(context.Background(), in))
	assert.Contains(t, ta.notify.String(), "Tidak ada rekomendasi usaha")
}

func TestRecommendBusinessValidatesCapital(t *testing.T) {
	ta := newTestApp(t, chi.NewRouter())
	in := RecommendationInput{Capital: "abc", Interest: "kuliner", Location: "Bandung"}
	assert.Error(t, ta.RecommendBusiness(context.Background(), in))
}
