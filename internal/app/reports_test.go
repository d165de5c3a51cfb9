package app

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadReportWritesFile(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/reports/financial", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "2025-01-01", req.URL.Query().Get("start_date"))
		assert.Equal(t, "2025-06-30", req.URL.Query().Get("end_date"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 fake"))
	})

	ta := newTestApp(t, r)
	out := filepath.Join(t.TempDir(), "laporan.pdf")
	require.NoError(t, ta.DownloadReport(context.Background(), "2025-01-01", "2025-06-30", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
	assert.Contains(t, ta.notify.String(), "Laporan berhasil diunduh")
}

func TestDownloadReportDefaultFilename(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/reports/financial", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("pdf"))
	})

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	ta := newTestApp(t, r)
	require.NoError(t, ta.DownloadReport(context.Background(), "2025-01-01", "2025-06-30", ""))

	_, err = os.Stat(filepath.Join(dir, "FinSight_Laporan_2025-01-01_sampai_2025-06-30.pdf"))
	assert.NoError(t, err)
}

func TestDownloadReportValidatesRange(t *testing.T) {
	ta := newTestApp(t, chi.NewRouter())

	assert.Error(t, ta.DownloadReport(context.Background(), "bukan-tanggal", "2025-06-30", ""))
	assert.Error(t, ta.DownloadReport(context.Background(), "2025-01-01", "2024-12-31", ""))
}
