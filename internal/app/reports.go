package app

import (
	"context"
	"fmt"
	"os"

	"github.com/finsight-dev/finsight/internal/model"
)

// DownloadReport fetches the PDF financial report for a date range and
// writes it to outPath. An empty outPath uses the web client's filename
// convention.
func (a *App) DownloadReport(ctx context.Context, startStr, endStr, outPath string) error {
	start, err := model.ParseDate(startStr)
	if err != nil {
		return fmt.Errorf("tanggal mulai harus berformat %s", model.DateLayout)
	}
	end, err := model.ParseDate(endStr)
	if err != nil {
		return fmt.Errorf("tanggal akhir harus berformat %s", model.DateLayout)
	}
	if end.Before(start.Time) {
		return fmt.Errorf("tanggal akhir sebelum tanggal mulai")
	}

	data, err := a.API.FinancialReport(ctx, start, end)
	if err != nil {
		a.notifyFailure(err, "Terjadi kesalahan saat mengunduh laporan.")
		return err
	}

	if outPath == "" {
		outPath = fmt.Sprintf("FinSight_Laporan_%s_sampai_%s.pdf", start, end)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	a.Notify.Success("Laporan berhasil diunduh: %s", outPath)
	return nil
}
