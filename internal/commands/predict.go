package commands

import (
	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/app"
)

func newPredictCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "predict",
		Short: "Prediksi arus kas bulan depan dari AI",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := rt.nav.Go(cmd.Context(), app.PagePredictions); err != nil {
				return err
			}
			return rt.app.PredictCashflow(cmd.Context())
		},
	}
}
