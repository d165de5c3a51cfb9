package commands

import (
	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/app"
)

func newAnalyzeCommand(opts *rootOptions) *cobra.Command {
	var in app.FeasibilityInput

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analisis kelayakan usaha dan proyeksi balik modal",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := rt.nav.Go(cmd.Context(), app.PageAnalysis); err != nil {
				return err
			}
			return rt.analyzer.Analyze(cmd.Context(), in)
		},
	}

	cmd.Flags().StringVar(&in.InitialCapital, "modal", "", "initial capital (required)")
	_ = cmd.MarkFlagRequired("modal")
	cmd.Flags().StringVar(&in.OperationalCost, "biaya", "", "monthly operational cost (required)")
	_ = cmd.MarkFlagRequired("biaya")
	cmd.Flags().StringVar(&in.EstimatedIncome, "pemasukan", "", "estimated monthly income (required)")
	_ = cmd.MarkFlagRequired("pemasukan")

	return cmd
}
