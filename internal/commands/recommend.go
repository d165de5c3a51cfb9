package commands

import (
	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/app"
)

func newRecommendCommand(opts *rootOptions) *cobra.Command {
	var in app.RecommendationInput

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rekomendasi usaha dari AI",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := rt.nav.Go(cmd.Context(), app.PageRecommendations); err != nil {
				return err
			}
			return rt.app.RecommendBusiness(cmd.Context(), in)
		},
	}

	cmd.Flags().StringVar(&in.Capital, "modal", "", "available capital (required)")
	_ = cmd.MarkFlagRequired("modal")
	cmd.Flags().StringVar(&in.Interest, "minat", "", "business interest (required)")
	_ = cmd.MarkFlagRequired("minat")
	cmd.Flags().StringVar(&in.Location, "lokasi", "", "location (required)")
	_ = cmd.MarkFlagRequired("lokasi")

	return cmd
}
