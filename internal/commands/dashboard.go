package commands

import (
	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/app"
)

func newDashboardCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Tampilkan ringkasan keuangan dan grafik arus kas",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return rt.nav.Go(cmd.Context(), app.PageDashboard)
		},
	}
}
