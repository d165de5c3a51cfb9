package commands

import (
	"github.com/spf13/cobra"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var from string
	var to string
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Unduh laporan keuangan PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return rt.app.DownloadReport(cmd.Context(), from, to, out)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().StringVar(&to, "to", "", "end date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: FinSight_Laporan_<from>_sampai_<to>.pdf)")

	return cmd
}
