package commands

import (
	"github.com/spf13/cobra"
)

func newLogoutCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Keluar dan hapus sesi tersimpan",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}
			return rt.app.Logout()
		},
	}
}
