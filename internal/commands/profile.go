package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/ui"
)

func newProfileCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Lihat dan ubah profil akun",
	}
	cmd.AddCommand(newProfileShowCommand(opts))
	cmd.AddCommand(newProfileUpdateCommand(opts))
	cmd.AddCommand(newProfilePasswdCommand(opts))
	return cmd
}

func newProfileShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Tampilkan profil",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return rt.app.RenderProfile(cmd.Context())
		},
	}
}

func newProfileUpdateCommand(opts *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Ubah nama tampilan",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return rt.app.UpdateProfile(cmd.Context(), name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProfilePasswdCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Ganti kata sandi",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}

			current, err := ui.PromptPassword(os.Stdout, "Kata sandi saat ini")
			if err != nil {
				return err
			}
			next, err := ui.PromptPassword(os.Stdout, "Kata sandi baru")
			if err != nil {
				return err
			}
			return rt.app.ChangePassword(cmd.Context(), current, next)
		},
	}
}
