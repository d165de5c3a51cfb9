package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/ui"
)

func newRegisterCommand(opts *rootOptions) *cobra.Command {
	var name string
	var email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Daftar akun FinSight baru",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}

			password, err := ui.PromptPassword(os.Stdout, "Kata sandi")
			if err != nil {
				return err
			}
			repeat, err := ui.PromptPassword(os.Stdout, "Ulangi kata sandi")
			if err != nil {
				return err
			}
			if password != repeat {
				return errors.New("kata sandi tidak sama")
			}
			return rt.app.Register(cmd.Context(), name, email, password)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
