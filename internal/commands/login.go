package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/ui"
)

func newLoginCommand(opts *rootOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Masuk ke akun FinSight",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}

			password, err := ui.PromptPassword(os.Stdout, "Kata sandi")
			if err != nil {
				return err
			}
			return rt.app.Login(cmd.Context(), email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
