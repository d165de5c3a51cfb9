package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/app"
)

func newTxCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Kelola transaksi pemasukan dan pengeluaran",
	}
	cmd.AddCommand(newTxListCommand(opts))
	cmd.AddCommand(newTxAddCommand(opts))
	cmd.AddCommand(newTxRemoveCommand(opts))
	return cmd
}

func newTxListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Tampilkan daftar transaksi",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return rt.nav.Go(cmd.Context(), app.PageManagement)
		},
	}
}

func newTxAddCommand(opts *rootOptions) *cobra.Command {
	var in app.TransactionInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Catat transaksi baru",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := rt.app.AddTransaction(cmd.Context(), in); err != nil {
				return err
			}
			rt.app.RenderTransactions()
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Date, "date", "", "transaction date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&in.Type, "type", "", "pemasukan or pengeluaran (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&in.Amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&in.Category, "category", "", "category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&in.Description, "desc", "", "description")

	return cmd
}

func newTxRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Hapus transaksi",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id transaksi tidak valid: %q", args[0])
			}
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return rt.app.DeleteTransaction(cmd.Context(), id)
		},
	}
}
