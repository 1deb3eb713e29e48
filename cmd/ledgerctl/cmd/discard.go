package cmd

import (
	"fmt"
	"strconv"

	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

func newDiscardCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "discard <transaction-id>",
		Short: "Permanently delete a ledger entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			return opts.withLedger(cmd.Context(), func(_ *config.Config, svc *portssvc.ServiceContainer) error {
				if err := svc.Ledger.DiscardTransaction(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Discarded transaction %d\n", id)
				return nil
			})
		},
	}
}
