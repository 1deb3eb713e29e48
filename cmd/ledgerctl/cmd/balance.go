package cmd

import (
	"fmt"
	"text/tabwriter"

	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/spf13/cobra"
)

func newBalanceCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance and savings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withLedger(cmd.Context(), func(_ *config.Config, svc *portssvc.ServiceContainer) error {
				totals, err := svc.Ledger.GetTotals(cmd.Context())
				if err != nil {
					return err
				}
				resp := dto.ToBalanceResponse(*totals)
				return render(cmd.OutOrStdout(), opts.output, resp, func(tw *tabwriter.Writer) {
					fmt.Fprintln(tw, "BALANCE\tSAVINGS")
					fmt.Fprintf(tw, "%s\t%s\n", utils.FormatAmount(resp.Balance), utils.FormatAmount(resp.Savings))
				})
			})
		},
	}
}
