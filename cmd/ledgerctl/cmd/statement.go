package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/spf13/cobra"
)

func newStatementCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "statement",
		Short: "List every entry in replay order with running totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withLedger(cmd.Context(), func(cfg *config.Config, svc *portssvc.ServiceContainer) error {
				lines, err := svc.Ledger.GetStatement(cmd.Context())
				if err != nil {
					return err
				}
				resp := dto.ToStatementResponse(lines)
				return render(cmd.OutOrStdout(), opts.output, resp, func(tw *tabwriter.Writer) {
					fmt.Fprintln(tw, "ID\tDATE\tTYPE\tTITLE\tAMOUNT\tBALANCE\tSAVINGS")
					for _, l := range resp.Lines {
						fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
							l.Transaction.ID,
							l.Transaction.Date.In(cfg.ReportLocation).Format(time.DateTime),
							l.Transaction.Type,
							l.Transaction.Title,
							utils.FormatAmount(l.Transaction.Amount),
							utils.FormatAmount(l.BalanceAfter),
							utils.FormatAmount(l.SavingsAfter))
					}
				})
			})
		},
	}
}
