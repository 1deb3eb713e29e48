package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/spf13/cobra"
)

func newReportCmd(opts *globalOptions) *cobra.Command {
	var params dto.ReportParams

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize a month, a year or all time",
		Long: `Summarize ledger activity. Without --year the report covers all time;
--month requires --year.

Example:
  ledgerctl report --year 2024
  ledgerctl report --year 2024 --month 3 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withLedger(cmd.Context(), func(_ *config.Config, svc *portssvc.ServiceContainer) error {
				report, err := svc.Reporting.PeriodSummary(cmd.Context(), params.ToPeriod())
				if err != nil {
					return err
				}
				resp := dto.ToPeriodReportResponse(report)
				return render(cmd.OutOrStdout(), opts.output, resp, func(tw *tabwriter.Writer) {
					fmt.Fprintf(tw, "Period\t%s\n", resp.Period)
					fmt.Fprintf(tw, "Income\t%s\n", utils.FormatAmount(resp.Summary.TotalIncome))
					fmt.Fprintf(tw, "Spending\t%s\n", utils.FormatAmount(resp.Summary.TotalSpending))
					fmt.Fprintf(tw, "Net income\t%s\n", utils.FormatAmount(resp.Summary.NetIncome))
					fmt.Fprintf(tw, "Savings added\t%s\n", utils.FormatAmount(resp.Savings.Added))
					fmt.Fprintf(tw, "Savings taken\t%s\n", utils.FormatAmount(resp.Savings.Taken))
					fmt.Fprintf(tw, "Net savings\t%s\n", utils.FormatAmount(resp.Savings.Net))
					fmt.Fprintf(tw, "Previous (%s)\t%s\n", resp.PreviousPeriod, utils.FormatAmount(resp.Savings.PreviousNet))
					fmt.Fprintf(tw, "Savings growth\t%s%%\n", utils.FormatAmount(resp.Savings.GrowthPercent))
					fmt.Fprintf(tw, "Avg daily spending\t%s\n", utils.FormatAmount(resp.AverageDailySpending))
					fmt.Fprintf(tw, "Transactions\t%d\n", resp.Counts.Total)
					for _, k := range domain.TransactionKinds {
						fmt.Fprintf(tw, "  %s\t%d\n", k, resp.Counts.ByType[string(k)])
					}
				})
			})
		},
	}

	cmd.Flags().IntVar(&params.Year, "year", 0, "report year (omit for all time)")
	cmd.Flags().IntVar(&params.Month, "month", 0, "report month 1-12 (requires --year)")

	return cmd
}
