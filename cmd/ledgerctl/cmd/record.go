package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/SscSPs/pocket_ledger/internal/utils/accounting"
	"github.com/spf13/cobra"
)

type recordFlags struct {
	kind        string
	title       string
	amount      string
	description string
	date        string
}

func newRecordCmd(opts *globalOptions) *cobra.Command {
	flags := &recordFlags{}

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a ledger entry",
		Long: `Record a ledger entry. Savings types are refused when the balance
(SAVE_TO_SAVINGS) or savings (TAKE_FROM_SAVINGS) do not cover the amount.

Types: SET_BALANCE, ADD_BALANCE, ADD_SPENDING, SAVE_TO_SAVINGS, TAKE_FROM_SAVINGS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := accounting.ParseAmount(flags.amount)
			if err != nil {
				return err
			}

			return opts.withLedger(cmd.Context(), func(cfg *config.Config, svc *portssvc.ServiceContainer) error {
				req := dto.CreateTransactionRequest{
					Type:   domain.TransactionKind(strings.ToUpper(strings.TrimSpace(flags.kind))),
					Title:  flags.title,
					Amount: &amount,
				}
				if flags.description != "" {
					req.Description = &flags.description
				}
				if flags.date != "" {
					date, err := utils.ParseDate(flags.date, cfg.ReportLocation)
					if err != nil {
						return err
					}
					req.Date = &date
				}

				txn, err := svc.Ledger.RecordTransaction(cmd.Context(), req)
				if err != nil {
					return err
				}
				return renderTransaction(cmd, opts.output, dto.ToTransactionResponse(txn), cfg.ReportLocation)
			})
		},
	}

	cmd.Flags().StringVarP(&flags.kind, "type", "t", "", "transaction type")
	cmd.Flags().StringVar(&flags.title, "title", "", "short label (optional for SET_BALANCE)")
	cmd.Flags().StringVarP(&flags.amount, "amount", "a", "", "non-negative amount")
	cmd.Flags().StringVarP(&flags.description, "description", "d", "", "optional description")
	cmd.Flags().StringVar(&flags.date, "date", "", "effective date, YYYY-MM-DD or RFC3339 (default now)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func renderTransaction(cmd *cobra.Command, format string, txn dto.TransactionResponse, loc *time.Location) error {
	return render(cmd.OutOrStdout(), format, txn, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "ID\tDATE\tTYPE\tTITLE\tAMOUNT")
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			txn.ID, txn.Date.In(loc).Format(time.DateTime), txn.Type, txn.Title, utils.FormatAmount(txn.Amount))
	})
}
