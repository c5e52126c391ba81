package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/SscSPs/cafe_ledger/internal/platform/config"
	"github.com/SscSPs/cafe_ledger/internal/utils"
	"github.com/spf13/cobra"
)

var trialBalanceTo string

var trialBalanceCmd = &cobra.Command{
	Use:   "trial-balance",
	Short: "Print the trial balance",
	Long: `Print one row per account with its debit, credit and balance totals.

Example:
  ledgerctl trial-balance --to 2024-01-31`,
	RunE: runTrialBalance,
}

func init() {
	trialBalanceCmd.Flags().StringVar(&trialBalanceTo, "to", "", "inclusive cutoff date (YYYY-MM-DD); every line when empty")
}

func runTrialBalance(cmd *cobra.Command, args []string) error {
	var asOf *time.Time
	if trialBalanceTo != "" {
		t, err := time.Parse(domain.DateLayout, trialBalanceTo)
		if err != nil {
			return fmt.Errorf("invalid --to date: %w", err)
		}
		asOf = &t
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := operatorContext(cmd.Context())
	svc, closeDB, err := openServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	tb, err := svc.Reporting.TrialBalance(ctx, asOf)
	if err != nil {
		return fmt.Errorf("failed to compute trial balance: %w", err)
	}
	return writeTrialBalance(cmd.OutOrStdout(), tb, cfg.CurrencyCode)
}

func writeTrialBalance(out io.Writer, tb *domain.TrialBalance, currency string) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "CODE\tNAME\tTYPE\tDEBIT\tCREDIT\tBALANCE\t")
	for _, r := range tb.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n", r.Code, r.AccountName, r.AccountType,
			utils.FormatMoney(r.Debit, currency),
			utils.FormatMoney(r.Credit, currency),
			utils.FormatMoney(r.Balance, currency))
	}
	fmt.Fprintf(w, "\tTOTAL\t\t%s\t%s\t%s\t\n",
		utils.FormatMoney(tb.Totals.Debit, currency),
		utils.FormatMoney(tb.Totals.Credit, currency),
		utils.FormatMoney(tb.Totals.Balance, currency))
	if err := w.Flush(); err != nil {
		return err
	}
	if !tb.Totals.Balance.IsZero() {
		_, err := fmt.Fprintln(out, "WARNING: ledger is out of balance")
		return err
	}
	return nil
}
