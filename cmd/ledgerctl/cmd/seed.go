package cmd

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/cafe_ledger/internal/chart"
	"github.com/SscSPs/cafe_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

var chartFile string

var seedChartCmd = &cobra.Command{
	Use:   "seed-chart",
	Short: "Create the chart of accounts from a YAML file",
	Long: `Create every account listed in the chart file that does not exist yet.
Accounts whose code is already registered are left untouched, so the command
can be run again after editing the file.

Example:
  ledgerctl seed-chart --file config/chart_of_accounts.yaml`,
	RunE: runSeedChart,
}

func init() {
	seedChartCmd.Flags().StringVar(&chartFile, "file", "config/chart_of_accounts.yaml", "chart of accounts YAML file")
}

func runSeedChart(cmd *cobra.Command, args []string) error {
	c, err := chart.Load(chartFile)
	if err != nil {
		return err
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

	res, err := chart.Seed(ctx, svc.Account, c)
	if err != nil {
		return fmt.Errorf("failed to seed chart: %w", err)
	}

	slog.Info("Chart seeded", "created", res.Created, "existing", res.Existing)
	fmt.Fprintf(cmd.OutOrStdout(), "created %d accounts, %d already present\n", res.Created, res.Existing)
	return nil
}
