// Package cmd provides the ledgerctl operator commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/cafe_ledger/internal/core/ports/services"
	"github.com/SscSPs/cafe_ledger/internal/core/services"
	"github.com/SscSPs/cafe_ledger/internal/middleware"
	"github.com/SscSPs/cafe_ledger/internal/platform/config"
	"github.com/SscSPs/cafe_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/cafe_ledger/internal/tenancy"
	"github.com/SscSPs/cafe_ledger/pkg/database"
	"github.com/spf13/cobra"
)

// operatorID is recorded as created_by/last_updated_by for CLI writes.
const operatorID = "ledgerctl"

var (
	debug  bool
	tenant string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Operate the cafe ledger database",
	Long: `ledgerctl runs maintenance tasks against the cafe ledger
without going through the HTTP API.

Example:
  ledgerctl migrate up
  ledgerctl seed-chart --file config/chart_of_accounts.yaml
  ledgerctl trial-balance --to 2024-01-31
  ledgerctl token --sub alice --perms accounting.manage`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&tenant, "tenant", "", "tenant id whose database is used (default database when empty)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedChartCmd)
	rootCmd.AddCommand(trialBalanceCmd)
	rootCmd.AddCommand(tokenCmd)
}

// operatorContext carries the CLI principal and the selected tenant.
func operatorContext(ctx context.Context) context.Context {
	ctx = middleware.WithPrincipal(ctx, domain.Principal{
		UserID:      operatorID,
		TenantID:    tenant,
		Permissions: []domain.Permission{domain.PermAll},
	})
	return tenancy.WithTenant(ctx, tenant)
}

// openServices connects to the database and builds the service layer.
// The returned func releases every pool.
func openServices(ctx context.Context, cfg *config.Config) (*portssvc.ServiceContainer, func(), error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.EnableDBCheck)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	pools := tenancy.NewRegistry(pool, cfg.TenantDatabases, database.PoolOpener(cfg.DBMaxConns, cfg.EnableDBCheck), slog.Default())
	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pools))
	return container, pools.Close, nil
}
