package cmd

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/cafe_ledger/internal/platform/config"
	"github.com/SscSPs/cafe_ledger/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate up|down",
	Short:     "Apply or roll back schema migrations",
	Long:      "Apply (up) or roll back (down) the schema migrations on the selected database.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.Up), string(database.Down)},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	url, err := databaseURL(cfg, tenant)
	if err != nil {
		return err
	}

	dir := database.Direction(args[0])
	slog.Info("Running migrations", "direction", dir, "tenant", tenant)
	if err := database.RunMigrations(url, cfg.MigrationsPath, dir, slog.Default()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "migrations %s: done\n", dir)
	return nil
}

// databaseURL returns the connection string for tenantID, the default
// database when tenantID is empty.
func databaseURL(cfg *config.Config, tenantID string) (string, error) {
	if tenantID == "" {
		return cfg.DatabaseURL, nil
	}
	url, ok := cfg.TenantDatabases[tenantID]
	if !ok {
		return "", fmt.Errorf("tenant %q has no dedicated database", tenantID)
	}
	return url, nil
}
