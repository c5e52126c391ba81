package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cafe_ledger/internal/tenancy"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// PaymentJournalConfig controls the journal entry posted alongside a payment.
type PaymentJournalConfig struct {
	Enabled               bool
	CashAccountCode       string // debited for cash payments
	BankAccountCode       string // debited for every other method
	ReceivableAccountCode string // credited
}

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	DBMaxConns      int32
	JWTSecret       string
	JWTIssuer       string
	TenantDatabases map[string]string
	RateLimit       string
	CORSOrigins     []string
	PosthogAPIKey   string
	PosthogEndpoint string
	MigrationsPath  string
	CurrencyCode    string
	PaymentJournal  PaymentJournalConfig
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "cafe-ledger")
	v.SetDefault("TENANT_DATABASES", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("CURRENCY_CODE", "USD")
	v.SetDefault("PAYMENT_JOURNAL_ENABLED", false)
	v.SetDefault("PAYMENT_CASH_ACCOUNT_CODE", "1000")
	v.SetDefault("PAYMENT_BANK_ACCOUNT_CODE", "1010")
	v.SetDefault("PAYMENT_RECEIVABLE_ACCOUNT_CODE", "1100")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		DBMaxConns:      v.GetInt32("DB_MAX_CONNS"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		CORSOrigins:     splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: v.GetString("POSTHOG_ENDPOINT"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		CurrencyCode:    strings.ToUpper(v.GetString("CURRENCY_CODE")),
		PaymentJournal: PaymentJournalConfig{
			Enabled:               v.GetBool("PAYMENT_JOURNAL_ENABLED"),
			CashAccountCode:       v.GetString("PAYMENT_CASH_ACCOUNT_CODE"),
			BankAccountCode:       v.GetString("PAYMENT_BANK_ACCOUNT_CODE"),
			ReceivableAccountCode: v.GetString("PAYMENT_RECEIVABLE_ACCOUNT_CODE"),
		},
	}

	tenants, err := tenancy.ParseTenantURLs(v.GetString("TENANT_DATABASES"))
	if err != nil {
		return nil, fmt.Errorf("TENANT_DATABASES: %w", err)
	}
	cfg.TenantDatabases = tenants

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.PaymentJournal.Enabled {
		pj := cfg.PaymentJournal
		if pj.CashAccountCode == "" || pj.BankAccountCode == "" || pj.ReceivableAccountCode == "" {
			return nil, fmt.Errorf("PAYMENT_JOURNAL_ENABLED requires cash, bank and receivable account codes")
		}
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
