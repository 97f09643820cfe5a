package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Ledger API (external accounting-entries service)
	LedgerAPIBaseURL    string
	LedgerAPIUsername   string
	LedgerAPIPassword   string
	InventoryAccountID  int64
	PayablesAccountID   int64
	LedgerClientTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "purchasing-backend")
	viper.SetDefault("LEDGER_API_BASE_URL", "")
	viper.SetDefault("LEDGER_API_USERNAME", "")
	viper.SetDefault("LEDGER_API_PASSWORD", "")
	viper.SetDefault("LEDGER_INVENTORY_ACCOUNT_ID", 1)
	viper.SetDefault("LEDGER_PAYABLES_ACCOUNT_ID", 2)
	viper.SetDefault("LEDGER_CLIENT_TIMEOUT", "15s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.LedgerAPIBaseURL = viper.GetString("LEDGER_API_BASE_URL")
	cfg.LedgerAPIUsername = viper.GetString("LEDGER_API_USERNAME")
	cfg.LedgerAPIPassword = viper.GetString("LEDGER_API_PASSWORD")
	if cfg.LedgerAPIBaseURL == "" {
		log.Println("Warning: LEDGER_API_BASE_URL not set. Ledger posting will fail.")
	}

	cfg.InventoryAccountID = viper.GetInt64("LEDGER_INVENTORY_ACCOUNT_ID")
	cfg.PayablesAccountID = viper.GetInt64("LEDGER_PAYABLES_ACCOUNT_ID")

	timeoutStr := viper.GetString("LEDGER_CLIENT_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 15 * time.Second
		log.Printf("Warning: Invalid value for LEDGER_CLIENT_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.LedgerClientTimeout = timeout

	return cfg, nil
}
