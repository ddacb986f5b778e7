package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string `validate:"required"`
	IsProduction bool

	// DataDir holds the ledger files unless an explicit per-store path is
	// configured.
	DataDir string `validate:"required"`

	TransfersFile    string `validate:"required"`
	DepositsFile     string `validate:"required"`
	BalancesFile     string `validate:"required"`
	TransactionsFile string `validate:"required"`

	// RateLimit uses the "<count>-<period>" notation of ulule/limiter,
	// e.g. "100-M" for 100 requests per minute.
	RateLimit string `validate:"required"`

	CORSAllowedOrigins []string `validate:"min=1"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("TRANSFERS_STORE_FILE", "")
	viper.SetDefault("DEPOSITS_STORE_FILE", "")
	viper.SetDefault("BALANCES_STORE_FILE", "")
	viper.SetDefault("TRANSACTIONS_STORE_FILE", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		DataDir:      viper.GetString("DATA_DIR"),
		RateLimit:    viper.GetString("RATE_LIMIT"),
	}

	// Per-store overrides; a store left unset lives inside DataDir. The
	// transactions log usually points at a file another system maintains.
	cfg.TransfersFile = storePath(cfg.DataDir, "TRANSFERS_STORE_FILE", "transfers.json")
	cfg.DepositsFile = storePath(cfg.DataDir, "DEPOSITS_STORE_FILE", "deposits.json")
	cfg.BalancesFile = storePath(cfg.DataDir, "BALANCES_STORE_FILE", "balances.json")
	cfg.TransactionsFile = storePath(cfg.DataDir, "TRANSACTIONS_STORE_FILE", "transactions.json")

	cfg.CORSAllowedOrigins = splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		log.Println("Warning: CORS_ALLOWED_ORIGINS resolves empty. Defaulting to *.")
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func storePath(dataDir, key, defaultName string) string {
	if p := viper.GetString(key); p != "" {
		return p
	}
	return filepath.Join(dataDir, defaultName)
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
