package config

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string `validate:"required"`
	IsProduction    bool
	EnableDBCheck   bool
	LogLevel        string          `validate:"oneof=debug info warn warning error"`
	DefaultCurrency string          `validate:"len=3,uppercase"`
	CodPlatformFee  decimal.Decimal // Flat fee kept from every cash-on-delivery booking
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DEFAULT_CURRENCY", "HUF")
	viper.SetDefault("COD_PLATFORM_FEE", "0.00")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")
	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")

	feeStr := viper.GetString("COD_PLATFORM_FEE")
	fee, err := decimal.NewFromString(feeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid COD_PLATFORM_FEE %q: %w", feeStr, err)
	}
	if fee.IsNegative() {
		return nil, fmt.Errorf("COD_PLATFORM_FEE must not be negative, got %s", feeStr)
	}
	cfg.CodPlatformFee = fee

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
