package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     uint16

	// OutputDir is where generated invoice PDFs are stored.
	OutputDir string

	// ProfilePath is the company settings JSON file.
	ProfilePath string

	// VATRulePath is the optional VAT classification rule file. A
	// missing file falls back to built-in keyword rules.
	VATRulePath string

	// LogoPath is the optional logo image for the document header.
	LogoPath string

	// MetricsNamespace prefixes all Prometheus metric names.
	MetricsNamespace string
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:              getEnv("ENV", "dev"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Port:             getEnvInt("PORT", 5001),
		OutputDir:        getEnv("INVOICE_OUTPUT_DIR", "generated_invoices"),
		ProfilePath:      getEnv("COMPANY_CONFIG_PATH", "company_config.json"),
		VATRulePath:      getEnv("VAT_RULES_PATH", "vat_rules.json"),
		LogoPath:         getEnv("COMPANY_LOGO_PATH", "company_logo.png"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "rechnung"),
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}
