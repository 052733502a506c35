// Package config loads quotecalc settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"quotecalc/services"
)

// EnvPrefix is stripped from every environment variable read by Load.
const EnvPrefix = "QUOTECALC_"

// Config holds application configuration loaded from the environment.
type Config struct {
	LogLevel    string
	LogFormat   string
	Currency    string
	TaxRate     services.NumericInput
	QuotePrefix string
	QuoteDir    string
	Company     services.Party
}

// Load reads configuration from QUOTECALC_* environment variables and an
// optional .env file in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	provider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.TrimPrefix(s, EnvPrefix)
	})
	if err := k.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		LogLevel:    valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:   strings.ToLower(valueOrDefault(k.String("LOG_FORMAT"), "console")),
		Currency:    strings.ToUpper(valueOrDefault(k.String("CURRENCY"), "INR")),
		TaxRate:     services.Raw(valueOrDefault(k.String("TAX_RATE"), "18")),
		QuotePrefix: valueOrDefault(k.String("QUOTE_PREFIX"), services.DefaultQuotePrefix),
		QuoteDir:    valueOrDefault(k.String("QUOTE_DIR"), "."),
		Company: services.Party{
			Name:    strings.TrimSpace(k.String("COMPANY_NAME")),
			Address: strings.TrimSpace(k.String("COMPANY_ADDRESS")),
			Email:   strings.TrimSpace(k.String("COMPANY_EMAIL")),
			Phone:   strings.TrimSpace(k.String("COMPANY_PHONE")),
			GSTIN:   strings.ToUpper(strings.TrimSpace(k.String("COMPANY_GSTIN"))),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail late, at export time.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.LogFormat, validation.In("json", "console", "text")),
		validation.Field(&c.Currency, validation.Required, is.CurrencyCode),
		validation.Field(&c.QuotePrefix, validation.Required, validation.Length(1, 10)),
		validation.Field(&c.Company),
	)
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
