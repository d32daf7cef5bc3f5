package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// ServerCfg is http server configuration
type ServerCfg struct {
	Port            int `env:"PORT" envDefault:"3000"`
	ShutdownSeconds int `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"10"`
}

// StorageCfg points to the JSON documents owning all durable state
type StorageCfg struct {
	CustomerFile string `env:"CUSTOMER_FILE" envDefault:"customers.json"`
	LogFile      string `env:"LOG_FILE" envDefault:"transaction_log.json"`
}

// FraudCfg holds the alerting rule parameters
type FraudCfg struct {
	TransactionLimit float64 `env:"TRANSACTION_LIMIT" envDefault:"5000"`
	MaxCustomers     int     `env:"MAX_CUSTOMERS" envDefault:"15"`
}

// TwilioCfg holds SMS provider credentials, variable names are kept
// compatible with the legacy deployment
type TwilioCfg struct {
	AccountSid  string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken   string `env:"TWILIO_AUTH_TOKEN"`
	PhoneNumber string `env:"TWILIO_PHONE_NUMBER"`
}

// ModelCfg points to the pre-trained fraud classifier file
type ModelCfg struct {
	File string `env:"MODEL_FILE" envDefault:"fraud_model.bin"`
}

// Config is aggregated application configuration
type Config struct {
	ServerCfg  ServerCfg
	StorageCfg StorageCfg
	FraudCfg   FraudCfg
	TwilioCfg  TwilioCfg
	ModelCfg   ModelCfg
}

// Build parses configuration from environment variables
func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}
	return cfg, nil
}
