package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Gateway selector values for PAYMENT_GATEWAY.
const (
	GatewaySimulated = "simulated"
	GatewayMidtrans  = "midtrans"
)

// Config holds the runtime configuration of the storefront server.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	FirebaseCredentialsPath string `env:"FIREBASE_CREDENTIALS_PATH" envDefault:"./firebase-service-account.json"`
	FirebaseAPIKey          string `env:"FIREBASE_API_KEY"`

	PaymentGateway     string `env:"PAYMENT_GATEWAY" envDefault:"simulated"`
	SimulateDecline    bool   `env:"PAYMENT_SIMULATE_DECLINE"`
	MidtransServerKey  string `env:"MIDTRANS_SERVER_KEY"`
	MidtransClientKey  string `env:"MIDTRANS_CLIENT_KEY"`
	MidtransProduction bool   `env:"MIDTRANS_IS_PRODUCTION"`
}

// Parse reads the configuration from environment variables.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.PaymentGateway != GatewaySimulated && cfg.PaymentGateway != GatewayMidtrans {
		return nil, fmt.Errorf("unknown payment gateway %q", cfg.PaymentGateway)
	}

	return cfg, nil
}
