// Package config holds service configuration and infrastructure setup.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries every tunable the service reads from the environment.
// Values come from the process environment; a .env file is loaded first in
// development (see main).
type Config struct {
	Port   string `env:"PORT" envDefault:"8080"`
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	DBURL  string `env:"DB_URL,required,notEmpty"`

	JWTSecret      string `env:"JWT_SECRET,required,notEmpty"`
	JWTExpiryHours int    `env:"JWT_EXPIRY_HOURS" envDefault:"24"`

	SiteURL string `env:"SITE_URL" envDefault:"http://localhost:3000"`

	ResendAPIKey string `env:"RESEND_API_KEY"`
	EmailFrom    string `env:"EMAIL_FROM" envDefault:"ScoopDoo <notifications@scoopdoo.example>"`
	AdminEmail   string `env:"ADMIN_EMAIL" envDefault:"admin@scoopdoo.example"`

	// When set, an admin account with these credentials is ensured at boot.
	AdminPassword string `env:"ADMIN_PASSWORD"`

	PayPalClientID string `env:"PAYPAL_CLIENT_ID"`
	PayPalSecret   string `env:"PAYPAL_SECRET"`
	PayPalLive     bool   `env:"PAYPAL_LIVE" envDefault:"false"`

	TwilioAccountSID string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `env:"TWILIO_PHONE_NUMBER"`
	AdminPhone       string `env:"ADMIN_PHONE"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
