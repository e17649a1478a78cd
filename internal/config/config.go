package config

import (
	"fmt"
	"time"
	e "unitactivity/internal/core/domain/errors"

	"github.com/caarlos0/env/v6"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	EmailProviderSMTP = "smtp"
	EmailProviderSES  = "ses"
)

type Config struct {
	Port           int      `env:"PORT" envDefault:"3000"`
	IsTestMode     bool     `env:"TEST_MODE"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	EmailProvider string        `env:"EMAIL_PROVIDER" envDefault:"smtp"`
	EmailHost     string        `env:"EMAIL_HOST"`
	EmailPort     int           `env:"EMAIL_PORT" envDefault:"587"`
	EmailUser     string        `env:"EMAIL_USER"`
	EmailPass     string        `env:"EMAIL_PASS"`
	EmailFrom     string        `env:"EMAIL_FROM"`
	EmailFromName string        `env:"EMAIL_FROM_NAME" envDefault:"Unit Activity UKDC"`
	EmailTimeout  time.Duration `env:"EMAIL_TIMEOUT" envDefault:"30s"`

	AwsRegion    string `env:"AWS_REGION"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey string `env:"AWS_SECRET_KEY"`

	PostgresqlURL string `env:"POSTGRESQL_URL,notEmpty"`

	SupabaseURL            string        `env:"SUPABASE_URL,notEmpty"`
	SupabaseServiceRoleKey string        `env:"SUPABASE_SERVICE_ROLE_KEY,notEmpty"`
	SupabaseRequestTimeout time.Duration `env:"SUPABASE_REQUEST_TIMEOUT" envDefault:"10s"`

	BcryptHasherCost int    `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	PasswordPepper   string `env:"PASSWORD_PEPPER"`

	SentryDsn string `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Max(65535)),
		validation.Field(&c.BcryptHasherCost, validation.Min(4), validation.Max(31)),
	)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// MailSettingsError reports why the configured mail provider cannot be used.
// It is not part of Validate: the service starts without a working mailer.
func (c *Config) MailSettingsError() error {
	if c.EmailFrom == "" {
		return e.NewInvalidConfigError("EMAIL_FROM", "must be set")
	}
	switch c.EmailProvider {
	case EmailProviderSMTP:
		if c.EmailHost == "" {
			return e.NewInvalidConfigError("EMAIL_HOST", "must be set for the smtp provider")
		}
	case EmailProviderSES:
		if c.AwsRegion == "" {
			return e.NewInvalidConfigError("AWS_REGION", "must be set for the ses provider")
		}
	default:
		return e.NewInvalidConfigError("EMAIL_PROVIDER", fmt.Sprintf("unknown provider %q", c.EmailProvider))
	}
	return nil
}
