package config

import (
	"github.com/caarlos0/env/v11"

	"croevo-console/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Redis    configs.Redis    `envPrefix:"REDIS_"`
	Dispatch configs.Dispatch `envPrefix:"DISPATCH_"`
	Invite   configs.Invite   `envPrefix:"INVITE_"`
	Mail     configs.Mail     `envPrefix:"MAIL_"`
	Auth     configs.Auth     `envPrefix:"AUTH_"`

	// Bootstrap seeds the first admin so invites can be issued on a fresh
	// database.
	Bootstrap configs.Bootstrap `envPrefix:"BOOTSTRAP_ADMIN_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing or validation fails, an error is returned. All fields are loaded
// with their specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := c.Dispatch.Validate(); err != nil {
		return err
	}
	if err := c.Invite.Validate(); err != nil {
		return err
	}
	if err := c.Mail.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}
