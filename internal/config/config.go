// Package config loads client configuration from the environment, with an
// optional yaml file taking precedence when SILVERCLOUD_CONFIG points at
// one. The identity-provider settings are required: without them the
// client cannot bootstrap a session and refuses to start.
package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	errs "github.com/silvercloudhq/silvercloud-cli/internal/errors"
)

type Config struct {
	Env             string        `yaml:"env" env:"SILVERCLOUD_ENV" env-default:"local"`
	BackendURL      string        `yaml:"backend_url" env:"SILVERCLOUD_BACKEND_URL" env-default:"http://localhost:8000"`
	IdentityURL     string        `yaml:"identity_url" env:"SILVERCLOUD_IDENTITY_URL" env-required:"true"`
	IdentityAnonKey string        `yaml:"identity_anon_key" env:"SILVERCLOUD_IDENTITY_ANON_KEY" env-required:"true"`
	HTTPTimeout     time.Duration `yaml:"http_timeout" env:"SILVERCLOUD_HTTP_TIMEOUT" env-default:"15s"`
	CredentialsFile string        `yaml:"credentials_file" env:"SILVERCLOUD_CREDENTIALS_FILE"`
}

// Load reads configuration from SILVERCLOUD_CONFIG (yaml) when set, from
// environment variables otherwise. A missing required value is a
// *errs.ConfigError; the caller treats it as fatal.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("SILVERCLOUD_CONFIG"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, &errs.ConfigError{Err: err}
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, &errs.ConfigError{Err: err}
	}
	return &cfg, nil
}
