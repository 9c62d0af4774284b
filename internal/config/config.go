// Package config loads the immutable process configuration from the
// environment. It is parsed once at startup and passed by pointer; nothing
// mutates it afterwards.
package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full configuration of the server process.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR"         envDefault:":8080"`
	MongoURI        string        `env:"MONGODB_URI"       envDefault:"mongodb://127.0.0.1:27017"`
	MongoDatabase   string        `env:"MONGODB_DATABASE"  envDefault:"auth"`
	LogLevel        string        `env:"LOG_LEVEL"         envDefault:"info"`
	LogPretty       bool          `env:"LOG_PRETTY"        envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"  envDefault:"10s"`

	Token TokenConfig `envPrefix:"TOKEN_"`
}

// TokenConfig configures session token signing. The secret and TTL are fixed
// for the lifetime of the process; rotation is not supported.
type TokenConfig struct {
	Secret    string        `env:"SECRET"`
	ExpiresIn time.Duration `env:"EXPIRES_IN" envDefault:"24h"`
	Issuer    string        `env:"ISSUER"     envDefault:"nest-auth-example"`
}

// Load parses the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Token.Secret == "" {
		return errors.New("TOKEN_SECRET is required")
	}
	if c.Token.ExpiresIn <= 0 {
		return errors.New("TOKEN_EXPIRES_IN must be positive")
	}

	return nil
}
