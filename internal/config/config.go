// Package config holds process-level settings parsed from the environment.
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// Config is built once at startup and shared by every command.
type Config struct {
	// Root overrides the monorepo root; defaults to the working directory.
	Root string `env:"PHPMONO_ROOT"`
	// NonInteractive suppresses prompts the same way --no-interaction does.
	NonInteractive bool `env:"PHPMONO_NO_INTERACTION"`
}

// Load parses the environment and fills in the working-directory default.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return cfg, err
		}
		cfg.Root = cwd
	}
	return cfg, nil
}
